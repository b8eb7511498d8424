package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ocrdiff = "ocrdiff"

	// Engine metrics
	engineRunsTotal   = "engine_runs_total"
	engineRunSeconds  = "engine_run_duration_seconds"
	tasksFinished     = "tasks_finished_total"
	tasksInProcessing = "tasks_processing"

	// Labels
	engineLabel       = "engine"
	engineStatusLabel = "status"
	taskStatusLabel   = "status"

	EngineRunSuccess = "success"
	EngineRunFailure = "failure"
)

/**
* Metrics definition
**/
var engineRunsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: ocrdiff,
		Name:      engineRunsTotal,
		Help:      "number of recognition engine runs partitioned by engine and outcome",
	},
	[]string{engineLabel, engineStatusLabel},
)

var engineRunSecondsMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: ocrdiff,
		Name:      engineRunSeconds,
		Help:      "wall-clock duration of recognition engine runs",
		Buckets:   []float64{0.5, 1, 5, 15, 60, 300, 900},
	},
	[]string{engineLabel},
)

var tasksFinishedMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: ocrdiff,
		Name:      tasksFinished,
		Help:      "number of comparison tasks that reached a terminal state",
	},
	[]string{taskStatusLabel},
)

var tasksProcessingMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: ocrdiff,
		Name:      tasksInProcessing,
		Help:      "number of comparison tasks currently processing",
	},
)

func IncreaseEngineRunsTotalMetric(engine, status string) {
	engineRunsTotalMetric.With(prometheus.Labels{
		engineLabel:       engine,
		engineStatusLabel: status,
	}).Inc()
}

func ObserveEngineRunDurationMetric(engine string, seconds float64) {
	engineRunSecondsMetric.With(prometheus.Labels{engineLabel: engine}).Observe(seconds)
}

func IncreaseTasksFinishedMetric(status string) {
	tasksFinishedMetric.With(prometheus.Labels{taskStatusLabel: status}).Inc()
}

func UpdateTasksProcessingMetric(delta float64) {
	tasksProcessingMetric.Add(delta)
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(engineRunsTotalMetric)
	prometheus.MustRegister(engineRunSecondsMetric)
	prometheus.MustRegister(tasksFinishedMetric)
	prometheus.MustRegister(tasksProcessingMetric)
}
