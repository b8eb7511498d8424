package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ocrdiff/ocrdiff/pkg/metrics"
)

// Runner fans a single document out to every registered engine and collects
// their raw results behind a barrier. Engine failures are isolated: a failing
// engine contributes an errored raw result and never aborts its siblings.
type Runner struct {
	engines []Engine
}

func NewRunner(engines []Engine) *Runner {
	return &Runner{engines: engines}
}

// Engines returns the registered engine set in registration order.
func (r *Runner) Engines() []Engine {
	return r.engines
}

// RunAll executes every engine concurrently against the document at path and
// returns one raw result per engine. The result order is the engine
// registration order regardless of completion order.
func (r *Runner) RunAll(ctx context.Context, path string) []RawResult {
	logger := zap.S().Named("runner")
	logger.Infow("Running recognition engines", "path", path, "engines", len(r.engines))

	results := make([]RawResult, len(r.engines))

	var wg sync.WaitGroup
	for i, eng := range r.engines {
		wg.Add(1)
		go func(i int, eng Engine) {
			defer wg.Done()
			results[i] = r.runOne(ctx, eng, path)
		}(i, eng)
	}
	wg.Wait()

	succeeded := 0
	for _, res := range results {
		if !res.Failed() {
			succeeded++
		}
	}
	logger.Infow("Recognition engines finished", "path", path, "succeeded", succeeded, "total", len(r.engines))

	return results
}

func (r *Runner) runOne(ctx context.Context, eng Engine, path string) (result RawResult) {
	logger := zap.S().Named("runner").With("engine", eng.Name())
	logger.Infow("Engine started", "path", path)

	// A panicking engine is isolated the same way as a failing one.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Errorw("Engine panicked", "path", path, "panic", rec)
			metrics.IncreaseEngineRunsTotalMetric(eng.Name(), metrics.EngineRunFailure)
			result = RawResult{
				EngineName: eng.Name(),
				Error:      fmt.Sprintf("panic: %v", rec),
			}
		}
	}()

	start := time.Now()
	text, err := eng.ExtractText(ctx, path)
	elapsed := time.Since(start)

	if err != nil {
		logger.Errorw("Engine failed", "path", path, "error", err, "elapsed", elapsed)
		metrics.IncreaseEngineRunsTotalMetric(eng.Name(), metrics.EngineRunFailure)
		return RawResult{
			EngineName: eng.Name(),
			Error:      err.Error(),
		}
	}

	logger.Infow("Engine succeeded", "path", path, "characters", len(text), "elapsed", elapsed)
	metrics.IncreaseEngineRunsTotalMetric(eng.Name(), metrics.EngineRunSuccess)
	metrics.ObserveEngineRunDurationMetric(eng.Name(), elapsed.Seconds())

	return RawResult{
		EngineName:     eng.Name(),
		Text:           text,
		ProcessingTime: elapsed,
	}
}
