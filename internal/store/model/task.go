package model

import (
	"time"

	"github.com/ocrdiff/ocrdiff/internal/comparison"
	"github.com/ocrdiff/ocrdiff/internal/engine"
)

// TaskStatus is the lifecycle state of a stored comparison task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Task is the registry record for one end-to-end comparison request. It is
// mutated only by the single worker driving the task's pipeline and replaced
// atomically in the store, never updated field by field.
type Task struct {
	ID        string
	Filename  string
	Status    TaskStatus
	Message   string
	CreatedAt time.Time
	Result    *Result
}

// Result is the full outcome of a completed task.
type Result struct {
	Reference  string
	RawResults []engine.RawResult
	Comparison []comparison.Result
	Statistics []comparison.Statistics
	MergedView []comparison.Segment
}

// Terminal reports whether the task reached a terminal state.
func (t Task) Terminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed
}
