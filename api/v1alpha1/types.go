package v1alpha1

import "time"

// TaskStatus is the lifecycle state of a comparison task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// SegmentType classifies the agreement level of a diff segment.
type SegmentType string

const (
	SegmentTypeMatch     SegmentType = "match"
	SegmentTypeMinorDiff SegmentType = "minor_diff"
	SegmentTypeMajorDiff SegmentType = "major_diff"
)

// RawResult is the unprocessed output of one recognition engine for one task.
type RawResult struct {
	EngineName     string  `json:"engine_name"`
	Text           string  `json:"text"`
	ProcessingTime float64 `json:"processing_time"`
	Error          *string `json:"error,omitempty"`
}

// DiffSegment is a contiguous run of the reference text (or an inserted run
// absent from it) classified by agreement level. StartPosition and EndPosition
// are offsets into the reference text; insert-only segments are zero-width.
type DiffSegment struct {
	Text          string            `json:"text"`
	SegmentType   SegmentType       `json:"segment_type"`
	StartPosition int               `json:"start_position"`
	EndPosition   int               `json:"end_position"`
	EngineTexts   map[string]string `json:"engine_texts"`
}

// ComparisonResult carries one engine's full diff-segment list and derived
// totals against the shared reference.
type ComparisonResult struct {
	EngineName      string        `json:"engine_name"`
	Segments        []DiffSegment `json:"segments"`
	TotalCharacters int           `json:"total_characters"`
	MatchCount      int           `json:"match_count"`
	DiffCount       int           `json:"diff_count"`
	AccuracyPercent float64       `json:"accuracy_percent"`
}

// Statistics summarizes one engine's run.
type Statistics struct {
	EngineName     string  `json:"engine_name"`
	TotalChars     int     `json:"total_chars"`
	Differences    int     `json:"differences"`
	Accuracy       float64 `json:"accuracy"`
	ProcessingTime float64 `json:"processing_time"`
}

// UploadResponse is returned after a successful document upload.
type UploadResponse struct {
	TaskId   string `json:"task_id"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// TaskStatusResponse reports the lifecycle state of a task.
type TaskStatusResponse struct {
	TaskId   string     `json:"task_id"`
	Status   TaskStatus `json:"status"`
	Filename string     `json:"filename,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// TaskSummary is a compact listing entry for one task.
type TaskSummary struct {
	TaskId    string     `json:"task_id"`
	Filename  string     `json:"filename"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// TaskList is a collection of task summaries.
type TaskList struct {
	Tasks []TaskSummary `json:"tasks"`
}

// ComparisonResponse is the full result of one completed comparison task.
type ComparisonResponse struct {
	TaskId     string             `json:"task_id"`
	Filename   string             `json:"filename"`
	Status     TaskStatus         `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	RawResults []RawResult        `json:"raw_results"`
	Comparison []ComparisonResult `json:"comparison"`
	Statistics []Statistics       `json:"statistics"`
	MergedView []DiffSegment      `json:"merged_view,omitempty"`
}

// Error is the common error payload.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"request_id,omitempty"`
}
