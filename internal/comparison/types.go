package comparison

// ReferenceKey is the logical name under which the reference slice is stored
// in a segment's engine texts.
const ReferenceKey = "reference"

// SegmentType classifies the agreement level of a diff segment.
type SegmentType string

const (
	SegmentMatch     SegmentType = "match"
	SegmentMinorDiff SegmentType = "minor_diff"
	SegmentMajorDiff SegmentType = "major_diff"
)

// Segment is a contiguous run of the reference text (or an inserted run
// absent from it) classified by agreement level. Start and End are rune
// offsets into the reference text; insert-only segments are zero-width.
type Segment struct {
	Text        string
	Type        SegmentType
	Start       int
	End         int
	EngineTexts map[string]string
}

// Result is one engine's full diff-segment list and derived totals against
// the shared reference. TotalCharacters counts the engine's own raw text,
// while AccuracyPercent is computed against the reference length; the two
// measure completeness and fidelity respectively.
type Result struct {
	EngineName      string
	Segments        []Segment
	TotalCharacters int
	MatchCount      int
	DiffCount       int
	AccuracyPercent float64
}

// Statistics summarizes one engine's run for reporting.
type Statistics struct {
	EngineName     string
	TotalChars     int
	Differences    int
	Accuracy       float64
	ProcessingTime float64
}
