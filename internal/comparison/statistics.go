package comparison

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ocrdiff/ocrdiff/internal/engine"
)

// CountSegments sums segment lengths per classification. Lengths are counted
// on the reference side, so insert-only segments contribute nothing; for any
// engine without insert segments, match+diff equals the reference length.
func CountSegments(segments []Segment) (matchCount, diffCount int) {
	for _, seg := range segments {
		if seg.Type == SegmentMatch {
			matchCount += utf8.RuneCountInString(seg.Text)
		} else {
			diffCount += utf8.RuneCountInString(seg.Text)
		}
	}
	return matchCount, diffCount
}

// Accuracy computes the match percentage against the reference length, or 0.0
// when the reference is empty.
func Accuracy(matchCount int, reference string) float64 {
	total := utf8.RuneCountInString(reference)
	if total == 0 {
		return 0.0
	}
	return float64(matchCount) / float64(total) * 100
}

// BuildResults selects the consensus reference and aligns every successful
// engine's text against it independently. Errored engines produce no
// comparison result.
func BuildResults(raw []engine.RawResult) (string, []Result) {
	logger := zap.S().Named("comparison")

	reference := SelectReference(raw)

	results := make([]Result, 0, len(raw))
	for _, r := range raw {
		if r.Failed() {
			continue
		}

		segments := Align(reference, r.Text, r.EngineName)
		matchCount, diffCount := CountSegments(segments)

		results = append(results, Result{
			EngineName:      r.EngineName,
			Segments:        segments,
			TotalCharacters: utf8.RuneCountInString(r.Text),
			MatchCount:      matchCount,
			DiffCount:       diffCount,
			AccuracyPercent: Accuracy(matchCount, reference),
		})

		logger.Debugw("Engine aligned",
			"engine", r.EngineName,
			"segments", len(segments),
			"match", matchCount,
			"diff", diffCount,
		)
	}

	return reference, results
}

// Aggregate derives per-engine statistics from the raw results and their
// comparison results. An engine without a comparison result reports zeros
// with its own processing time preserved.
func Aggregate(raw []engine.RawResult, results []Result) []Statistics {
	byEngine := make(map[string]Result, len(results))
	for _, res := range results {
		byEngine[res.EngineName] = res
	}

	stats := make([]Statistics, 0, len(raw))
	for _, r := range raw {
		res, ok := byEngine[r.EngineName]
		if !ok {
			stats = append(stats, Statistics{
				EngineName:     r.EngineName,
				ProcessingTime: r.ProcessingTime.Seconds(),
			})
			continue
		}

		stats = append(stats, Statistics{
			EngineName:     r.EngineName,
			TotalChars:     res.TotalCharacters,
			Differences:    res.DiffCount,
			Accuracy:       res.AccuracyPercent,
			ProcessingTime: r.ProcessingTime.Seconds(),
		})
	}

	return stats
}
