package comparison

import (
	"strings"

	"github.com/ocrdiff/ocrdiff/internal/engine"
)

// MergeAlignments builds the coarse line-level view: one merged segment per
// reference line carrying every engine's corresponding line. This view is
// informational only; per-engine accuracy always comes from the
// character-level alignment.
func MergeAlignments(reference string, results []engine.RawResult) []Segment {
	if reference == "" {
		return nil
	}

	refLines := strings.Split(reference, "\n")

	// Every engine joins the view, errored ones included: their empty text
	// contributes empty lines, which count as a variant like any other.
	engineLines := make(map[string][]string, len(results))
	for _, res := range results {
		engineLines[res.EngineName] = strings.Split(res.Text, "\n")
	}

	merged := make([]Segment, 0, len(refLines))
	for idx, refLine := range refLines {
		engineTexts := map[string]string{ReferenceKey: refLine}

		for name, lines := range engineLines {
			line := ""
			if idx < len(lines) {
				line = lines[idx]
			}
			engineTexts[name] = line
		}

		variants := make(map[string]struct{}, len(engineTexts))
		for _, v := range engineTexts {
			variants[v] = struct{}{}
		}

		var segType SegmentType
		switch {
		case len(variants) <= 1:
			segType = SegmentMatch
		case len(variants) == 2:
			segType = SegmentMinorDiff
		default:
			segType = SegmentMajorDiff
		}

		merged = append(merged, Segment{
			Text:        refLine,
			Type:        segType,
			Start:       idx,
			End:         idx + 1,
			EngineTexts: engineTexts,
		})
	}

	return merged
}
