package comparison

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ocrdiff/ocrdiff/internal/engine"
)

// SelectReference chooses the consensus reference text among the raw results:
// the longest non-empty text wins, with ties broken in favor of the first
// result in registration order. Returns "" when every text is empty.
func SelectReference(results []engine.RawResult) string {
	reference := ""
	longest := 0

	for _, res := range results {
		if res.Text == "" {
			continue
		}
		if n := utf8.RuneCountInString(res.Text); n > longest {
			reference = res.Text
			longest = n
		}
	}

	if longest > 0 {
		zap.S().Named("comparison").Debugw("Reference text selected", "characters", longest)
	}

	return reference
}
