package comparison_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ocrdiff/ocrdiff/internal/comparison"
	"github.com/ocrdiff/ocrdiff/internal/engine"
)

func rawResults(texts ...string) []engine.RawResult {
	results := make([]engine.RawResult, 0, len(texts))
	for i, text := range texts {
		results = append(results, engine.RawResult{
			EngineName: []string{"alpha", "beta", "gamma", "delta"}[i],
			Text:       text,
		})
	}
	return results
}

var _ = Describe("SelectReference", func() {
	It("picks the longest text", func() {
		reference := comparison.SelectReference(rawResults("abc", "abcdef", "ab"))
		Expect(reference).To(Equal("abcdef"))
	})

	It("breaks length ties in favor of the first result", func() {
		reference := comparison.SelectReference(rawResults("abc", "xyz"))
		Expect(reference).To(Equal("abc"))
	})

	It("ignores empty texts", func() {
		reference := comparison.SelectReference(rawResults("", "xy", ""))
		Expect(reference).To(Equal("xy"))
	})

	It("returns empty when all texts are empty", func() {
		Expect(comparison.SelectReference(rawResults("", "", ""))).To(Equal(""))
	})

	It("returns empty for no results", func() {
		Expect(comparison.SelectReference(nil)).To(Equal(""))
	})

	It("compares lengths in characters, not bytes", func() {
		// Two-character multibyte text loses against three ASCII characters.
		reference := comparison.SelectReference(rawResults("日本", "abc"))
		Expect(reference).To(Equal("abc"))
	})
})
