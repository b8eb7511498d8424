package comparison_test

import (
	"time"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ocrdiff/ocrdiff/internal/comparison"
	"github.com/ocrdiff/ocrdiff/internal/engine"
)

var _ = Describe("BuildResults", func() {
	It("aligns every successful engine against the shared reference", func() {
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "cat"},
			{EngineName: "beta", Text: "cot"},
		}

		reference, results := comparison.BuildResults(raw)

		Expect(reference).To(Equal("cat"))
		Expect(results).To(HaveLen(2))

		Expect(results[0].EngineName).To(Equal("alpha"))
		Expect(results[0].MatchCount).To(Equal(3))
		Expect(results[0].DiffCount).To(Equal(0))
		Expect(results[0].AccuracyPercent).To(Equal(100.0))

		Expect(results[1].EngineName).To(Equal("beta"))
		Expect(results[1].MatchCount).To(Equal(2))
		Expect(results[1].DiffCount).To(Equal(1))
		Expect(results[1].AccuracyPercent).To(BeNumerically("~", 66.67, 0.01))
		Expect(results[1].TotalCharacters).To(Equal(3))
	})

	It("holds the length invariant for engines without inserts", func() {
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "the quick brown fox"},
			{EngineName: "beta", Text: "the quack brown fx"},
		}

		reference, results := comparison.BuildResults(raw)

		for _, res := range results {
			Expect(res.MatchCount + res.DiffCount).To(Equal(utf8.RuneCountInString(reference)))
		}
	})

	It("holds the length invariant for multibyte texts", func() {
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "日本語のテキスト"},
			{EngineName: "beta", Text: "日本誤のテキス"},
		}

		reference, results := comparison.BuildResults(raw)

		Expect(utf8.RuneCountInString(reference)).To(Equal(8))
		for _, res := range results {
			Expect(res.MatchCount + res.DiffCount).To(Equal(8))
		}
	})

	It("reports full accuracy only for an exact match", func() {
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "exact text"},
			{EngineName: "beta", Text: "exact text"},
			{EngineName: "gamma", Text: "exact test"},
		}

		_, results := comparison.BuildResults(raw)

		Expect(results[0].AccuracyPercent).To(Equal(100.0))
		Expect(results[1].AccuracyPercent).To(Equal(100.0))
		Expect(results[2].AccuracyPercent).To(BeNumerically("<", 100.0))
	})

	It("skips errored engines", func() {
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "hello"},
			{EngineName: "beta", Error: "extraction failed"},
		}

		_, results := comparison.BuildResults(raw)

		Expect(results).To(HaveLen(1))
		Expect(results[0].EngineName).To(Equal("alpha"))
	})

	It("produces empty segment lists and zero accuracy when every text is empty", func() {
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: ""},
			{EngineName: "beta", Text: ""},
		}

		reference, results := comparison.BuildResults(raw)

		Expect(reference).To(Equal(""))
		for _, res := range results {
			Expect(res.Segments).To(BeEmpty())
			Expect(res.AccuracyPercent).To(Equal(0.0))
		}
	})
})

var _ = Describe("Aggregate", func() {
	It("derives statistics per engine", func() {
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "cat", ProcessingTime: 1200 * time.Millisecond},
			{EngineName: "beta", Text: "cot", ProcessingTime: 500 * time.Millisecond},
		}
		_, results := comparison.BuildResults(raw)

		stats := comparison.Aggregate(raw, results)

		Expect(stats).To(HaveLen(2))
		Expect(stats[0].EngineName).To(Equal("alpha"))
		Expect(stats[0].TotalChars).To(Equal(3))
		Expect(stats[0].Differences).To(Equal(0))
		Expect(stats[0].Accuracy).To(Equal(100.0))
		Expect(stats[0].ProcessingTime).To(BeNumerically("~", 1.2, 0.001))

		Expect(stats[1].Differences).To(Equal(1))
	})

	It("zeroes statistics for errored engines but keeps their timing", func() {
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "cat", ProcessingTime: time.Second},
			{EngineName: "beta", Error: "boom"},
		}
		_, results := comparison.BuildResults(raw)

		stats := comparison.Aggregate(raw, results)

		Expect(stats).To(HaveLen(2))
		Expect(stats[1].EngineName).To(Equal("beta"))
		Expect(stats[1].TotalChars).To(Equal(0))
		Expect(stats[1].Differences).To(Equal(0))
		Expect(stats[1].Accuracy).To(Equal(0.0))
		Expect(stats[1].ProcessingTime).To(Equal(0.0))
	})
})

var _ = Describe("CountSegments", func() {
	It("counts on the reference side", func() {
		segments := comparison.Align("abcd", "abxcdy", "alpha")

		match, diff := comparison.CountSegments(segments)

		// Inserts contribute nothing on the reference side.
		Expect(match).To(Equal(4))
		Expect(diff).To(Equal(0))
	})
})
