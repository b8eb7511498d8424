package comparison_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ocrdiff/ocrdiff/internal/comparison"
	"github.com/ocrdiff/ocrdiff/internal/engine"
)

var _ = Describe("MergeAlignments", func() {
	It("builds one merged segment per reference line", func() {
		reference := "first line\nsecond line\nthird line"
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "first line\nsecond line\nthird line"},
			{EngineName: "beta", Text: "first line\nsecond lime\nthird line"},
		}

		merged := comparison.MergeAlignments(reference, raw)

		Expect(merged).To(HaveLen(3))

		Expect(merged[0].Type).To(Equal(comparison.SegmentMatch))
		Expect(merged[0].Start).To(Equal(0))
		Expect(merged[0].End).To(Equal(1))
		Expect(merged[0].EngineTexts).To(HaveKeyWithValue(comparison.ReferenceKey, "first line"))

		// Exactly two distinct variants on the second line.
		Expect(merged[1].Type).To(Equal(comparison.SegmentMinorDiff))
		Expect(merged[1].EngineTexts).To(HaveKeyWithValue("beta", "second lime"))

		Expect(merged[2].Type).To(Equal(comparison.SegmentMatch))
	})

	It("marks lines with three or more variants as major diffs", func() {
		reference := "one line"
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "one lime"},
			{EngineName: "beta", Text: "one pine"},
		}

		merged := comparison.MergeAlignments(reference, raw)

		Expect(merged).To(HaveLen(1))
		Expect(merged[0].Type).To(Equal(comparison.SegmentMajorDiff))
	})

	It("substitutes empty lines for engines with fewer lines", func() {
		reference := "a\nb"
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "a"},
		}

		merged := comparison.MergeAlignments(reference, raw)

		Expect(merged).To(HaveLen(2))
		Expect(merged[1].EngineTexts).To(HaveKeyWithValue("alpha", ""))
		Expect(merged[1].Type).To(Equal(comparison.SegmentMinorDiff))
	})

	It("counts an errored engine's empty text as a variant", func() {
		reference := "one line"
		raw := []engine.RawResult{
			{EngineName: "alpha", Text: "one line"},
			{EngineName: "beta", Error: "boom"},
		}

		merged := comparison.MergeAlignments(reference, raw)

		Expect(merged).To(HaveLen(1))
		Expect(merged[0].Type).To(Equal(comparison.SegmentMinorDiff))
		Expect(merged[0].EngineTexts).To(HaveKeyWithValue("beta", ""))
	})

	It("returns nothing for an empty reference", func() {
		raw := []engine.RawResult{{EngineName: "alpha", Text: ""}}
		Expect(comparison.MergeAlignments("", raw)).To(BeEmpty())
	})
})
