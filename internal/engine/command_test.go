package engine_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ocrdiff/ocrdiff/internal/engine"
)

var _ = Describe("CommandEngine", func() {
	var docPath string

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		docPath = filepath.Join(dir, "doc.png")
		Expect(os.WriteFile(docPath, []byte("fake image"), 0644)).To(Succeed())
	})

	It("reads recognized text from stdout", func() {
		eng := engine.NewCommandEngine("echoer", []string{"echo", "recognized", "text"}, "", time.Minute)

		Expect(eng.Initialize(context.Background())).To(Succeed())

		text, err := eng.ExtractText(context.Background(), docPath)
		Expect(err).To(BeNil())
		Expect(text).To(Equal("recognized text"))
	})

	It("substitutes the document path into the command", func() {
		eng := engine.NewCommandEngine("catter", []string{"cat", "{file}"}, "", time.Minute)

		text, err := eng.ExtractText(context.Background(), docPath)
		Expect(err).To(BeNil())
		Expect(text).To(Equal("fake image"))
	})

	It("reads recognized text from the output glob", func() {
		eng := engine.NewCommandEngine(
			"writer",
			[]string{"sh", "-c", "echo from file > {output}/result.md"},
			"*.md",
			time.Minute,
		)

		text, err := eng.ExtractText(context.Background(), docPath)
		Expect(err).To(BeNil())
		Expect(text).To(Equal("from file"))
	})

	It("wraps command failures as extraction errors", func() {
		eng := engine.NewCommandEngine("broken", []string{"sh", "-c", "echo no dice >&2; exit 3"}, "", time.Minute)

		_, err := eng.ExtractText(context.Background(), docPath)

		var extractionErr *engine.ExtractionError
		Expect(errors.As(err, &extractionErr)).To(BeTrue())
		Expect(extractionErr.Engine).To(Equal("broken"))
		Expect(extractionErr.Message).To(ContainSubstring("no dice"))
	})

	It("fails when the glob matches nothing", func() {
		eng := engine.NewCommandEngine("silent", []string{"true"}, "*.md", time.Minute)

		_, err := eng.ExtractText(context.Background(), docPath)
		Expect(err).To(MatchError(ContainSubstring("no output matching")))
	})

	It("fails initialization for a missing binary", func() {
		eng := engine.NewCommandEngine("ghost", []string{"definitely-not-a-real-binary"}, "", time.Minute)
		Expect(eng.Initialize(context.Background())).ToNot(Succeed())
	})
})
