package fileio_test

import (
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ocrdiff/ocrdiff/internal/fileio"
)

var _ = Describe("Uploads", func() {
	var uploads *fileio.Uploads

	BeforeEach(func() {
		uploads = fileio.NewUploads(GinkgoT().TempDir())
	})

	It("saves and finds a document by task id", func() {
		path, err := uploads.Save("task-1", "scan.png", strings.NewReader("image bytes"))
		Expect(err).To(BeNil())

		foundPath, filename, err := uploads.Find("task-1")
		Expect(err).To(BeNil())
		Expect(foundPath).To(Equal(path))
		Expect(filename).To(Equal("scan.png"))

		data, err := os.ReadFile(foundPath)
		Expect(err).To(BeNil())
		Expect(string(data)).To(Equal("image bytes"))
	})

	It("strips directory components from filenames", func() {
		path, err := uploads.Save("task-1", "../../etc/passwd", strings.NewReader("x"))
		Expect(err).To(BeNil())
		Expect(path).To(HaveSuffix("task-1_passwd"))
	})

	It("reports missing documents", func() {
		_, _, err := uploads.Find("missing")
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("removes every document of a task", func() {
		_, err := uploads.Save("task-1", "scan.png", strings.NewReader("x"))
		Expect(err).To(BeNil())

		Expect(uploads.Remove("task-1")).To(Succeed())

		_, _, err = uploads.Find("task-1")
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("treats removing an unknown task as a no-op", func() {
		Expect(uploads.Remove("missing")).To(Succeed())
	})
})
