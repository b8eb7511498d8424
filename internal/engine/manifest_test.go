package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ocrdiff/ocrdiff/internal/engine"
)

const manifestYaml = `
engines:
  - name: marker
    type: command
    command: ["marker_single", "{file}", "--output_dir", "{output}"]
    output_glob: "*.md"
    timeout: 10m
  - name: olmocr
    type: remote
    url: http://localhost:8000/ocr
    health_url: http://localhost:8000/health
    timeout: 5m
`

var _ = Describe("Manifest", func() {
	It("parses a valid manifest", func() {
		m, err := engine.ParseManifest([]byte(manifestYaml))

		Expect(err).To(BeNil())
		Expect(m.Engines).To(HaveLen(2))
		Expect(m.Engines[0].Name).To(Equal("marker"))
		Expect(m.Engines[0].Type).To(Equal(engine.EngineTypeCommand))
		Expect(m.Engines[1].Url).To(Equal("http://localhost:8000/ocr"))
	})

	It("builds engines in declaration order", func() {
		m, err := engine.ParseManifest([]byte(manifestYaml))
		Expect(err).To(BeNil())

		engines, err := m.Build()
		Expect(err).To(BeNil())
		Expect(engines).To(HaveLen(2))
		Expect(engines[0].Name()).To(Equal("marker"))
		Expect(engines[1].Name()).To(Equal("olmocr"))
	})

	It("rejects an unknown engine type", func() {
		_, err := engine.ParseManifest([]byte(`
engines:
  - name: x
    type: gpu
`))
		Expect(err).ToNot(BeNil())
	})

	It("rejects duplicate engine names", func() {
		_, err := engine.ParseManifest([]byte(`
engines:
  - name: twin
    type: command
    command: ["true"]
  - name: twin
    type: command
    command: ["true"]
`))
		Expect(err).To(MatchError(ContainSubstring("duplicate engine")))
	})

	It("rejects a malformed timeout", func() {
		_, err := engine.ParseManifest([]byte(`
engines:
  - name: x
    type: command
    command: ["true"]
    timeout: soon
`))
		Expect(err).To(MatchError(ContainSubstring("timeout")))
	})

	It("rejects a remote engine without a url", func() {
		_, err := engine.ParseManifest([]byte(`
engines:
  - name: x
    type: remote
`))
		Expect(err).ToNot(BeNil())
	})
})
