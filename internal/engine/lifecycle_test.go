package engine_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ocrdiff/ocrdiff/internal/engine"
)

var _ = Describe("InitializeAll", func() {
	It("excludes engines that fail to initialize and keeps the order", func() {
		engines := []engine.Engine{
			&fakeEngine{name: "first"},
			&fakeEngine{name: "second", initErr: errors.New("model missing")},
			&fakeEngine{name: "third"},
		}

		active := engine.InitializeAll(context.Background(), engines)

		Expect(active).To(HaveLen(2))
		Expect(active[0].Name()).To(Equal("first"))
		Expect(active[1].Name()).To(Equal("third"))
	})
})

var _ = Describe("CleanupAll", func() {
	It("cleans every engine", func() {
		first := &fakeEngine{name: "first"}
		second := &fakeEngine{name: "second"}

		engine.CleanupAll([]engine.Engine{first, second})

		Expect(first.cleaned).To(BeTrue())
		Expect(second.cleaned).To(BeTrue())
	})
})
