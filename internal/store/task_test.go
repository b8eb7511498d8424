package store_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ocrdiff/ocrdiff/internal/store"
	"github.com/ocrdiff/ocrdiff/internal/store/model"
)

var _ = Describe("Task store", func() {
	var (
		s   store.Store
		ctx context.Context
	)

	BeforeEach(func() {
		s = store.NewStore()
		ctx = context.TODO()
	})

	AfterEach(func() {
		_ = s.Close()
	})

	Context("Create", func() {
		It("stores a new task", func() {
			task := model.Task{ID: "t1", Filename: "doc.pdf", Status: model.TaskStatusProcessing, CreatedAt: time.Now()}

			created, err := s.Task().Create(ctx, task)
			Expect(err).To(BeNil())
			Expect(created.ID).To(Equal("t1"))

			got, err := s.Task().Get(ctx, "t1")
			Expect(err).To(BeNil())
			Expect(got.Filename).To(Equal("doc.pdf"))
			Expect(got.Status).To(Equal(model.TaskStatusProcessing))
		})

		It("rejects duplicate ids", func() {
			task := model.Task{ID: "t1"}
			_, err := s.Task().Create(ctx, task)
			Expect(err).To(BeNil())

			_, err = s.Task().Create(ctx, task)
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})
	})

	Context("Get", func() {
		It("reports not found for unknown ids", func() {
			_, err := s.Task().Get(ctx, "missing")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("Update", func() {
		It("replaces the record wholesale", func() {
			task := model.Task{ID: "t1", Status: model.TaskStatusProcessing}
			_, err := s.Task().Create(ctx, task)
			Expect(err).To(BeNil())

			task.Status = model.TaskStatusCompleted
			task.Result = &model.Result{Reference: "abc"}
			_, err = s.Task().Update(ctx, task)
			Expect(err).To(BeNil())

			got, err := s.Task().Get(ctx, "t1")
			Expect(err).To(BeNil())
			Expect(got.Status).To(Equal(model.TaskStatusCompleted))
			Expect(got.Result.Reference).To(Equal("abc"))
		})

		It("reports not found for deleted records", func() {
			_, err := s.Task().Update(ctx, model.Task{ID: "gone"})
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("Delete", func() {
		It("removes the record entirely", func() {
			_, err := s.Task().Create(ctx, model.Task{ID: "t1"})
			Expect(err).To(BeNil())

			Expect(s.Task().Delete(ctx, "t1")).To(Succeed())

			_, err = s.Task().Get(ctx, "t1")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		It("reports not found for unknown ids", func() {
			Expect(s.Task().Delete(ctx, "missing")).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("List", func() {
		It("orders records newest first", func() {
			now := time.Now()
			for i, id := range []string{"old", "mid", "new"} {
				_, err := s.Task().Create(ctx, model.Task{ID: id, CreatedAt: now.Add(time.Duration(i) * time.Minute)})
				Expect(err).To(BeNil())
			}

			tasks, err := s.Task().List(ctx)
			Expect(err).To(BeNil())
			Expect(tasks).To(HaveLen(3))
			Expect(tasks[0].ID).To(Equal("new"))
			Expect(tasks[2].ID).To(Equal("old"))
		})
	})
})
