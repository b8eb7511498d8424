package store

import (
	"context"
	"sort"
	"sync"

	"github.com/ocrdiff/ocrdiff/internal/store/model"
)

// Task is the task registry contract. Records are replaced wholesale on
// update so concurrent readers never observe a partially written record.
type Task interface {
	Create(ctx context.Context, task model.Task) (*model.Task, error)
	Get(ctx context.Context, id string) (*model.Task, error)
	Update(ctx context.Context, task model.Task) (*model.Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Task, error)
}

type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
}

var _ Task = (*TaskStore)(nil)

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[string]model.Task)}
}

func (s *TaskStore) Create(ctx context.Context, task model.Task) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; ok {
		return nil, ErrDuplicateKey
	}

	s.tasks[task.ID] = task
	return &task, nil
}

func (s *TaskStore) Get(ctx context.Context, id string) (*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &task, nil
}

func (s *TaskStore) Update(ctx context.Context, task model.Task) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return nil, ErrRecordNotFound
	}

	s.tasks[task.ID] = task
	return &task, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrRecordNotFound
	}

	delete(s.tasks, id)
	return nil
}

// List returns every task record ordered by creation time, newest first.
func (s *TaskStore) List(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}
