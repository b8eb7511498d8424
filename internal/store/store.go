package store

// Store aggregates the registries owned by the process. Persistence is
// deliberately in-memory: a task record lives exactly as long as the process
// unless deleted explicitly.
type Store interface {
	Task() Task
	Close() error
}

type DataStore struct {
	task Task
}

func NewStore() Store {
	return &DataStore{
		task: NewTaskStore(),
	}
}

func (s *DataStore) Task() Task {
	return s.task
}

func (s *DataStore) Close() error {
	return nil
}
