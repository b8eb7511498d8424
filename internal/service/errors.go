package service

import (
	"fmt"
)

type ErrTaskNotFound struct {
	error
}

func NewErrTaskNotFound(id string) *ErrTaskNotFound {
	return &ErrTaskNotFound{fmt.Errorf("task %s not found", id)}
}

// ErrTaskNotCompleted rejects a result query on a task that exists but has
// not reached the completed state. Distinct from ErrTaskNotFound on purpose.
type ErrTaskNotCompleted struct {
	error
	Status string
}

func NewErrTaskNotCompleted(id string, status string) *ErrTaskNotCompleted {
	return &ErrTaskNotCompleted{
		error:  fmt.Errorf("task %s is not completed yet: status is %s", id, status),
		Status: status,
	}
}

type ErrDocumentNotFound struct {
	error
}

func NewErrDocumentNotFound(id string) *ErrDocumentNotFound {
	return &ErrDocumentNotFound{fmt.Errorf("no uploaded document found for task %s", id)}
}

type ErrUnsupportedMedia struct {
	error
}

func NewErrUnsupportedMedia(extension string) *ErrUnsupportedMedia {
	return &ErrUnsupportedMedia{fmt.Errorf("unsupported file format %q", extension)}
}
