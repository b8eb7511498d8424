package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ocrdiff/ocrdiff/internal/comparison"
	"github.com/ocrdiff/ocrdiff/internal/engine"
	"github.com/ocrdiff/ocrdiff/internal/fileio"
	"github.com/ocrdiff/ocrdiff/internal/store"
	"github.com/ocrdiff/ocrdiff/internal/store/model"
	"github.com/ocrdiff/ocrdiff/pkg/metrics"
)

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".tiff": {},
}

// TaskService drives the comparison pipeline: document upload, asynchronous
// orchestration of the recognition engines, and task registry queries.
type TaskService struct {
	store   store.Store
	runner  *engine.Runner
	uploads *fileio.Uploads
}

func NewTaskService(store store.Store, runner *engine.Runner, uploads *fileio.Uploads) *TaskService {
	return &TaskService{
		store:   store,
		runner:  runner,
		uploads: uploads,
	}
}

// Upload validates and stores a document, returning the task id under which
// it can be processed. No registry record is created yet; the task's initial
// state is implicit until Submit.
func (s *TaskService) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", NewErrUnsupportedMedia(ext)
	}

	taskID := uuid.New().String()
	path, err := s.uploads.Save(taskID, filename, content)
	if err != nil {
		return "", fmt.Errorf("failed to store document: %w", err)
	}

	zap.S().Named("task_service").Infow("Document uploaded", "task_id", taskID, "filename", filename, "path", path)
	return taskID, nil
}

// Submit begins orchestration for an uploaded document and returns
// immediately; the caller polls for completion. The registry record starts in
// processing and is guaranteed to reach a terminal state.
func (s *TaskService) Submit(ctx context.Context, taskID string) (*model.Task, error) {
	path, filename, err := s.uploads.Find(taskID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewErrDocumentNotFound(taskID)
		}
		return nil, fmt.Errorf("failed to locate document: %w", err)
	}

	task := model.Task{
		ID:        taskID,
		Filename:  filename,
		Status:    model.TaskStatusProcessing,
		CreatedAt: time.Now(),
	}

	created, err := s.store.Task().Create(ctx, task)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			existing, getErr := s.store.Task().Get(ctx, taskID)
			if getErr == nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to register task: %w", err)
	}

	go s.pipeline(*created, path)

	return created, nil
}

// GetStatus returns the registry record for a task.
func (s *TaskService) GetStatus(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.store.Task().Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrTaskNotFound(taskID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetResult returns the full result of a completed task. Querying an unknown
// task and querying an unfinished one fail distinctly.
func (s *TaskService) GetResult(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.GetStatus(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status != model.TaskStatusCompleted {
		return nil, NewErrTaskNotCompleted(taskID, string(task.Status))
	}

	return task, nil
}

// ListTasks returns every registry record, newest first.
func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.store.Task().List(ctx)
}

// DeleteTask removes the registry record and any stored document. Deleting an
// unknown task is a no-op; subsequent lookups report not found.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.store.Task().Delete(ctx, taskID); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if err := s.uploads.Remove(taskID); err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}

	zap.S().Named("task_service").Infow("Task deleted", "task_id", taskID)
	return nil
}

// pipeline is the single worker driving one task from processing to a
// terminal state. Per-engine failures are absorbed by the runner; any failure
// of the pipeline itself marks the whole task failed with no partial result.
func (s *TaskService) pipeline(task model.Task, path string) {
	ctx := context.Background()
	logger := zap.S().Named("pipeline").With("task_id", task.ID)

	metrics.UpdateTasksProcessingMetric(1)
	defer metrics.UpdateTasksProcessingMetric(-1)

	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("Pipeline panicked", "panic", r)
			s.fail(ctx, task, fmt.Sprintf("pipeline failure: %v", r))
		}
	}()

	logger.Infow("Pipeline started", "filename", task.Filename)

	raw := s.runner.RunAll(ctx, path)
	reference, results := comparison.BuildResults(raw)
	stats := comparison.Aggregate(raw, results)
	merged := comparison.MergeAlignments(reference, raw)

	task.Status = model.TaskStatusCompleted
	task.Result = &model.Result{
		Reference:  reference,
		RawResults: raw,
		Comparison: results,
		Statistics: stats,
		MergedView: merged,
	}

	if _, err := s.store.Task().Update(ctx, task); err != nil {
		// The record may have been deleted while the engines were running;
		// there is nothing left to attach the result to.
		logger.Warnw("Pipeline finished but task record is gone", "error", err)
		return
	}

	metrics.IncreaseTasksFinishedMetric(string(model.TaskStatusCompleted))
	logger.Infow("Pipeline completed", "engines", len(raw), "reference_length", len(reference))
}

func (s *TaskService) fail(ctx context.Context, task model.Task, message string) {
	task.Status = model.TaskStatusFailed
	task.Message = message
	task.Result = nil

	if _, err := s.store.Task().Update(ctx, task); err != nil {
		zap.S().Named("pipeline").Errorw("Failed to record task failure", "task_id", task.ID, "error", err)
		return
	}
	metrics.IncreaseTasksFinishedMetric(string(model.TaskStatusFailed))
}
