package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	api "github.com/ocrdiff/ocrdiff/api/v1alpha1"
	"github.com/ocrdiff/ocrdiff/internal/handlers/v1alpha1/mappers"
	"github.com/ocrdiff/ocrdiff/internal/service"
	"github.com/ocrdiff/ocrdiff/pkg/requestid"
)

// (POST /api/v1/documents)
func (h *ServiceHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	logger := zap.S().Named("task_handler")

	// Cut the body off at the limit instead of spooling an oversized upload
	// to disk first.
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Service.MaxUploadBytes)

	if err := r.ParseMultipartForm(h.cfg.Service.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			renderError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds the %d byte limit", h.cfg.Service.MaxUploadBytes))
			return
		}
		logger.Warnw("Failed to parse upload", "error", err)
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	taskID, err := h.taskSrv.Upload(r.Context(), header.Filename, file)
	if err != nil {
		switch err.(type) {
		case *service.ErrUnsupportedMedia:
			renderError(w, r, http.StatusBadRequest, err.Error())
		default:
			logger.Errorw("Upload failed", "error", err)
			renderError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.UploadResponse{
		TaskId:   taskID,
		Filename: header.Filename,
		Message:  fmt.Sprintf("document stored; start processing with POST /api/v1/documents/%s/process", taskID),
	})
}

// (POST /api/v1/documents/{id}/process)
func (h *ServiceHandler) ProcessDocument(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	task, err := h.taskSrv.Submit(r.Context(), taskID)
	if err != nil {
		switch err.(type) {
		case *service.ErrDocumentNotFound:
			renderError(w, r, http.StatusNotFound, err.Error())
		default:
			zap.S().Named("task_handler").Errorw("Submit failed", "task_id", taskID, "error", err)
			renderError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, mappers.TaskToStatusApi(*task))
}

// (GET /api/v1/tasks)
func (h *ServiceHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskSrv.ListTasks(r.Context())
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to list tasks: %v", err))
		return
	}

	render.JSON(w, r, mappers.TaskListToApi(tasks))
}

// (GET /api/v1/tasks/{id})
func (h *ServiceHandler) GetTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	task, err := h.taskSrv.GetStatus(r.Context(), taskID)
	if err != nil {
		switch err.(type) {
		case *service.ErrTaskNotFound:
			renderError(w, r, http.StatusNotFound, err.Error())
		default:
			renderError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	render.JSON(w, r, mappers.TaskToStatusApi(*task))
}

// (GET /api/v1/tasks/{id}/result)
func (h *ServiceHandler) GetTaskResult(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	task, err := h.taskSrv.GetResult(r.Context(), taskID)
	if err != nil {
		switch err.(type) {
		case *service.ErrTaskNotFound:
			renderError(w, r, http.StatusNotFound, err.Error())
		case *service.ErrTaskNotCompleted:
			renderError(w, r, http.StatusConflict, err.Error())
		default:
			renderError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	render.JSON(w, r, mappers.TaskToResultApi(*task))
}

// (DELETE /api/v1/tasks/{id})
func (h *ServiceHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	if err := h.taskSrv.DeleteTask(r.Context(), taskID); err != nil {
		renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.NoContent(w, r)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, api.Error{
		Message:   message,
		RequestId: requestid.FromContextPtr(r.Context()),
	})
}
