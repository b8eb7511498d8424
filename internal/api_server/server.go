package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ocrdiff/ocrdiff/internal/config"
	handlers "github.com/ocrdiff/ocrdiff/internal/handlers/v1alpha1"
	"github.com/ocrdiff/ocrdiff/internal/service"
	"github.com/ocrdiff/ocrdiff/pkg/metrics"
	"github.com/ocrdiff/ocrdiff/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	taskSrv  *service.TaskService
	listener net.Listener
}

// New returns a new instance of the ocrdiff API server.
func New(cfg *config.Config, taskSrv *service.TaskService, listener net.Listener) *Server {
	return &Server{
		cfg:      cfg,
		taskSrv:  taskSrv,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	handler := handlers.NewServiceHandler(s.taskSrv, s.cfg)

	router.Get("/healthz", handler.Health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/documents", handler.UploadDocument)
		r.Post("/documents/{id}/process", handler.ProcessDocument)
		r.Get("/tasks", handler.ListTasks)
		r.Get("/tasks/{id}", handler.GetTaskStatus)
		r.Get("/tasks/{id}/result", handler.GetTaskResult)
		r.Delete("/tasks/{id}", handler.DeleteTask)
	})

	srv := &http.Server{
		Addr:    s.cfg.Service.Address,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
	}()

	zap.S().Named("api_server").Infof("Serving api: %s", s.cfg.Service.Address)
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
