package v1alpha1

import (
	"github.com/ocrdiff/ocrdiff/internal/config"
	"github.com/ocrdiff/ocrdiff/internal/service"
)

type ServiceHandler struct {
	taskSrv *service.TaskService
	cfg     *config.Config
}

func NewServiceHandler(taskSrv *service.TaskService, cfg *config.Config) *ServiceHandler {
	return &ServiceHandler{
		taskSrv: taskSrv,
		cfg:     cfg,
	}
}
