package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"
)

// (GET /healthz)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
