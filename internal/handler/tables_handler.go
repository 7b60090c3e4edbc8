package handlers

import (
	"net/http"

	"blogCPT/internal/service"
)

const apiVersion = "1.0.0"

type HomeResponse struct {
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status string `json:"status"`
	service.HealthStatus
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, HomeResponse{
		Message: "Blog API Server is running!",
		Version: apiVersion,
		Endpoints: map[string]map[string]string{
			"blogs": {
				"GET /api/blogs":        "Get all blogs",
				"GET /api/blogs/:id":    "Get single blog",
				"POST /api/blogs":       "Create new blog (auth required)",
				"PUT /api/blogs/:id":    "Update blog (auth required)",
				"DELETE /api/blogs/:id": "Delete blog (auth required)",
			},
			"auth": {
				"POST /api/auth/register": "Register new user",
				"POST /api/auth/login":    "Sign in and receive a token",
				"GET /api/auth/user":      "Get current user info (auth required)",
			},
		},
	}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status, err := h.TablesService.Health(r.Context())
	if err != nil {
		h.Logger.WarnContext(r.Context(), "health check failed", "error", err)
		writeSuccess(w, HealthResponse{Status: "unhealthy", HealthStatus: status}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "healthy", HealthStatus: status}, http.StatusOK)
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Endpoint not found", http.StatusNotFound)
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
}
