package server

import (
	"log/slog"
	"net/http"

	"blogCPT/internal/config"
	handlers "blogCPT/internal/handler"
	"blogCPT/internal/middleware"
	"blogCPT/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter registers every route and wraps the mux in the shared middleware.
func NewRouter(h *handlers.Handlers, gate service.AccessGate, cfg config.Server, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	auth := middleware.RequireAuth(gate)

	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/blogs", h.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/blogs/{id}", h.GetPost).Methods(http.MethodGet)
	r.Handle("/api/blogs", auth(http.HandlerFunc(h.CreatePost))).Methods(http.MethodPost)
	r.Handle("/api/blogs/{id}", auth(http.HandlerFunc(h.UpdatePost))).Methods(http.MethodPut)
	r.Handle("/api/blogs/{id}", auth(http.HandlerFunc(h.DeletePost))).Methods(http.MethodDelete)

	r.HandleFunc("/api/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.Handle("/api/auth/user", auth(http.HandlerFunc(h.GetCurrentUser))).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	return middleware.Chain(
		r,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID,
	)
}
