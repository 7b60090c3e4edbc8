package handlers

import (
	"log/slog"

	"blogCPT/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService   service.AuthService
	PostService   service.PostService
	TablesService service.TablesService
	Logger        *slog.Logger
	Validate      *validator.Validate
}

func NewHandlers(service *service.Service, logger *slog.Logger) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		PostService:   service.Post,
		TablesService: service.Tables,
		Logger:        logger,
		Validate:      validator.New(validator.WithRequiredStructEnabled()),
	}
}
