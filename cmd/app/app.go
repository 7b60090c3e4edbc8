package app

import (
	"context"
	"fmt"
	"log/slog"

	"blogCPT/internal/config"
	"blogCPT/internal/database"
	"blogCPT/internal/repository"
	"blogCPT/internal/service"
)

// App connects to the database and builds the repository and service layers.
func App(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, *service.Service, error) {
	db, err := database.ConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	repo := repository.NewRepository(db.DB, cfg)
	services := service.NewService(repo, cfg, db, logger)

	return db, services, nil
}
