package service

import (
	"context"

	"blogCPT/internal/repository"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthStatus struct {
	Database    string `json:"database"`
	CountTables int    `json:"countTables"`
}

type TablesService interface {
	Health(ctx context.Context) (HealthStatus, error)
}

type tablesService struct {
	db         Pinger
	tablesRepo repository.TablesRepository
}

func NewTablesService(db Pinger, tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{db: db, tablesRepo: tablesRepo}
}

func (t *tablesService) Health(ctx context.Context) (HealthStatus, error) {
	if err := t.db.HealthCheck(ctx); err != nil {
		return HealthStatus{Database: "unavailable"}, err
	}

	countTables, err := t.tablesRepo.CountTables(ctx)
	if err != nil {
		return HealthStatus{Database: "unavailable"}, err
	}

	return HealthStatus{Database: "ok", CountTables: countTables}, nil
}
