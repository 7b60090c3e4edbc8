package database

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/template"
	"time"

	"blogCPT/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type MethodsDB interface {
	CloseDB() error
	RunMigrations(ctx context.Context, migrationFilePath string) error
	HealthCheck(ctx context.Context) error
}

type DB struct {
	*sqlx.DB
	cfg    config.DB
	logger *slog.Logger
}

func ConnectionString(cfg config.DB) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DbHOST,
		cfg.DbPORT,
		cfg.DbUSER,
		cfg.DbPASSWORD,
		cfg.DbNAME,
		cfg.DbSSLMODE,
	)
}

func ConnectDB(ctx context.Context, cfg config.DB, logger *slog.Logger) (*DB, error) {
	logger.Info("connecting to database", "host", cfg.DbHOST, "dbname", cfg.DbNAME)

	db, err := sqlx.ConnectContext(ctx, "postgres", ConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := &DB{DB: db, cfg: cfg, logger: logger}

	if err := dbStruct.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
		logger.Warn("migrations not applied", "error", err)
	}

	if err := dbStruct.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check: %w", err)
	}

	logger.Info("connected to PostgreSQL")
	return dbStruct, nil
}

// New wraps an already opened handle; used by tests with sqlmock.
func New(db *sqlx.DB, cfg config.DB, logger *slog.Logger) *DB {
	return &DB{DB: db, cfg: cfg, logger: logger}
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RenderMigration fills table names into a migration template. Templates may
// use {{quote .BlogsTable}} to emit a quoted identifier.
func RenderMigration(source string, cfg config.DB) (string, error) {
	tmpl, err := template.New("migration").
		Option("missingkey=error").
		Funcs(template.FuncMap{"quote": pq.QuoteIdentifier}).
		Parse(source)
	if err != nil {
		return "", fmt.Errorf("parse migration: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("render migration: %w", err)
	}

	return buf.String(), nil
}

func (db *DB) RunMigrations(ctx context.Context, migrationFilePath string) error {
	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return fmt.Errorf("read migration file %s: %w", migrationFilePath, err)
	}

	query, err := RenderMigration(string(migrationSQL), db.cfg)
	if err != nil {
		return err
	}

	db.logger.Info("applying migrations", "file", migrationFilePath)

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	db.logger.Info("migrations applied")
	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.PingContext(ctx)
}
