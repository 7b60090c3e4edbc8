package service

import (
	"log/slog"

	"blogCPT/internal/config"
	"blogCPT/internal/repository"
)

type Service struct {
	Token  TokenService
	Gate   AccessGate
	Auth   AuthService
	Post   PostService
	Tables TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, db Pinger, logger *slog.Logger) *Service {
	tokens := NewTokenService(cfg)
	gate := NewAccessGate(tokens, rep.Post, logger)

	return &Service{
		Token:  tokens,
		Gate:   gate,
		Auth:   NewAuthService(rep.User, tokens),
		Post:   NewPostService(rep.Post, gate),
		Tables: NewTablesService(db, rep.Tables),
	}
}
