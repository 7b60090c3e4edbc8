package test

import (
	"context"

	"blogCPT/internal/models"
	"blogCPT/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, claims *models.Claims) (*models.User, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, claims *models.Claims, req service.CreatePostRequest) (string, error) {
	args := m.Called(ctx, claims, req)
	return args.String(0), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, claims *models.Claims, postID string, fields models.PostFields) error {
	args := m.Called(ctx, claims, postID, fields)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, claims *models.Claims, postID string) error {
	args := m.Called(ctx, claims, postID)
	return args.Error(0)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) Health(ctx context.Context) (service.HealthStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.HealthStatus), args.Error(1)
}
