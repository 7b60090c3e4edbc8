package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogCPT/internal/domain"
	"blogCPT/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupIdentityRepo(t *testing.T) (IdentityProvider, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewIdentityRepository(sqlxDB, bcrypt.MinCost), mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "email", "display_name", "email_verified", "password_hash", "created_at"})
}

func TestIdentityRepository_CreateUser(t *testing.T) {
	req := models.CreateUserRequest{
		Email:       "  A@X.com ",
		Password:    "password123",
		DisplayName: " Ann ",
	}

	t.Run("creates user with hashed password", func(t *testing.T) {
		repo, mock := setupIdentityRepo(t)

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(sqlmock.AnyArg(), "a@x.com", "Ann", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		user, err := repo.CreateUser(context.Background(), req)

		require.NoError(t, err)
		_, parseErr := uuid.Parse(user.UserID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "Ann", user.DisplayName)
		assert.False(t, user.EmailVerified)
		assert.NotEqual(t, req.Password, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo, mock := setupIdentityRepo(t)

		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint \"users_email_key\""})

		_, err := repo.CreateUser(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("other database errors are not conflicts", func(t *testing.T) {
		repo, mock := setupIdentityRepo(t)

		mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("connection refused"))

		_, err := repo.CreateUser(context.Background(), req)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrConflict)
	})
}

func TestIdentityRepository_GetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupIdentityRepo(t)
		id := uuid.New().String()

		mock.ExpectQuery(`SELECT \* FROM users WHERE email = \$1`).
			WithArgs("a@x.com").
			WillReturnRows(userRows().AddRow(id, "a@x.com", "Ann", false, "hash", time.Now()))

		user, err := repo.GetUserByEmail(context.Background(), "A@x.com")

		require.NoError(t, err)
		assert.Equal(t, id, user.UserID)
		assert.Equal(t, "Ann", user.DisplayName)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo, mock := setupIdentityRepo(t)

		mock.ExpectQuery(`SELECT \* FROM users`).WithArgs("nobody@x.com").WillReturnRows(userRows())

		_, err := repo.GetUserByEmail(context.Background(), "nobody@x.com")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestIdentityRepository_GetUserByID(t *testing.T) {
	repo, mock := setupIdentityRepo(t)

	_, err := repo.GetUserByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	id := uuid.New().String()
	mock.ExpectQuery(`SELECT \* FROM users WHERE user_id = \$1`).WithArgs(id).WillReturnRows(userRows())

	_, err = repo.GetUserByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityRepository_GetUserByIDBracedForm(t *testing.T) {
	repo, mock := setupIdentityRepo(t)
	canonical := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM users WHERE user_id = \$1`).
		WithArgs(canonical).
		WillReturnRows(userRows().AddRow(canonical, "ann@x.com", "Ann", false, "hash", created))

	user, err := repo.GetUserByID(context.Background(), "{"+canonical+"}")

	require.NoError(t, err)
	assert.Equal(t, canonical, user.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityRepository_VerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	id := uuid.New().String()

	tests := []struct {
		name      string
		password  string
		rows      *sqlmock.Rows
		expectErr error
	}{
		{
			name:     "correct password",
			password: "password123",
			rows:     userRows().AddRow(id, "a@x.com", "Ann", false, string(hash), time.Now()),
		},
		{
			name:      "wrong password",
			password:  "wrong-password",
			rows:      userRows().AddRow(id, "a@x.com", "Ann", false, string(hash), time.Now()),
			expectErr: domain.ErrUnauthenticated,
		},
		{
			name:      "unknown email",
			password:  "password123",
			rows:      userRows(),
			expectErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupIdentityRepo(t)
			mock.ExpectQuery(`SELECT \* FROM users`).WithArgs("a@x.com").WillReturnRows(tt.rows)

			user, err := repo.VerifyPassword(context.Background(), "a@x.com", tt.password)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, user.UserID)
			}
		})
	}
}

func TestTablesRepository_CountTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTablesRepository(sqlx.NewDb(db, "postgres"))

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountTables(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
