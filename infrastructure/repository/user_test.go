package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

func TestUserRepository(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id,name,email,password_hash,role) VALUES ($1,$2,$3,$4,$5) RETURNING created_at")).
		WithArgs("u1", "Ana", "ana@example.com", "hash", "staff").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "Ana", "ana@example.com", "hash", "staff", createdAt))

	user, err := repo.CreateUser(context.Background(), &domain.User{ID: "u1", Name: "Ana", Email: "ana@example.com", PasswordHash: "hash", Role: domain.RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, createdAt, user.CreatedAt)

	missing, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	found, err := repo.GetUserByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, found.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
