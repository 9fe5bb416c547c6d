package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
	"github.com/findup-dz/findup-api/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "findup.test",
	})
	return NewAuthService(users, jwtService), users
}

func TestRegister_Success(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), "Amine Benali", "Amine@Example.com", "s3cure-pass")
	require.NoError(t, err)

	assert.Equal(t, "Amine Benali", user.Name)
	assert.Equal(t, "amine@example.com", user.Email, "email is normalized to lower case")
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "s3cure-pass", user.Password, "password is stored hashed")
	assert.Contains(t, user.Image, "ui-avatars.com")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), "Amine", "amine@example.com", "s3cure-pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Autre", "amine@example.com", "other-pass")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "  ", "amine@example.com", "s3cure-pass"},
		{"bad email", "Amine", "not-an-email", "s3cure-pass"},
		{"short password", "Amine", "amine@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), "Amine", "amine@example.com", "s3cure-pass")
	require.NoError(t, err)

	user, token, expiresIn, err := svc.Login(context.Background(), "amine@example.com", "s3cure-pass")
	require.NoError(t, err)
	assert.Equal(t, "amine@example.com", user.Email)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), "Amine", "amine@example.com", "s3cure-pass")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "amine@example.com", "wrong-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetCurrentUser(t *testing.T) {
	svc, users := newAuthFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})

	got, err := svc.GetCurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.GetCurrentUser(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
