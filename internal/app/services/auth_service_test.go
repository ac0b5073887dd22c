package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/pkg/apperrors"
)

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:      "Ayse Demir",
		Email:     "ayse@campushub.edu",
		StudentID: "20210001",
		Major:     "Computer Engineering",
		Password:  "Password123!",
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, zerolog.Nop())

	user, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	assert.NotEqual(t, "Password123!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Password123!")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.StudentID = "20210099" // different student id, same email
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestRegisterDuplicateStudentID(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "other@campushub.edu" // different email, same student id
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrStudentIDTaken)
}

func TestLoginSuccess(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, zerolog.Nop())
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	user, err := svc.Login(ctx, &dto.LoginRequest{Email: "ayse@campushub.edu", Password: "Password123!"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ayse@campushub.edu", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), zerolog.Nop())

	// Unknown email must be indistinguishable from a wrong password
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@campushub.edu", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
