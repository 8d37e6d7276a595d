package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
	"github.com/bridgelms/bridgelms/internal/pkg/auth"
)

func newAuthServiceFixture(t *testing.T) (*AuthService, *memStore) {
	t.Helper()

	store := newMemStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 24 * time.Hour,
		TokenIssuer:    "bridgelms.test",
	})
	return NewAuthService(store, jwtService, zerolog.Nop()), store
}

func TestRegisterDefaultsToLearner(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleLearner, user.Role)
	assert.NotEqual(t, "s3cret123", user.Password, "password must be stored hashed")
}

func TestRegisterAdminRejected(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "mallory",
		Email:    "mallory@example.com",
		Password: "s3cret123",
		Role:     models.RoleAdmin,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAdminRegistration)
}

func TestRegisterUnknownRoleRejected(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret123",
		Role:     "superuser",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe2",
		Email:    "jdoe@example.com",
		Password: "another123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "not-an-email",
		Password: "s3cret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret123",
		Role:     models.RoleTutor,
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "jdoe@example.com",
		Password: "s3cret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, models.RoleTutor, resp.Role)
	assert.Equal(t, "1", resp.UserID)
	assert.Equal(t, int64(1), user.ID)
}

func TestLoginUnknownEmailNotFound(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "jdoe@example.com",
		Password: "wrongpass",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, store := newAuthServiceFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret123",
	})
	require.NoError(t, err)

	bio := "Hello there"
	err = svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	updated, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello there", updated.Bio)
	assert.Equal(t, "jdoe", updated.Username, "untouched fields stay")
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "first",
		Email:    "first@example.com",
		Password: "s3cret123",
	})
	require.NoError(t, err)

	second, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "second",
		Email:    "second@example.com",
		Password: "s3cret123",
	})
	require.NoError(t, err)

	taken := "first@example.com"
	err = svc.UpdateProfile(ctx, second.ID, &dto.UpdateProfileRequest{Email: &taken})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
