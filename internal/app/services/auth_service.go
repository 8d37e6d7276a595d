package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
	"github.com/bridgelms/bridgelms/internal/pkg/auth"
)

// Auth service validation errors
var (
	ErrAuthValidation = fmt.Errorf("%w: auth validation", apperrors.ErrValidationFailed)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthService handles registration, login and profile management
type AuthService struct {
	userStore  UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userStore:  userStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", ErrAuthValidation)
	}

	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if a password meets the minimum requirements
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrAuthValidation)
	}

	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	return nil
}

// Register creates a new user account. The admin role can never be
// self-assigned; an empty role defaults to learner. Duplicate emails are
// rejected by the users_email_key constraint.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleLearner
	}

	if role == models.RoleAdmin {
		return nil, apperrors.NewCustomError(apperrors.ErrAdminRegistration,
			"Cannot register as admin! Admin role is assigned manually.")
	}

	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrAuthValidation, role)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
		Phone:    req.Phone,
		Bio:      req.Bio,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewConflictError("User already exists")
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return user, nil
}

// Login authenticates a user and issues a self-contained access token.
// An unknown email is reported as not found; a wrong password as invalid
// credentials.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	if req.Password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", ErrAuthValidation)
	}

	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewResourceNotFoundError("User does not exist!")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Incorrect email or password")
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		Message:     "User logged in successfully!",
		AccessToken: token,
		Role:        user.Role,
		UserID:      strconv.FormatInt(user.ID, 10),
	}, nil
}

// GetProfile returns the caller's own user record
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's profile
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) error {
	if !req.HasChanges() {
		return nil
	}

	if req.Email != nil {
		if err := s.validateEmail(*req.Email); err != nil {
			return err
		}
	}

	err := s.userStore.UpdateProfile(ctx, userID, req.Username, req.Email, req.Phone, req.Bio)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return apperrors.NewConflictError("Email already in use")
		}
		return err
	}

	return nil
}
