package dto

import (
	"strconv"
	"time"

	"github.com/bridgelms/bridgelms/internal/app/models"
)

// RegisterRequest represents the user registration payload
type RegisterRequest struct {
	Username string          `json:"username" binding:"required" example:"jdoe"`
	Email    string          `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password string          `json:"password" binding:"required" example:"s3cret123"`
	Role     models.RoleType `json:"role" example:"learner"`
	Phone    string          `json:"phone" example:"+15550001122"`
	Bio      string          `json:"bio" example:"Lifelong learner"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret123"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Message     string          `json:"message" example:"User logged in successfully!"`
	AccessToken string          `json:"access_token"`
	Role        models.RoleType `json:"role" example:"learner"`
	UserID      string          `json:"user_id" example:"42"`
}

// UpdateProfileRequest represents a partial profile update. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// HasChanges reports whether the request updates at least one field
func (r *UpdateProfileRequest) HasChanges() bool {
	return r.Username != nil || r.Email != nil || r.Phone != nil || r.Bio != nil
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID        string          `json:"id" example:"42"`
	Username  string          `json:"username" example:"jdoe"`
	Email     string          `json:"email" example:"jdoe@example.com"`
	Role      models.RoleType `json:"role" example:"learner"`
	Phone     string          `json:"phone,omitempty"`
	Bio       string          `json:"bio,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewUserResponse maps a user model to its public representation.
// The storage id is rendered as a string under the "id" key.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        strconv.FormatInt(u.ID, 10),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}
