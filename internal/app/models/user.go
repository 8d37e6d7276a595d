package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"jdoe"`                    // Display name
	Email     string    `json:"email" db:"email" example:"jdoe@example.com"`              // User's email address (unique)
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"learner"`                         // User's role (admin, tutor or learner)
	Phone     string    `json:"phone" db:"phone" example:"+15550001122"`                  // Contact phone (may be empty)
	Bio       string    `json:"bio" db:"bio" example:"Math tutor since 2019"`             // Short free-form bio (may be empty)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
