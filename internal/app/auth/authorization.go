package auth

import (
	"context"

	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
)

// Caller identifies the authenticated request principal, as resolved from
// the bearer token.
type Caller struct {
	ID   int64
	Role models.RoleType
}

// CourseGetter is the read access the authorizer needs to resolve course
// ownership.
type CourseGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// AuthorizationService gates domain operations with role, permission and
// ownership pre-conditions. It never mutates state.
type AuthorizationService struct {
	permissions *PermissionTable
	courses     CourseGetter
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(permissions *PermissionTable, courses CourseGetter) *AuthorizationService {
	return &AuthorizationService{
		permissions: permissions,
		courses:     courses,
	}
}

// RequireRole fails with a permission error unless the caller's role is in
// the allowed set.
func (s *AuthorizationService) RequireRole(caller Caller, allowed ...models.RoleType) error {
	for _, role := range allowed {
		if caller.Role == role {
			return nil
		}
	}
	return apperrors.NewForbiddenError("Access denied!")
}

// RequirePermission fails with a permission error unless the caller's role
// holds the permission in the static table.
func (s *AuthorizationService) RequirePermission(caller Caller, permission Permission) error {
	if !s.permissions.HasPermission(caller.Role, permission) {
		return apperrors.NewForbiddenError("Permission denied")
	}
	return nil
}

// RequireCourseOwner fails unless the caller owns the referenced course.
// Admin callers pass regardless of ownership. This is the single ownership
// check used by every course-scoped mutation and restricted read.
func (s *AuthorizationService) RequireCourseOwner(ctx context.Context, caller Caller, courseID int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if caller.Role != models.RoleAdmin && course.TutorID != caller.ID {
		return nil, apperrors.NewForbiddenError("Access denied to this course")
	}

	return course, nil
}
