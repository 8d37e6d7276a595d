package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
)

// stubCourses serves a single course by ID
type stubCourses struct {
	course *models.Course
}

func (s stubCourses) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if s.course == nil || s.course.ID != id {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *s.course
	return &clone, nil
}

func TestRequireRole(t *testing.T) {
	svc := NewAuthorizationService(NewPermissionTable(), stubCourses{})

	tutor := Caller{ID: 1, Role: models.RoleTutor}

	assert.NoError(t, svc.RequireRole(tutor, models.RoleAdmin, models.RoleTutor))

	err := svc.RequireRole(tutor, models.RoleLearner)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRequirePermission(t *testing.T) {
	svc := NewAuthorizationService(NewPermissionTable(), stubCourses{})

	learner := Caller{ID: 2, Role: models.RoleLearner}

	assert.NoError(t, svc.RequirePermission(learner, PermEnrollCourses))

	err := svc.RequirePermission(learner, PermCreateCourse)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRequireCourseOwner(t *testing.T) {
	course := &models.Course{ID: 7, TutorID: 1, Title: "Go 101"}
	svc := NewAuthorizationService(NewPermissionTable(), stubCourses{course: course})

	owner := Caller{ID: 1, Role: models.RoleTutor}
	got, err := svc.RequireCourseOwner(context.Background(), owner, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)

	other := Caller{ID: 2, Role: models.RoleTutor}
	_, err = svc.RequireCourseOwner(context.Background(), other, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	admin := Caller{ID: 99, Role: models.RoleAdmin}
	_, err = svc.RequireCourseOwner(context.Background(), admin, 7)
	assert.NoError(t, err)
}

func TestRequireCourseOwnerUnknownCourse(t *testing.T) {
	svc := NewAuthorizationService(NewPermissionTable(), stubCourses{})

	owner := Caller{ID: 1, Role: models.RoleTutor}
	_, err := svc.RequireCourseOwner(context.Background(), owner, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
