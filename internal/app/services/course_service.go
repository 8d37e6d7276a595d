package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	appauth "github.com/bridgelms/bridgelms/internal/app/auth"
	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
)

// Course service errors
var (
	ErrCourseValidation = fmt.Errorf("%w: course validation", apperrors.ErrValidationFailed)
)

const (
	// DefaultMaxStudents is used when course creation omits a capacity
	DefaultMaxStudents = 50
	// DefaultListLimit bounds course listings when no limit is given
	DefaultListLimit = 20
	// MaxListLimit is the hard cap on page size
	MaxListLimit = 100
)

// CourseService handles course creation, discovery and enrollment
type CourseService struct {
	courseStore     CourseStore
	enrollmentStore EnrollmentStore
	userStore       UserStore
	authz           *appauth.AuthorizationService
	logger          zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseStore CourseStore,
	enrollmentStore EnrollmentStore,
	userStore UserStore,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseStore:     courseStore,
		enrollmentStore: enrollmentStore,
		userStore:       userStore,
		authz:           authz,
		logger:          logger,
	}
}

// CreateCourse persists a new course owned by the caller. There is no
// uniqueness constraint on titles.
func (s *CourseService) CreateCourse(ctx context.Context, caller appauth.Caller, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.authz.RequireRole(caller, models.RoleAdmin, models.RoleTutor); err != nil {
		return nil, err
	}
	if err := s.authz.RequirePermission(caller, appauth.PermCreateCourse); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrCourseValidation)
	}

	maxStudents := DefaultMaxStudents
	if req.MaxStudents != nil {
		if *req.MaxStudents <= 0 {
			return nil, fmt.Errorf("%w: max students must be positive", ErrCourseValidation)
		}
		maxStudents = *req.MaxStudents
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		MaxStudents: maxStudents,
		IsPublic:    isPublic,
		TutorID:     caller.ID,
		IsActive:    true,
	}

	if err := s.courseStore.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", course.ID).Int64("tutorID", caller.ID).Msg("Course created")

	return course, nil
}

// ListCourses returns active courses matching the optional filters
func (s *CourseService) ListCourses(ctx context.Context, filter dto.CourseListFilter) ([]*models.Course, error) {
	if filter.Limit <= 0 || filter.Limit > MaxListLimit {
		filter.Limit = DefaultListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	return s.courseStore.List(ctx, filter)
}

// EnrollLearner enrolls the caller into a course. A course that is missing
// or inactive is not found; an existing enrollment row in any status blocks
// re-enrollment; the capacity check and insert commit atomically, so the
// active-enrollment count never exceeds max_students even under concurrent
// calls.
func (s *CourseService) EnrollLearner(ctx context.Context, caller appauth.Caller, courseID int64) (*models.Enrollment, error) {
	if err := s.authz.RequireRole(caller, models.RoleLearner); err != nil {
		return nil, err
	}
	if err := s.authz.RequirePermission(caller, appauth.PermEnrollCourses); err != nil {
		return nil, err
	}

	course, err := s.courseStore.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, apperrors.NewResourceNotFoundError("Course not found")
	}

	enrolled, err := s.enrollmentStore.Exists(ctx, courseID, caller.ID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, apperrors.NewConflictError("Already enrolled in this course")
	}

	enrollment, err := s.enrollmentStore.Create(ctx, courseID, caller.ID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyEnrolled):
			return nil, apperrors.NewConflictError("Already enrolled in this course")
		case errors.Is(err, apperrors.ErrCourseFull):
			return nil, apperrors.NewBadRequestError("Course is full")
		}
		return nil, err
	}

	s.logger.Info().Int64("courseID", courseID).Int64("learnerID", caller.ID).Msg("Learner enrolled")

	return enrollment, nil
}

// MyCourses returns the courses the caller teaches (tutor/admin) or is
// enrolled in (learner)
func (s *CourseService) MyCourses(ctx context.Context, caller appauth.Caller) ([]*models.Course, error) {
	switch caller.Role {
	case models.RoleAdmin, models.RoleTutor:
		return s.courseStore.GetByTutorID(ctx, caller.ID)
	case models.RoleLearner:
		return s.courseStore.GetByLearnerID(ctx, caller.ID)
	}
	return nil, apperrors.NewForbiddenError("Access denied!")
}

// GetCourseTutor returns the public contact fields of a course's tutor
func (s *CourseService) GetCourseTutor(ctx context.Context, courseID int64) (*models.User, error) {
	course, err := s.courseStore.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	tutor, err := s.userStore.GetByID(ctx, course.TutorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Tutor not found")
		}
		return nil, err
	}

	return tutor, nil
}
