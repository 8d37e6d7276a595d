package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appauth "github.com/bridgelms/bridgelms/internal/app/auth"
	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
)

// AttendanceService handles learner check-ins and attendance queries
type AttendanceService struct {
	attendanceStore AttendanceStore
	enrollmentStore EnrollmentStore
	authz           *appauth.AuthorizationService
	logger          zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	attendanceStore AttendanceStore,
	enrollmentStore EnrollmentStore,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceStore: attendanceStore,
		enrollmentStore: enrollmentStore,
		authz:           authz,
		logger:          logger,
	}
}

// CheckIn records a present check-in for the caller. The caller must hold an
// active enrollment; a second check-in on the same UTC calendar day is
// rejected by the storage layer.
func (s *AttendanceService) CheckIn(ctx context.Context, caller appauth.Caller, courseID int64) (*models.Attendance, error) {
	if err := s.authz.RequireRole(caller, models.RoleLearner); err != nil {
		return nil, err
	}
	if err := s.authz.RequirePermission(caller, appauth.PermCheckAttendance); err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentStore.ActiveExists(ctx, courseID, caller.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.NewCustomError(apperrors.ErrNotEnrolled, "Not enrolled in this course")
	}

	attendance, err := s.attendanceStore.Create(ctx, courseID, caller.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyCheckedIn) {
			return nil, apperrors.NewConflictError("Already checked in today")
		}
		return nil, err
	}

	s.logger.Info().Int64("courseID", courseID).Int64("learnerID", caller.ID).Msg("Attendance recorded")

	return attendance, nil
}

// CourseAttendance returns all attendance rows for a course, newest first.
// Admins see any course; tutors only courses they own.
func (s *AttendanceService) CourseAttendance(ctx context.Context, caller appauth.Caller, courseID int64) ([]*models.Attendance, error) {
	if err := s.authz.RequireRole(caller, models.RoleAdmin, models.RoleTutor); err != nil {
		return nil, err
	}

	if _, err := s.authz.RequireCourseOwner(ctx, caller, courseID); err != nil {
		return nil, err
	}

	return s.attendanceStore.ListByCourse(ctx, courseID)
}

// MyAttendance returns the caller's own rows for learners, or the rows
// across all owned courses for tutors and admins
func (s *AttendanceService) MyAttendance(ctx context.Context, caller appauth.Caller) ([]*models.Attendance, error) {
	switch caller.Role {
	case models.RoleLearner:
		return s.attendanceStore.ListByLearner(ctx, caller.ID)
	case models.RoleTutor, models.RoleAdmin:
		return s.attendanceStore.ListByTutor(ctx, caller.ID)
	}
	return nil, apperrors.NewForbiddenError("Access denied!")
}
