package services

import (
	"context"

	"github.com/rs/zerolog"

	appauth "github.com/bridgelms/bridgelms/internal/app/auth"
	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
)

// AnnouncementService handles course announcements
type AnnouncementService struct {
	announcementStore AnnouncementStore
	enrollmentStore   EnrollmentStore
	courseStore       CourseStore
	authz             *appauth.AuthorizationService
	logger            zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(
	announcementStore AnnouncementStore,
	enrollmentStore EnrollmentStore,
	courseStore CourseStore,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcementStore: announcementStore,
		enrollmentStore:   enrollmentStore,
		courseStore:       courseStore,
		authz:             authz,
		logger:            logger,
	}
}

// CreateAnnouncement posts an announcement to a course the caller owns.
// The course must exist and be active.
func (s *AnnouncementService) CreateAnnouncement(
	ctx context.Context,
	caller appauth.Caller,
	courseID int64,
	req *dto.CreateAnnouncementRequest,
) (*models.Announcement, error) {
	if err := s.authz.RequireRole(caller, models.RoleAdmin, models.RoleTutor); err != nil {
		return nil, err
	}
	if err := s.authz.RequirePermission(caller, appauth.PermPostAnnounce); err != nil {
		return nil, err
	}

	course, err := s.authz.RequireCourseOwner(ctx, caller, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, apperrors.NewResourceNotFoundError("Course not found")
	}

	announcement := &models.Announcement{
		CourseID:    courseID,
		CreatedBy:   caller.ID,
		Title:       req.Title,
		Content:     req.Content,
		IsImportant: req.IsImportant,
	}

	if err := s.announcementStore.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("announcementID", announcement.ID).
		Int64("courseID", courseID).
		Bool("important", announcement.IsImportant).
		Msg("Announcement posted")

	return announcement, nil
}

// CourseAnnouncements returns announcements for a course, important ones
// first. Learners must be enrolled; tutors must own the course; admins are
// unrestricted.
func (s *AnnouncementService) CourseAnnouncements(ctx context.Context, caller appauth.Caller, courseID int64) ([]*models.Announcement, error) {
	course, err := s.courseStore.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.requireCourseAccess(ctx, caller, course); err != nil {
		return nil, err
	}

	return s.announcementStore.ListByCourse(ctx, courseID)
}

func (s *AnnouncementService) requireCourseAccess(ctx context.Context, caller appauth.Caller, course *models.Course) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleTutor:
		if course.TutorID != caller.ID {
			return apperrors.NewForbiddenError("Access denied to this course")
		}
		return nil
	case models.RoleLearner:
		enrolled, err := s.enrollmentStore.Exists(ctx, course.ID, caller.ID)
		if err != nil {
			return err
		}
		if !enrolled {
			return apperrors.NewCustomError(apperrors.ErrNotEnrolled, "Not enrolled in this course")
		}
		return nil
	}
	return apperrors.NewForbiddenError("Access denied!")
}
