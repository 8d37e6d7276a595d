package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	appauth "github.com/bridgelms/bridgelms/internal/app/auth"
	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
	"github.com/bridgelms/bridgelms/internal/pkg/filestorage"
)

// ResourceService handles course material uploads and access
type ResourceService struct {
	resourceStore   ResourceStore
	enrollmentStore EnrollmentStore
	courseStore     CourseStore
	storage         filestorage.FileStorage
	authz           *appauth.AuthorizationService
	logger          zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(
	resourceStore ResourceStore,
	enrollmentStore EnrollmentStore,
	courseStore CourseStore,
	storage filestorage.FileStorage,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *ResourceService {
	return &ResourceService{
		resourceStore:   resourceStore,
		enrollmentStore: enrollmentStore,
		courseStore:     courseStore,
		storage:         storage,
		authz:           authz,
		logger:          logger,
	}
}

// CreateResource stores a new learning resource for a course the caller
// owns. File-backed types (pdf, document, video) require an uploaded file;
// link resources require an external URL. Anything else is a bad request.
// A storage failure fails the whole request.
func (s *ResourceService) CreateResource(
	ctx context.Context,
	caller appauth.Caller,
	courseID int64,
	req *dto.CreateResourceRequest,
	file *multipart.FileHeader,
) (*models.Resource, error) {
	if err := s.authz.RequireRole(caller, models.RoleAdmin, models.RoleTutor); err != nil {
		return nil, err
	}
	if err := s.authz.RequirePermission(caller, appauth.PermUploadResources); err != nil {
		return nil, err
	}

	if _, err := s.authz.RequireCourseOwner(ctx, caller, courseID); err != nil {
		return nil, err
	}

	if !req.ResourceType.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid resource type or missing file/URL")
	}

	resource := &models.Resource{
		CourseID:    courseID,
		UploadedBy:  caller.ID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.ResourceType,
	}

	switch {
	case req.ResourceType.RequiresFile() && file != nil:
		fileURL, err := s.storage.SaveFile(file)
		if err != nil {
			return nil, err
		}
		fileName := file.Filename
		resource.FileURL = &fileURL
		resource.FileName = &fileName
	case req.ResourceType == models.ResourceLink && strings.TrimSpace(req.ExternalURL) != "":
		externalURL := req.ExternalURL
		resource.ExternalURL = &externalURL
	default:
		return nil, apperrors.NewBadRequestError("Invalid resource type or missing file/URL")
	}

	if err := s.resourceStore.Create(ctx, resource); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("resourceID", resource.ID).
		Int64("courseID", courseID).
		Str("type", string(resource.Type)).
		Msg("Resource uploaded")

	return resource, nil
}

// CourseResources returns all resources for a course, newest first. Learners
// must be enrolled; tutors must own the course; admins are unrestricted.
func (s *ResourceService) CourseResources(ctx context.Context, caller appauth.Caller, courseID int64) ([]*models.Resource, error) {
	course, err := s.courseStore.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.requireCourseAccess(ctx, caller, course); err != nil {
		return nil, err
	}

	return s.resourceStore.ListByCourse(ctx, courseID)
}

// requireCourseAccess enforces the shared read rule for course materials:
// enrolled learners, the owning tutor, or an admin.
func (s *ResourceService) requireCourseAccess(ctx context.Context, caller appauth.Caller, course *models.Course) error {
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
