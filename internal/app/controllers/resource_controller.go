package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/app/services"
	"github.com/bridgelms/bridgelms/internal/middleware"
)

// ResourceController handles learning resource operations
type ResourceController struct {
	resourceService *services.ResourceService
	logger          zerolog.Logger
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService, logger zerolog.Logger) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		logger:          logger,
	}
}

// CreateResource handles resource uploads
// @Summary Upload a course resource
// @Description Attaches a resource to a course the caller owns. File types carry a multipart file; link types carry an external URL.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param course_id formData string true "Course ID"
// @Param title formData string true "Resource title"
// @Param description formData string false "Resource description"
// @Param resource_type formData string true "pdf, video, link or document"
// @Param external_url formData string false "External URL for link resources"
// @Param file formData file false "File for pdf, video and document resources"
// @Success 201 {object} dto.DataResponse{data=dto.ResourceResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid resource type or missing file/URL"
// @Failure 403 {object} dto.ErrorResponse "Caller does not own this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid resource creation form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	courseID, err := strconv.ParseInt(req.CourseID, 10, 64)
	if err != nil || courseID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier")
		errorDetail = errorDetail.WithField("course_id")
		errorDetail = errorDetail.WithDetails("course_id must be a positive integer")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The file part is optional at the transport level; the service decides
	// whether the resource type requires one.
	file, err := ctx.FormFile("file")
	if err != nil {
		file = nil
	}

	resource, err := c.resourceService.CreateResource(ctx.Request.Context(), caller, courseID, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.NewResourceResponse(resource)))
}

// CourseResources lists a course's resources
// @Summary List course resources
// @Description Returns resources for a course, newest first. Learners must be enrolled; tutors must own the course.
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.ResourceResponse}
// @Failure 403 {object} dto.ErrorResponse "Access denied to this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /resources/course/{id} [get]
func (c *ResourceController) CourseResources(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resources, err := c.resourceService.CourseResources(ctx.Request.Context(), caller, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewResourceListResponse(resources)))
}
