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

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	announcementService *services.AnnouncementService
	logger              zerolog.Logger
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService *services.AnnouncementService, logger zerolog.Logger) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		logger:              logger,
	}
}

// CreateAnnouncement posts an announcement to a course
// @Summary Post an announcement
// @Description Posts an announcement to an active course the caller owns
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement content"
// @Success 201 {object} dto.DataResponse{data=dto.AnnouncementResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Caller does not own this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid announcement payload")
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

	announcement, err := c.announcementService.CreateAnnouncement(ctx.Request.Context(), caller, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.NewAnnouncementResponse(announcement)))
}

// CourseAnnouncements lists a course's announcements
// @Summary List course announcements
// @Description Returns announcements for a course, important ones first. Learners must be enrolled; tutors must own the course.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.AnnouncementResponse}
// @Failure 403 {object} dto.ErrorResponse "Access denied to this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /announcements/course/{id} [get]
func (c *AnnouncementController) CourseAnnouncements(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	announcements, err := c.announcementService.CourseAnnouncements(ctx.Request.Context(), caller, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewAnnouncementListResponse(announcements)))
}
