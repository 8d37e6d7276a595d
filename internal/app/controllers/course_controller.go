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

// CourseController handles course and enrollment operations
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Creates a new course owned by the caller. Tutor or admin only.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.DataResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Caller may not create courses"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid course creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.NewCourseResponse(course)))
}

// ListCourses handles course discovery
// @Summary List active courses
// @Description Lists active courses with optional category and text filters
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param search query string false "Text search over title and description"
// @Param limit query int false "Page size (max 100)"
// @Param skip query int false "Rows to skip"
// @Success 200 {object} dto.DataResponse{data=[]dto.CourseResponse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter := dto.CourseListFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}
	if raw := ctx.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}
	if raw := ctx.Query("skip"); raw != "" {
		if skip, err := strconv.Atoi(raw); err == nil {
			filter.Skip = skip
		}
	}

	courses, err := c.courseService.ListCourses(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewCourseListResponse(courses)))
}

// Enroll handles learner enrollment
// @Summary Enroll in a course
// @Description Enrolls the caller into a course if it is active and has capacity
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Course is full"
// @Failure 403 {object} dto.ErrorResponse "Only learners can enroll"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if _, err := c.courseService.EnrollLearner(ctx.Request.Context(), caller, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Enrolled successfully!"))
}

// MyCourses lists the caller's own courses
// @Summary List own courses
// @Description Returns courses taught by the caller (tutor/admin) or enrolled in (learner)
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse{data=[]dto.CourseResponse}
// @Router /courses/my-courses [get]
func (c *CourseController) MyCourses(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	courses, err := c.courseService.MyCourses(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewCourseListResponse(courses)))
}

// GetCourseTutor exposes the contact fields of a course's tutor
// @Summary Get course tutor contact
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.DataResponse{data=dto.TutorContactResponse}
// @Failure 404 {object} dto.ErrorResponse "Course or tutor not found"
// @Router /courses/{id}/tutor [get]
func (c *CourseController) GetCourseTutor(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tutor, err := c.courseService.GetCourseTutor(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewTutorContactResponse(tutor)))
}
