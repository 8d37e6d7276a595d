package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/app/services"
	"github.com/bridgelms/bridgelms/internal/middleware"
)

// AttendanceController handles attendance operations
type AttendanceController struct {
	attendanceService *services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// CheckIn records today's attendance for the caller
// @Summary Check in to a course
// @Description Records a present check-in. One check-in per course per UTC day.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} dto.DataResponse{data=dto.AttendanceResponse}
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in this course"
// @Failure 409 {object} dto.ErrorResponse "Already checked in today"
// @Router /attendance/checkin/{id} [post]
func (c *AttendanceController) CheckIn(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	attendance, err := c.attendanceService.CheckIn(ctx.Request.Context(), caller, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.NewAttendanceResponse(attendance)))
}

// CourseAttendance lists attendance rows for a course
// @Summary List course attendance
// @Description Returns all attendance rows for a course, newest first. Tutor must own the course.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.AttendanceResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller does not own this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /attendance/course/{id} [get]
func (c *AttendanceController) CourseAttendance(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.attendanceService.CourseAttendance(ctx.Request.Context(), caller, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewAttendanceListResponse(records)))
}

// MyAttendance lists the caller's attendance history
// @Summary List own attendance
// @Description Learners see their own rows; tutors and admins see rows across their courses
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse{data=[]dto.AttendanceResponse}
// @Router /attendance/my-attendance [get]
func (c *AttendanceController) MyAttendance(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	records, err := c.attendanceService.MyAttendance(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewAttendanceListResponse(records)))
}
