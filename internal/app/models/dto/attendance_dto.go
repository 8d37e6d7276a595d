package dto

import (
	"strconv"
	"time"

	"github.com/bridgelms/bridgelms/internal/app/models"
)

// AttendanceResponse is the public representation of an attendance record
type AttendanceResponse struct {
	ID        string                  `json:"id" example:"11"`
	CourseID  string                  `json:"courseId" example:"7"`
	LearnerID string                  `json:"learnerId" example:"42"`
	Date      time.Time               `json:"date"`
	Status    models.AttendanceStatus `json:"status" example:"present"`
}

// NewAttendanceResponse maps an attendance model to its public representation
func NewAttendanceResponse(a *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        strconv.FormatInt(a.ID, 10),
		CourseID:  strconv.FormatInt(a.CourseID, 10),
		LearnerID: strconv.FormatInt(a.LearnerID, 10),
		Date:      a.Date,
		Status:    a.Status,
	}
}

// NewAttendanceListResponse maps a slice of attendance records
func NewAttendanceListResponse(records []*models.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}
