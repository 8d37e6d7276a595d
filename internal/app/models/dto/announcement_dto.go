package dto

import (
	"strconv"
	"time"

	"github.com/bridgelms/bridgelms/internal/app/models"
)

// CreateAnnouncementRequest represents the announcement creation payload.
// CourseID arrives as a string identifier, matching the wire format used
// everywhere else.
type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required" example:"Midterm moved"`
	Content     string `json:"content" binding:"required" example:"The midterm is now on Friday."`
	CourseID    string `json:"course_id" binding:"required" example:"7"`
	IsImportant bool   `json:"is_important" example:"true"`
}

// AnnouncementResponse is the public representation of an announcement
type AnnouncementResponse struct {
	ID          string    `json:"id" example:"9"`
	CourseID    string    `json:"courseId" example:"7"`
	CreatedBy   string    `json:"createdBy" example:"3"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	IsImportant bool      `json:"isImportant"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewAnnouncementResponse maps an announcement model to its public representation
func NewAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          strconv.FormatInt(a.ID, 10),
		CourseID:    strconv.FormatInt(a.CourseID, 10),
		CreatedBy:   strconv.FormatInt(a.CreatedBy, 10),
		Title:       a.Title,
		Content:     a.Content,
		IsImportant: a.IsImportant,
		CreatedAt:   a.CreatedAt,
	}
}

// NewAnnouncementListResponse maps a slice of announcements
func NewAnnouncementListResponse(items []*models.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewAnnouncementResponse(a))
	}
	return out
}
