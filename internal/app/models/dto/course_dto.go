package dto

import (
	"strconv"
	"time"

	"github.com/bridgelms/bridgelms/internal/app/models"
)

// CreateCourseRequest represents the course creation payload
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required" example:"Algebra I"`
	Description string `json:"description" binding:"required" example:"Foundations of algebra"`
	Category    string `json:"category" binding:"required" example:"math"`
	MaxStudents *int   `json:"maxStudents,omitempty" example:"50"`
	IsPublic    *bool  `json:"isPublic,omitempty" example:"true"`
}

// CourseListFilter carries the optional list filters and pagination
type CourseListFilter struct {
	Category string
	Search   string
	Limit    int
	Skip     int
}

// CourseResponse is the public representation of a course
type CourseResponse struct {
	ID          string    `json:"id" example:"7"`
	Title       string    `json:"title" example:"Algebra I"`
	Description string    `json:"description"`
	Category    string    `json:"category" example:"math"`
	MaxStudents int       `json:"maxStudents" example:"50"`
	IsPublic    bool      `json:"isPublic" example:"true"`
	TutorID     string    `json:"tutorId" example:"3"`
	IsActive    bool      `json:"isActive" example:"true"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewCourseResponse maps a course model to its public representation
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:          strconv.FormatInt(c.ID, 10),
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		MaxStudents: c.MaxStudents,
		IsPublic:    c.IsPublic,
		TutorID:     strconv.FormatInt(c.TutorID, 10),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// NewCourseListResponse maps a slice of courses
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// TutorContactResponse exposes the public contact fields of a course tutor
type TutorContactResponse struct {
	TutorName  string `json:"tutor_name" example:"Jane Roe"`
	TutorEmail string `json:"tutor_email" example:"jroe@example.com"`
	TutorPhone string `json:"tutor_phone,omitempty"`
	TutorBio   string `json:"tutor_bio,omitempty"`
}

// NewTutorContactResponse maps a tutor user to their public contact fields
func NewTutorContactResponse(tutor *models.User) TutorContactResponse {
	return TutorContactResponse{
		TutorName:  tutor.Username,
		TutorEmail: tutor.Email,
		TutorPhone: tutor.Phone,
		TutorBio:   tutor.Bio,
	}
}
