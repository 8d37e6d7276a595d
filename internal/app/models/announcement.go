package models

import (
	"time"
)

// Announcement defines the announcement model based on the 'announcements' table
type Announcement struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	IsImportant bool      `json:"isImportant" db:"is_important"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
