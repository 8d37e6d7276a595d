package models

import (
	"time"
)

// Resource defines the learning resource model based on the 'resources' table.
// Exactly one of FileURL/ExternalURL is set, depending on the resource type.
type Resource struct {
	ID          int64        `json:"id" db:"id"`
	CourseID    int64        `json:"courseId" db:"course_id"`
	UploadedBy  int64        `json:"uploadedBy" db:"uploaded_by"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Type        ResourceType `json:"resourceType" db:"resource_type"`
	FileURL     *string      `json:"fileUrl,omitempty" db:"file_url"`
	FileName    *string      `json:"fileName,omitempty" db:"file_name"`
	ExternalURL *string      `json:"externalUrl,omitempty" db:"external_url"`
	UploadedAt  time.Time    `json:"uploadedAt" db:"uploaded_at"`
}
