package dto

import (
	"strconv"
	"time"

	"github.com/bridgelms/bridgelms/internal/app/models"
)

// CreateResourceRequest represents the multipart resource creation form.
// The uploaded file itself travels outside this struct.
type CreateResourceRequest struct {
	Title        string              `form:"title" binding:"required"`
	Description  string              `form:"description"`
	CourseID     string              `form:"course_id" binding:"required"`
	ResourceType models.ResourceType `form:"resource_type" binding:"required"`
	ExternalURL  string              `form:"external_url"`
}

// ResourceResponse is the public representation of a learning resource
type ResourceResponse struct {
	ID          string              `json:"id" example:"5"`
	CourseID    string              `json:"courseId" example:"7"`
	UploadedBy  string              `json:"uploadedBy" example:"3"`
	Title       string              `json:"title" example:"Week 1 slides"`
	Description string              `json:"description"`
	Type        models.ResourceType `json:"resourceType" example:"pdf"`
	FileURL     *string             `json:"fileUrl,omitempty"`
	FileName    *string             `json:"fileName,omitempty"`
	ExternalURL *string             `json:"externalUrl,omitempty"`
	UploadedAt  time.Time           `json:"uploadedAt"`
}

// NewResourceResponse maps a resource model to its public representation
func NewResourceResponse(r *models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          strconv.FormatInt(r.ID, 10),
		CourseID:    strconv.FormatInt(r.CourseID, 10),
		UploadedBy:  strconv.FormatInt(r.UploadedBy, 10),
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		FileURL:     r.FileURL,
		FileName:    r.FileName,
		ExternalURL: r.ExternalURL,
		UploadedAt:  r.UploadedAt,
	}
}

// NewResourceListResponse maps a slice of resources
func NewResourceListResponse(resources []*models.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, NewResourceResponse(r))
	}
	return out
}
