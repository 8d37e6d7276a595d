package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleTutor   RoleType = "tutor"
	RoleLearner RoleType = "learner"
)

// Valid reports whether the role is one of the known roles. Roles form a
// closed set; anything else is rejected at the boundary.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleTutor, RoleLearner:
		return true
	}
	return false
}

// EnrollmentStatus defines the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// AttendanceStatus defines the recorded attendance state
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
)

// ResourceType defines the kind of learning resource
type ResourceType string

const (
	ResourcePDF      ResourceType = "pdf"
	ResourceVideo    ResourceType = "video"
	ResourceLink     ResourceType = "link"
	ResourceDocument ResourceType = "document"
)

// Valid reports whether the resource type is one of the known types.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourcePDF, ResourceVideo, ResourceLink, ResourceDocument:
		return true
	}
	return false
}

// RequiresFile reports whether resources of this type carry an uploaded file
// rather than an external URL.
func (t ResourceType) RequiresFile() bool {
	switch t {
	case ResourcePDF, ResourceVideo, ResourceDocument:
		return true
	}
	return false
}
