package services

import (
	"context"

	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
)

// The services depend on narrow store interfaces rather than the concrete
// pgx repositories, so the invariant logic can be exercised against
// in-memory fakes.

// UserStore is the persistence surface the identity service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, username, email, phone, bio *string) error
}

// CourseStore is the persistence surface the course service needs
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter dto.CourseListFilter) ([]*models.Course, error)
	GetByTutorID(ctx context.Context, tutorID int64) ([]*models.Course, error)
	GetByLearnerID(ctx context.Context, learnerID int64) ([]*models.Course, error)
}

// EnrollmentStore is the persistence surface for enrollments. Create must be
// atomic: it either commits an active enrollment within the course capacity
// or reports ErrCourseFull/ErrAlreadyEnrolled, never over-enrolling under
// concurrent calls.
type EnrollmentStore interface {
	Create(ctx context.Context, courseID, learnerID int64) (*models.Enrollment, error)
	Exists(ctx context.Context, courseID, learnerID int64) (bool, error)
	ActiveExists(ctx context.Context, courseID, learnerID int64) (bool, error)
}

// AttendanceStore is the persistence surface for attendance records. Create
// must reject a second record for the same (course, learner, UTC day) with
// ErrAlreadyCheckedIn.
type AttendanceStore interface {
	Create(ctx context.Context, courseID, learnerID int64) (*models.Attendance, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Attendance, error)
	ListByLearner(ctx context.Context, learnerID int64) ([]*models.Attendance, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]*models.Attendance, error)
}

// ResourceStore is the persistence surface for learning resources
type ResourceStore interface {
	Create(ctx context.Context, resource *models.Resource) error
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Resource, error)
}

// AnnouncementStore is the persistence surface for announcements
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Announcement, error)
}
