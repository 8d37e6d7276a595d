package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency injection
type Repositories struct {
	UserRepository         *UserRepository
	CourseRepository       *CourseRepository
	EnrollmentRepository   *EnrollmentRepository
	AttendanceRepository   *AttendanceRepository
	ResourceRepository     *ResourceRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		CourseRepository:       NewCourseRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		ResourceRepository:     NewResourceRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
