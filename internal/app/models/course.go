package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table.
// A course is owned by exactly one tutor.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	MaxStudents int       `json:"maxStudents" db:"max_students"`
	IsPublic    bool      `json:"isPublic" db:"is_public"`
	TutorID     int64     `json:"tutorId" db:"tutor_id"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Enrollment defines the enrollment model based on the 'enrollments' table.
// At most one row exists per (course, learner) pair; the count of active
// rows for a course never exceeds the course's max_students.
type Enrollment struct {
	ID         int64            `json:"id" db:"id"`
	CourseID   int64            `json:"courseId" db:"course_id"`
	LearnerID  int64            `json:"learnerId" db:"learner_id"`
	Status     EnrollmentStatus `json:"status" db:"status"`
	EnrolledAt time.Time        `json:"enrolledAt" db:"enrolled_at"`
}
