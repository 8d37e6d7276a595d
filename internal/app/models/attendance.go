package models

import (
	"time"
)

// Attendance defines the attendance model based on the 'attendance' table.
// At most one row exists per (course, learner, UTC calendar day); the
// database enforces this with a unique expression index.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	CourseID  int64            `json:"courseId" db:"course_id"`
	LearnerID int64            `json:"learnerId" db:"learner_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status"`
}
