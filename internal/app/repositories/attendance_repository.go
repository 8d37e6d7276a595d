package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
	"github.com/bridgelms/bridgelms/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

func collectAttendance(rows pgx.Rows) ([]*models.Attendance, error) {
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.CourseID, &a.LearnerID, &a.Date, &a.Status); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Create inserts a present check-in for (course, learner) dated now. The
// one-record-per-UTC-day rule is enforced by the unique expression index
// attendance_course_learner_day_key, not by a preceding read.
func (r *AttendanceRepository) Create(ctx context.Context, courseID, learnerID int64) (*models.Attendance, error) {
	query := `
		INSERT INTO attendance (course_id, learner_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, date
	`

	attendance := &models.Attendance{
		CourseID:  courseID,
		LearnerID: learnerID,
		Status:    models.AttendancePresent,
	}

	err := r.db.QueryRow(ctx, query, courseID, learnerID, models.AttendancePresent).
		Scan(&attendance.ID, &attendance.Date)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "attendance_course_learner_day_key") {
			return nil, apperrors.ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("error creating attendance record: %w", err)
	}

	return attendance, nil
}

// ListByCourse retrieves all attendance rows for a course, newest first
func (r *AttendanceRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Attendance, error) {
	query := `
		SELECT id, course_id, learner_id, date, status
		FROM attendance
		WHERE course_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing course attendance: %w", err)
	}

	return collectAttendance(rows)
}

// ListByLearner retrieves all attendance rows for a learner, newest first
func (r *AttendanceRepository) ListByLearner(ctx context.Context, learnerID int64) ([]*models.Attendance, error) {
	query := `
		SELECT id, course_id, learner_id, date, status
		FROM attendance
		WHERE learner_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, learnerID)
	if err != nil {
		return nil, fmt.Errorf("error listing learner attendance: %w", err)
	}

	return collectAttendance(rows)
}

// ListByTutor retrieves attendance rows across every course the tutor owns,
// newest first
func (r *AttendanceRepository) ListByTutor(ctx context.Context, tutorID int64) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.course_id, a.learner_id, a.date, a.status
		FROM attendance a
		WHERE a.course_id IN (SELECT id FROM courses WHERE tutor_id = $1)
		ORDER BY a.date DESC
	`

	rows, err := r.db.Query(ctx, query, tutorID)
	if err != nil {
		return nil, fmt.Errorf("error listing tutor attendance: %w", err)
	}

	return collectAttendance(rows)
}
