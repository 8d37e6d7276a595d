package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/db"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
	"github.com/bridgelms/bridgelms/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts an active enrollment for (course, learner) inside a
// transaction that locks the course row first. The row lock serializes
// concurrent enrolls per course; under read committed a bare count guard in
// the insert statement lets two concurrent writers both pass it. The unique
// constraint on (course_id, learner_id) rejects duplicates regardless of
// status.
func (r *EnrollmentRepository) Create(ctx context.Context, courseID, learnerID int64) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{
		CourseID:  courseID,
		LearnerID: learnerID,
		Status:    models.EnrollmentActive,
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var maxStudents int
		err := tx.QueryRow(ctx,
			`SELECT max_students FROM courses WHERE id = $1 FOR UPDATE`,
			courseID).Scan(&maxStudents)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		// An existing row in any status wins over the capacity report
		var exists bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS(
				SELECT 1 FROM enrollments
				WHERE course_id = $1 AND learner_id = $2
			)`, courseID, learnerID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking enrollment: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyEnrolled
		}

		var active int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND status = $2`,
			courseID, models.EnrollmentActive).Scan(&active)
		if err != nil {
			return fmt.Errorf("error counting enrollments: %w", err)
		}
		if active >= maxStudents {
			return apperrors.ErrCourseFull
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO enrollments (course_id, learner_id, status)
			VALUES ($1, $2, $3)
			RETURNING id, enrolled_at`,
			courseID, learnerID, models.EnrollmentActive).
			Scan(&enrollment.ID, &enrollment.EnrolledAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "enrollments_course_learner_key") {
				return apperrors.ErrAlreadyEnrolled
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// Exists checks whether any enrollment row exists for (course, learner),
// regardless of status. A cancelled enrollment still blocks re-enrollment.
func (r *EnrollmentRepository) Exists(ctx context.Context, courseID, learnerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM enrollments
			WHERE course_id = $1 AND learner_id = $2
		)`, courseID, learnerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return exists, nil
}

// ActiveExists checks whether the learner holds an active enrollment for the course
func (r *EnrollmentRepository) ActiveExists(ctx context.Context, courseID, learnerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM enrollments
			WHERE course_id = $1 AND learner_id = $2 AND status = $3
		)`, courseID, learnerID, models.EnrollmentActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return exists, nil
}

// CountActive returns the number of active enrollments for a course
func (r *EnrollmentRepository) CountActive(ctx context.Context, courseID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND status = $2`,
		courseID, models.EnrollmentActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	return count, nil
}
