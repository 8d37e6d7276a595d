package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bridgelms/bridgelms/internal/app/models"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

// Create inserts a new announcement and fills in the generated id and creation time
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (course_id, created_by, title, content, is_important)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		announcement.CourseID, announcement.CreatedBy,
		announcement.Title, announcement.Content, announcement.IsImportant,
	).Scan(&announcement.ID, &announcement.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// ListByCourse retrieves all announcements for a course, important ones
// first, then newest first
func (r *AnnouncementRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Announcement, error) {
	query := `
		SELECT id, course_id, created_by, title, content, is_important, created_at
		FROM announcements
		WHERE course_id = $1
		ORDER BY is_important DESC, created_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing course announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(
			&a.ID,
			&a.CourseID,
			&a.CreatedBy,
			&a.Title,
			&a.Content,
			&a.IsImportant,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		announcements = append(announcements, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}
