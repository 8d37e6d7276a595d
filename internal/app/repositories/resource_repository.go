package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bridgelms/bridgelms/internal/app/models"
)

// ResourceRepository handles database operations for learning resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
	}
}

// Create inserts a new resource and fills in the generated id and upload time
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (course_id, uploaded_by, title, description, resource_type, file_url, file_name, external_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, uploaded_at
	`

	err := r.db.QueryRow(ctx, query,
		resource.CourseID, resource.UploadedBy, resource.Title, resource.Description,
		resource.Type, resource.FileURL, resource.FileName, resource.ExternalURL,
	).Scan(&resource.ID, &resource.UploadedAt)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}

	return nil
}

// ListByCourse retrieves all resources for a course, newest first
func (r *ResourceRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Resource, error) {
	query := `
		SELECT id, course_id, uploaded_by, title, description, resource_type, file_url, file_name, external_url, uploaded_at
		FROM resources
		WHERE course_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing course resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(
			&res.ID,
			&res.CourseID,
			&res.UploadedBy,
			&res.Title,
			&res.Description,
			&res.Type,
			&res.FileURL,
			&res.FileName,
			&res.ExternalURL,
			&res.UploadedAt,
		); err != nil {
			return nil, err
		}
		resources = append(resources, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}
