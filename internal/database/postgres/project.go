package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradius/bitplanner/internal/domain"
)

// ProjectStore persists crafting projects and their target items.
type ProjectStore struct {
	pool *pgxpool.Pool
}

// NewProjectStore creates a new ProjectStore
func NewProjectStore(pool *pgxpool.Pool) *ProjectStore {
	return &ProjectStore{pool: pool}
}

// CreateProject inserts a project with freshly generated uuid pair.
func (s *ProjectStore) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	project := &domain.Project{
		PublicUUID:  uuid.NewString(),
		PrivateUUID: uuid.NewString(),
		Name:        name,
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO projects (public_uuid, private_uuid, project_name)
		 VALUES ($1, $2, $3)
		 RETURNING project_id, created_at`,
		project.PublicUUID, project.PrivateUUID, project.Name).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProjectByUUID looks a project up by either of its uuids. The second
// return value reports whether the private uuid was used.
func (s *ProjectStore) GetProjectByUUID(ctx context.Context, projectUUID string) (*domain.Project, bool, error) {
	if _, err := uuid.Parse(projectUUID); err != nil {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrInvalidProjectUUID, projectUUID)
	}

	var project domain.Project
	var isPrivate bool
	err := s.pool.QueryRow(ctx,
		`SELECT project_id, public_uuid, private_uuid, project_name, created_at,
		        private_uuid = $1 AS is_private
		 FROM projects
		 WHERE public_uuid = $1 OR private_uuid = $1`,
		projectUUID).Scan(&project.ID, &project.PublicUUID, &project.PrivateUUID, &project.Name, &project.CreatedAt, &isPrivate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, domain.ErrProjectNotFound
		}
		return nil, false, fmt.Errorf("failed to get project: %w", err)
	}

	// Never hand the private uuid back on a public lookup.
	if !isPrivate {
		project.PrivateUUID = ""
	}

	return &project, isPrivate, nil
}

// UpsertProjectItem adds an item to a project or replaces its count.
func (s *ProjectStore) UpsertProjectItem(ctx context.Context, projectID, itemID, count int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO project_items (project_id, item_id, count)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (project_id, item_id) DO UPDATE SET count = EXCLUDED.count`,
		projectID, itemID, count)
	if err != nil {
		return fmt.Errorf("failed to upsert project item: %w", err)
	}
	return nil
}

// UpdateProjectItemCount updates the count of an existing project item.
func (s *ProjectStore) UpdateProjectItemCount(ctx context.Context, projectID, itemID, count int) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE project_items SET count = $3 WHERE project_id = $1 AND item_id = $2`,
		projectID, itemID, count)
	if err != nil {
		return fmt.Errorf("failed to update project item count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectItemNotFound
	}
	return nil
}

// RemoveProjectItem deletes an item from a project.
func (s *ProjectStore) RemoveProjectItem(ctx context.Context, projectID, itemID int) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM project_items WHERE project_id = $1 AND item_id = $2`,
		projectID, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove project item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectItemNotFound
	}
	return nil
}

// GetProjectItems lists a project's target items.
func (s *ProjectStore) GetProjectItems(ctx context.Context, projectID int) ([]domain.ProjectItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT item_id, count FROM project_items WHERE project_id = $1 ORDER BY item_id`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project items: %w", err)
	}
	defer rows.Close()

	var items []domain.ProjectItem
	for rows.Next() {
		var item domain.ProjectItem
		if err := rows.Scan(&item.ItemID, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan project item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project items: %w", err)
	}
	return items, nil
}
