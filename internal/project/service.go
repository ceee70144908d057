package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/gradius/bitplanner/internal/domain"
	"github.com/gradius/bitplanner/internal/logger"
	"github.com/gradius/bitplanner/internal/planner"
)

// Repository defines the interface for data access required by the project service
type Repository interface {
	CreateProject(ctx context.Context, name string) (*domain.Project, error)
	GetProjectByUUID(ctx context.Context, projectUUID string) (*domain.Project, bool, error)
	UpsertProjectItem(ctx context.Context, projectID, itemID, count int) error
	UpdateProjectItemCount(ctx context.Context, projectID, itemID, count int) error
	RemoveProjectItem(ctx context.Context, projectID, itemID int) error
	GetProjectItems(ctx context.Context, projectID int) ([]domain.ProjectItem, error)
}

// Service defines the interface for crafting-project operations
type Service interface {
	CreateProject(ctx context.Context, name string) (*domain.Project, error)
	GetProject(ctx context.Context, projectUUID string) (*domain.Project, error)
	AddItem(ctx context.Context, projectUUID string, itemID, count int) error
	UpdateItemCount(ctx context.Context, projectUUID string, itemID, count int) error
	RemoveItem(ctx context.Context, projectUUID string, itemID int) error
	GetItems(ctx context.Context, projectUUID string) ([]domain.ProjectItem, error)
}

type service struct {
	repo  Repository
	items planner.ItemCatalog
}

// NewService creates a new project service
func NewService(repo Repository, items planner.ItemCatalog) Service {
	return &service{
		repo:  repo,
		items: items,
	}
}

// CreateProject creates a project and returns both uuids. The private uuid
// is only ever revealed here.
func (s *service) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}

	project, err := s.repo.CreateProject(ctx, name)
	if err != nil {
		log.Error("Failed to create project", "error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Info("Project created", "projectID", project.ID, "name", name)
	return project, nil
}

// GetProject fetches a project by either uuid.
func (s *service) GetProject(ctx context.Context, projectUUID string) (*domain.Project, error) {
	project, _, err := s.repo.GetProjectByUUID(ctx, projectUUID)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// requireWritable fetches a project and rejects the lookup unless the
// private uuid was used.
func (s *service) requireWritable(ctx context.Context, projectUUID string) (*domain.Project, error) {
	project, isPrivate, err := s.repo.GetProjectByUUID(ctx, projectUUID)
	if err != nil {
		return nil, err
	}
	if !isPrivate {
		return nil, domain.ErrProjectReadOnly
	}
	return project, nil
}

// AddItem adds a target item to a project, replacing any existing count.
func (s *service) AddItem(ctx context.Context, projectUUID string, itemID, count int) error {
	log := logger.FromContext(ctx)

	if count <= 0 {
		return fmt.Errorf("%w: count must be positive", domain.ErrInvalidInput)
	}

	project, err := s.requireWritable(ctx, projectUUID)
	if err != nil {
		return err
	}

	// Reject items that don't exist in the imported game data.
	if _, err := s.items.GetItemByID(ctx, itemID); err != nil {
		return err
	}

	if err := s.repo.UpsertProjectItem(ctx, project.ID, itemID, count); err != nil {
		log.Error("Failed to add item to project", "error", err, "projectID", project.ID, "itemID", itemID)
		return fmt.Errorf("failed to add item to project: %w", err)
	}

	log.Info("Item added to project", "projectID", project.ID, "itemID", itemID, "count", count)
	return nil
}

// UpdateItemCount changes the count of an item already in the project.
func (s *service) UpdateItemCount(ctx context.Context, projectUUID string, itemID, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: count must be positive", domain.ErrInvalidInput)
	}

	project, err := s.requireWritable(ctx, projectUUID)
	if err != nil {
		return err
	}

	return s.repo.UpdateProjectItemCount(ctx, project.ID, itemID, count)
}

// RemoveItem removes a target item from a project.
func (s *service) RemoveItem(ctx context.Context, projectUUID string, itemID int) error {
	project, err := s.requireWritable(ctx, projectUUID)
	if err != nil {
		return err
	}

	return s.repo.RemoveProjectItem(ctx, project.ID, itemID)
}

// GetItems lists a project's target items. Readable with either uuid.
func (s *service) GetItems(ctx context.Context, projectUUID string) ([]domain.ProjectItem, error) {
	project, _, err := s.repo.GetProjectByUUID(ctx, projectUUID)
	if err != nil {
		return nil, err
	}

	return s.repo.GetProjectItems(ctx, project.ID)
}
