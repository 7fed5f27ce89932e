package project

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/id"
	"github.com/portfolio-api/internal/pkg/validate"
)

// Service manages portfolio projects. List/GetBySlug serve the public site
// (enabled projects only); everything else is admin-only.
type Service interface {
	ListPublic(ctx context.Context) ([]domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error)
	Update(ctx context.Context, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, projectID string) error
}

type projectStore interface {
	Put(ctx context.Context, p *domain.Project) error
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	Scan(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, projectID string, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, projectID string) error
}

type service struct {
	store projectStore
}

func NewService(store projectStore) Service {
	return &service{store: store}
}

// ListPublic returns enabled projects, featured first, then by sort_order,
// then title.
func (s *service) ListPublic(ctx context.Context) ([]domain.Project, error) {
	all, err := s.store.Scan(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if p.Enable && p.DeletedAt == nil {
			projects = append(projects, p)
		}
	}
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Featured != projects[j].Featured {
			return projects[i].Featured
		}
		if projects[i].SortOrder != projects[j].SortOrder {
			return projects[i].SortOrder < projects[j].SortOrder
		}
		return projects[i].Title < projects[j].Title
	})
	return projects, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	p, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Enable || p.DeletedAt != nil {
		return nil, fmt.Errorf("project not found: %w", domain.ErrNotFound)
	}
	return p, nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.Project, error) {
	all, err := s.store.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

func (s *service) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.store.Get(ctx, projectID)
}

func (s *service) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	if existing, err := s.store.GetBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, fmt.Errorf("slug already in use: %w", domain.ErrConflict)
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ProjectID:   id.New(),
		Title:       req.Title,
		Slug:        req.Slug,
		Summary:     req.Summary,
		Description: req.Description,
		Tags:        req.Tags,
		Link:        req.Link,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
		Enable:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("store project: %w", err)
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	if _, err := s.store.Get(ctx, projectID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		if existing, err := s.store.GetBySlug(ctx, *req.Slug); err == nil && existing != nil && existing.ProjectID != projectID {
			return nil, fmt.Errorf("slug already in use: %w", domain.ErrConflict)
		}
		updates["slug"] = *req.Slug
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Enable != nil {
		updates["enable"] = *req.Enable
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}

	if err := s.store.Update(ctx, projectID, updates); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return s.store.Get(ctx, projectID)
}

func (s *service) Delete(ctx context.Context, projectID string) error {
	if _, err := s.store.Get(ctx, projectID); err != nil {
		return err
	}
	return s.store.SoftDelete(ctx, projectID)
}
