package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/portfolio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProjectSvc struct{ mock.Mock }

func (m *mockProjectSvc) ListPublic(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if p, _ := args.Get(0).([]domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProjectSvc) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	args := m.Called(ctx, slug)
	if p, _ := args.Get(0).(*domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProjectSvc) ListAll(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if p, _ := args.Get(0).([]domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProjectSvc) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if p, _ := args.Get(0).(*domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProjectSvc) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, req)
	if p, _ := args.Get(0).(*domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProjectSvc) Update(ctx context.Context, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, projectID, req)
	if p, _ := args.Get(0).(*domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProjectSvc) Delete(ctx context.Context, projectID string) error {
	return m.Called(ctx, projectID).Error(0)
}

// withChiParam injects a chi URL param into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestProjects_ListPublic(t *testing.T) {
	svc := &mockProjectSvc{}
	svc.On("ListPublic", mock.Anything).Return([]domain.Project{
		{ProjectID: "a", Title: "One", Slug: "one", Enable: true},
	}, nil)
	h := NewProjectHandler(svc)

	rr := httptest.NewRecorder()
	h.ListPublic(rr, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var projects []domain.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "one", projects[0].Slug)
}

func TestProjects_GetBySlug_NotFound(t *testing.T) {
	svc := &mockProjectSvc{}
	svc.On("GetBySlug", mock.Anything, "nope").
		Return(nil, fmt.Errorf("project not found: %w", domain.ErrNotFound))
	h := NewProjectHandler(svc)

	r := withChiParam(httptest.NewRequest(http.MethodGet, "/v1/projects/nope", nil), "slug", "nope")
	rr := httptest.NewRecorder()
	h.GetBySlug(rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProjects_Create_Conflict(t *testing.T) {
	svc := &mockProjectSvc{}
	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("slug already in use: %w", domain.ErrConflict))
	h := NewProjectHandler(svc)

	body, _ := json.Marshal(domain.CreateProjectRequest{Title: "Dup", Slug: "taken", Summary: "x"})
	r := httptest.NewRequest(http.MethodPost, "/v1/admin/projects", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, r)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestProjects_Create_HappyPath(t *testing.T) {
	svc := &mockProjectSvc{}
	svc.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Project{ProjectID: "p1", Title: "New", Slug: "new", Enable: true}, nil)
	h := NewProjectHandler(svc)

	body, _ := json.Marshal(domain.CreateProjectRequest{Title: "New", Slug: "new", Summary: "fresh"})
	r := httptest.NewRequest(http.MethodPost, "/v1/admin/projects", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, r)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp domain.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "p1", resp.ProjectID)
}

func TestProjects_Delete(t *testing.T) {
	svc := &mockProjectSvc{}
	svc.On("Delete", mock.Anything, "p1").Return(nil)
	h := NewProjectHandler(svc)

	r := withChiParam(httptest.NewRequest(http.MethodDelete, "/v1/admin/projects/p1", nil), "id", "p1")
	rr := httptest.NewRecorder()
	h.Delete(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
