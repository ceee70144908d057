package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradius/bitplanner/internal/domain"
)

type mockItemCatalog struct {
	item *domain.Item
	err  error
}

func (m *mockItemCatalog) GetItemByID(_ context.Context, itemID int) (*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.item, nil
}

type mockSearchService struct {
	results []domain.Item
	err     error

	gotQuery string
	gotLimit int
}

func (m *mockSearchService) SearchItems(_ context.Context, query string, limit int) ([]domain.Item, error) {
	m.gotQuery = query
	m.gotLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func TestHandleGetItem(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/items/{itemID}", HandleGetItem(&mockItemCatalog{
		item: &domain.Item{ID: 42, Name: "Sturdy Crate", Tier: 2},
	}))

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var item domain.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "Sturdy Crate", item.Name)
	assert.Equal(t, 2, item.Tier)
}

func TestHandleGetItem_NotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/items/{itemID}", HandleGetItem(&mockItemCatalog{err: domain.ErrItemNotFound}))

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSearchItems(t *testing.T) {
	m := &mockSearchService{results: []domain.Item{
		{ID: 1, Name: "Rough Plank"},
		{ID: 2, Name: "Sturdy Plank"},
	}}
	r := chi.NewRouter()
	r.Get("/items/search", HandleSearchItems(m))

	req := httptest.NewRequest(http.MethodGet, "/items/search?q=plank&limit=5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "plank", m.gotQuery)
	assert.Equal(t, 5, m.gotLimit)

	var resp struct {
		Query   string        `json:"query"`
		Results []domain.Item `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 2)
}

func TestHandleSearchItems_EmptyQuery(t *testing.T) {
	m := &mockSearchService{err: domain.ErrInvalidInput}
	r := chi.NewRouter()
	r.Get("/items/search", HandleSearchItems(m))

	req := httptest.NewRequest(http.MethodGet, "/items/search", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearchItems_BadLimit(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/items/search", HandleSearchItems(&mockSearchService{}))

	req := httptest.NewRequest(http.MethodGet, "/items/search?q=plank&limit=abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
