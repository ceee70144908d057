package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPurger struct {
	purged int
}

func (m *mockPurger) Purge() {
	m.purged++
}

func TestHandleCacheRefresh(t *testing.T) {
	m := &mockPurger{}
	h := HandleCacheRefresh(m)

	req := httptest.NewRequest(http.MethodPost, "/admin/cache/refresh", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, m.purged)
}
