package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimitMiddleware_BlocksAfterLimit(t *testing.T) {
	monitor := NewRequestRateMonitor()
	h := RateLimitMiddleware(nil, monitor)(okHandler())

	// Exhaust the window for one IP
	for i := 0; i < 1000; i++ {
		require.True(t, monitor.RecordRequest("10.0.0.1"))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/1", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitMiddleware_HealthExempt(t *testing.T) {
	monitor := NewRequestRateMonitor()
	h := RateLimitMiddleware(nil, monitor)(okHandler())

	for i := 0; i < 2000; i++ {
		monitor.RecordRequest("10.0.0.1")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_IPsAreIndependent(t *testing.T) {
	monitor := NewRequestRateMonitor()

	for i := 0; i < 1500; i++ {
		monitor.RecordRequest("10.0.0.1")
	}

	assert.False(t, monitor.RecordRequest("10.0.0.1"))
	assert.True(t, monitor.RecordRequest("10.0.0.2"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Error(t, readErr)
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:1234"
	req.Header.Set(HeaderForwardedFor, "203.0.113.9")

	// Untrusted remote: header is ignored
	assert.Equal(t, "192.0.2.7", extractIP(req, nil))

	// Trusted proxy: rightmost forwarded IP wins
	assert.Equal(t, "203.0.113.9", extractIP(req, []string{"192.0.2.7"}))
}
