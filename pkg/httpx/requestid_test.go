package httpx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/httpx"
	"github.com/dmitrymomot/sharedkit/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	serve := func(header string) (string, string) {
		var seen string
		h := httpx.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = httpx.RequestIDFromContext(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(httpx.RequestIDHeader, header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return seen, rec.Header().Get(httpx.RequestIDHeader)
	}

	t.Run("generates when missing", func(t *testing.T) {
		t.Parallel()
		seen, echoed := serve("")
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, echoed)
	})

	t.Run("keeps valid ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"abc123", "ABC-123_xyz", "550e8400-e29b-41d4-a716-446655440000"} {
			seen, echoed := serve(id)
			assert.Equal(t, id, seen)
			assert.Equal(t, id, echoed)
		}
	})

	t.Run("replaces invalid ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"a b", "x/y", "<script>", strings.Repeat("a", 129)} {
			seen, echoed := serve(id)
			assert.NotEqual(t, id, seen)
			assert.Equal(t, seen, echoed)
		}
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	_, ok := httpx.RequestIDExtractor(context.Background())
	assert.False(t, ok)

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(httpx.RequestIDExtractor),
	)
	log.InfoContext(httpx.WithRequestID(context.Background(), "req-1"), "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "req-1", rec["request_id"])
}

func TestClientIPContext(t *testing.T) {
	t.Parallel()

	var seen string
	h := httpx.ClientIPContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httpx.ClientIPFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "10.0.0.1", seen)
}
