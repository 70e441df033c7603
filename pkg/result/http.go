package result

import (
	"encoding/json"
	"net/http"
)

// RenderOption configures Render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	status int
}

// WithStatus overrides the derived HTTP status code.
func WithStatus(status int) RenderOption {
	return func(c *renderConfig) {
		c.status = status
	}
}

// Status is the HTTP status an envelope maps to: 200 for success, 422 when
// field errors are present, 400 for any other failure.
func (r Result[T]) Status() int {
	switch {
	case r.success:
		return http.StatusOK
	case len(r.errors) > 0:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// Render writes the envelope as JSON.
func (r Result[T]) Render(w http.ResponseWriter, opts ...RenderOption) error {
	cfg := renderConfig{status: r.Status()}
	for _, opt := range opts {
		opt(&cfg)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(cfg.status)
	return json.NewEncoder(w).Encode(r)
}
