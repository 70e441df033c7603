package result_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/result"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		render func(w http.ResponseWriter) error
		status int
		body   string
	}{
		{
			name:   "success",
			render: func(w http.ResponseWriter) error { return result.OkData(user{ID: 1, Name: "A"}).Render(w) },
			status: http.StatusOK,
			body:   `{"success":true,"data":{"id":1,"name":"A"}}`,
		},
		{
			name:   "field errors",
			render: func(w http.ResponseWriter) error { return result.FailFields[None](map[string][]string{"a": {"b"}}).Render(w) },
			status: http.StatusUnprocessableEntity,
			body:   `{"success":false,"errors":{"a":["b"]}}`,
		},
		{
			name:   "plain failure",
			render: func(w http.ResponseWriter) error { return result.FailMessage[None]("bad").Render(w) },
			status: http.StatusBadRequest,
			body:   `{"success":false,"message":"bad"}`,
		},
		{
			name: "status override",
			render: func(w http.ResponseWriter) error {
				return result.FailMessage[None]("missing").Render(w, result.WithStatus(http.StatusNotFound))
			},
			status: http.StatusNotFound,
			body:   `{"success":false,"message":"missing"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, tt.render(rec))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
