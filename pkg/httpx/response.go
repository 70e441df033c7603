package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sharedkit/pkg/guard"
	"github.com/dmitrymomot/sharedkit/pkg/logger"
	"github.com/dmitrymomot/sharedkit/pkg/query"
	"github.com/dmitrymomot/sharedkit/pkg/result"
)

// WriteResult renders res with its derived status, or status when given.
func WriteResult[T any](w http.ResponseWriter, res result.Result[T], status ...int) {
	var opts []result.RenderOption
	if len(status) > 0 {
		opts = append(opts, result.WithStatus(status[0]))
	}
	if err := res.Render(w, opts...); err != nil {
		slog.Default().Error("failed to write response", logger.Error(err))
	}
}

// StatusFor maps an error to an HTTP status: guard not-found and
// already-exists kinds get 404 and 409. Other guard errors and bad sort
// fields get 400, anything else 500.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, guard.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, guard.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, guard.ErrGuard),
		errors.Is(err, query.ErrUnknownProperty),
		errors.Is(err, query.ErrUnsortable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as a failure envelope. Guard errors keep their
// message and field; other errors are logged and reported as a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := StatusFor(err)
	if status != http.StatusInternalServerError {
		WriteResult(w, result.FromError[result.None](err), status)
		return
	}

	if log == nil {
		log = slog.Default()
	}
	log.ErrorContext(r.Context(), "request failed",
		logger.Error(err),
		logger.Path(r.URL.Path),
	)
	WriteResult(w, result.FailMessage[result.None](http.StatusText(status)), status)
}
