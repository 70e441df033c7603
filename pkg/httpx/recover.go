package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/sharedkit/pkg/guard"
)

// Recover turns panics into failure envelopes. A panic carrying a guard error,
// as raised by Verifier.Must, becomes a 4xx envelope; anything else is logged
// with its stack and answered with 500.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}
				if _, isGuard := guard.AsError(err); !isGuard {
					log.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)
				}
				WriteError(w, r, log, err)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
