package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/pkg/ctxutil"
)

// panicCounter is satisfied by *metrics.Metrics.
type panicCounter interface {
	Panic()
}

// Recovery turns a handler panic into a 500 INTERNAL response and an error
// log entry carrying the stack. counter may be nil.
//
// If the handler already started the response, only the log entry is
// written: the status line is gone and a second body would corrupt it.
// http.ErrAbortHandler is re-raised untouched.
func Recovery(logger *slog.Logger, counter panicCounter) Middleware {
	log := logger.With("component", "recovery")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapStatus(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				if counter != nil {
					counter.Panic()
				}
				log.ErrorContext(r.Context(), "handler panic",
					slog.Any("panic", rec),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("route", r.Method+" "+r.URL.Path),
					slog.Bool("response_started", sw.wroteHeader),
					slog.String("stack", string(debug.Stack())),
				)

				if !sw.wroteHeader {
					writeError(sw, http.StatusInternalServerError, domain.CodeInternal, "internal server error")
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
