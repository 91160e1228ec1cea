package middlewares

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in any later handler into a 500 envelope.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			cause, ok := rec.(error)
			if !ok {
				cause = fmt.Errorf("%v", rec)
			}
			m.Log.Error("Middlewares.ErrorHandler recovered panic",
				zap.String(constvars.LoggingRequestIDKey, requestIDOf(r)),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			utils.BuildErrorResponse(m.Log, w, r, exceptions.ErrRecoveredPanic(cause, r.Method, r.URL.Path))
		}()
		next.ServeHTTP(w, r)
	})
}

func requestIDOf(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
