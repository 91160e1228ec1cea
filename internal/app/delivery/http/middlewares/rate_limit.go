package middlewares

import (
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to APP_MAX_REQUESTS per second. Rejected
// requests get the standard JSON error envelope.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, r, exceptions.ErrTooManyRequests(r.RemoteAddr))
		}),
	)
}
