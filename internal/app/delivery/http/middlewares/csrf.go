package middlewares

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"net/http"

	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// CSRF protects state-changing requests when CSRF_AUTH_KEY is configured.
// Safe requests receive the current token in the X-CSRF-Token header.
func (m *Middlewares) CSRF() func(http.Handler) http.Handler {
	authKey := m.InternalConfig.CSRF.AuthKey
	if authKey == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	protect := csrf.Protect(
		[]byte(authKey),
		csrf.Secure(m.InternalConfig.Session.CookieSecure),
		csrf.Path(constvars.PathRoot),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.RequestHeader(constvars.HeaderXCSRFToken),
		csrf.ErrorHandler(http.HandlerFunc(m.csrfFailure)),
	)
	return func(next http.Handler) http.Handler {
		return protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderXCSRFToken, csrf.Token(r))
			next.ServeHTTP(w, r)
		}))
	}
}

func (m *Middlewares) csrfFailure(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("Middlewares.CSRF rejected request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		zap.Error(csrf.FailureReason(r)),
	)
	utils.BuildErrorResponse(m.Log, w, r, exceptions.ErrCSRFInvalid(csrf.FailureReason(r)))
}
