package middlewares

import (
	"careportal-service/internal/app/services/core/guard"
	"careportal-service/internal/app/services/shared/session"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// AttachSession binds the browser's session to the request context. A
// browser without a valid cookie gets a new, empty session.
func (m *Middlewares) AttachSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, fresh := m.CookieManager.Resolve(r)
		if fresh {
			err := m.CookieManager.Write(w, sessionID)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, r, exceptions.ErrSessionTokenGenerate(err))
				return
			}
		}

		sess := session.BindWithRotation(m.SessionStore, sessionID, func(rotatedID string) error {
			return m.CookieManager.Write(w, rotatedID)
		})
		ctx := session.WithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession lets the request through only when the session holds a
// token. Otherwise the client is sent to the login page.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		sess, ok := session.FromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, r, exceptions.ErrSessionMissing())
			return
		}

		token, err := sess.Token(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, r, err)
			return
		}

		decision := guard.Evaluate(token)
		if !decision.Allowed {
			m.Log.Info("Middlewares.RequireSession redirecting to login",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sess.ID()),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.Navigate(w, r, constvars.StatusUnauthorized, decision.Navigation)
			return
		}

		// The store TTL slides with activity, so the cookie does too.
		err = m.CookieManager.Write(w, sess.ID())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, r, exceptions.ErrSessionTokenGenerate(err))
			return
		}

		next.ServeHTTP(w, r)
	})
}
