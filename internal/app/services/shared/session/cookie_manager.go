package session

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CookieManager maps the signed session cookie to a session id.
type CookieManager struct {
	name       string
	secret     string
	ttlInHours int
	secure     bool
	Log        *zap.Logger
}

func NewCookieManager(internalConfig *config.InternalConfig, logger *zap.Logger) *CookieManager {
	return &CookieManager{
		name:       internalConfig.Session.CookieName,
		secret:     internalConfig.JWT.Secret,
		ttlInHours: internalConfig.Session.TTLInHours,
		secure:     internalConfig.Session.CookieSecure,
		Log:        logger,
	}
}

// Resolve returns the session id carried by the request cookie. A missing
// or invalid cookie yields a fresh id and fresh reports true.
func (m *CookieManager) Resolve(r *http.Request) (sessionID string, fresh bool) {
	cookie, err := r.Cookie(m.name)
	if err != nil || cookie.Value == "" {
		return utils.GenerateSessionID(), true
	}

	sessionID, err = utils.ParseSessionJWT(cookie.Value, m.secret)
	if err != nil {
		m.Log.Info("CookieManager.Resolve discarding invalid session cookie",
			zap.Error(err),
		)
		return utils.GenerateSessionID(), true
	}
	return sessionID, false
}

// Write sets the signed cookie for sessionID on the response, replacing a
// session cookie already queued on it.
func (m *CookieManager) Write(w http.ResponseWriter, sessionID string) error {
	token, err := utils.GenerateSessionJWT(sessionID, m.secret, m.ttlInHours)
	if err != nil {
		m.Log.Error("CookieManager.Write error signing session cookie",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}

	dropQueuedCookie(w.Header(), m.name)
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    token,
		Path:     constvars.PathRoot,
		Expires:  time.Now().Add(time.Duration(m.ttlInHours) * time.Hour),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func dropQueuedCookie(header http.Header, name string) {
	values := header.Values(constvars.HeaderSetCookie)
	if len(values) == 0 {
		return
	}

	kept := make([]string, 0, len(values))
	for _, value := range values {
		if !strings.HasPrefix(value, name+"=") {
			kept = append(kept, value)
		}
	}
	header.Del(constvars.HeaderSetCookie)
	for _, value := range kept {
		header.Add(constvars.HeaderSetCookie, value)
	}
}
