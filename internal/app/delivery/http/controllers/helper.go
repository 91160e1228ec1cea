package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/services/shared/session"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"net/http"
)

// requestSession returns the session bound by the session middleware.
func requestSession(r *http.Request) (contracts.Session, error) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return nil, exceptions.ErrSessionMissing()
	}
	return sess, nil
}

func requestIDFrom(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
