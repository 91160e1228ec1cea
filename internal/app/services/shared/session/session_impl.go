package session

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"
	"context"
)

type boundSession struct {
	id       string
	store    contracts.SessionStore
	onRotate func(sessionID string) error
}

// Bind returns the session identified by id on top of store.
func Bind(store contracts.SessionStore, id string) contracts.Session {
	return BindWithRotation(store, id, nil)
}

// BindWithRotation is Bind with a hook that runs whenever Establish moves the
// session to a new id, so the caller can hand the new id to the browser.
func BindWithRotation(store contracts.SessionStore, id string, onRotate func(sessionID string) error) contracts.Session {
	return &boundSession{
		id:       id,
		store:    store,
		onRotate: onRotate,
	}
}

func (s *boundSession) ID() string {
	return s.id
}

func (s *boundSession) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.id, key)
}

func (s *boundSession) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.id, key, value)
}

func (s *boundSession) Clear(ctx context.Context) error {
	return s.store.Clear(ctx, s.id)
}

// Establish records a successful login under a freshly minted id. The id the
// browser carried before login is cleared and never authenticated.
func (s *boundSession) Establish(ctx context.Context, token, role string) error {
	err := s.Rotate(ctx)
	if err != nil {
		return err
	}
	err = s.store.Set(ctx, s.id, constvars.SessionKeyToken, token)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.id, constvars.SessionKeyRole, role)
}

// Rotate drops everything stored under the current id and switches to a new
// one.
func (s *boundSession) Rotate(ctx context.Context) error {
	err := s.store.Clear(ctx, s.id)
	if err != nil {
		return err
	}

	s.id = utils.GenerateSessionID()
	if s.onRotate != nil {
		return s.onRotate(s.id)
	}
	return nil
}

// Token returns the backend bearer token, or "" when not logged in.
func (s *boundSession) Token(ctx context.Context) (string, error) {
	token, _, err := s.store.Get(ctx, s.id, constvars.SessionKeyToken)
	return token, err
}

func (s *boundSession) Role(ctx context.Context) (string, error) {
	role, _, err := s.store.Get(ctx, s.id, constvars.SessionKeyRole)
	return role, err
}

// WithSession stores session on ctx for the rest of the request.
func WithSession(ctx context.Context, session contracts.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
}

func FromContext(ctx context.Context) (contracts.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(contracts.Session)
	return session, ok
}
