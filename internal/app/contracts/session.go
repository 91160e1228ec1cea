package contracts

import "context"

// SessionStore persists key/value pairs per session id.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Clear(ctx context.Context, sessionID string) error
}

// Session is a SessionStore bound to one session id. Token and role are only
// written through Establish and removed through Clear. Establish rotates the
// id, so ID must be read again after a login.
type Session interface {
	ID() string
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
	Establish(ctx context.Context, token, role string) error
	Rotate(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	Role(ctx context.Context) (string, error)
}
