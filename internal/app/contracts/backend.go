package contracts

import "context"

// BackendClient performs calls against the upstream REST backend.
type BackendClient interface {
	// Do attaches the session's bearer token. A 401 response clears the
	// session and returns an unauthorized error that redirects to the root.
	Do(ctx context.Context, session Session, method, path string, body, out interface{}) error
	// DoPublic performs an anonymous call without any 401 handling.
	DoPublic(ctx context.Context, method, path string, body, out interface{}) error
}
