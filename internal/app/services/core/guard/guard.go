package guard

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
)

// Decision is the outcome of guarding a protected page.
type Decision struct {
	Allowed    bool
	Navigation *responses.Navigation
}

// Evaluate admits any non-empty token. It neither verifies the token nor
// looks at the role; the backend rejects stale tokens on the first call.
func Evaluate(token string) Decision {
	if token != "" {
		return Decision{Allowed: true}
	}
	return Decision{
		Allowed: false,
		Navigation: &responses.Navigation{
			RedirectTo: constvars.PathLogin,
			Replace:    true,
		},
	}
}
