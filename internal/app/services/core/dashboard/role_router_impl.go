package dashboard

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"context"

	"go.uber.org/zap"
)

type roleRouter struct {
	Backend contracts.BackendClient
	Log     *zap.Logger
}

func NewRoleRouter(backend contracts.BackendClient, logger *zap.Logger) contracts.RoleRouter {
	return &roleRouter{
		Backend: backend,
		Log:     logger,
	}
}

// Resolve asks the backend who the user is, once, and picks the dashboard.
// Every failure lands on the login page.
func (r *roleRouter) Resolve(ctx context.Context, session contracts.Session) *responses.Navigation {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("roleRouter.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	me := new(responses.BackendMe)
	err := r.Backend.Do(ctx, session, constvars.MethodGet, constvars.BackendAuthMe, nil, me)
	if err != nil {
		r.Log.Error("roleRouter.Resolve error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return replaceWith(constvars.PathLogin)
	}

	r.Log.Info("roleRouter.Resolve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, me.Role),
	)

	switch me.Role {
	case constvars.RolePatient:
		return replaceWith(constvars.PathPatient)
	case constvars.RoleDoctor:
		return replaceWith(constvars.PathDoctor)
	}
	return replaceWith(constvars.PathLogin)
}

func replaceWith(path string) *responses.Navigation {
	return &responses.Navigation{
		RedirectTo: path,
		Replace:    true,
	}
}
