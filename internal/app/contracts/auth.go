package contracts

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, session Session, request *requests.Login) (*responses.Navigation, error)
	Signup(ctx context.Context, request *requests.Signup) (*responses.Navigation, error)
	CheckSignup(request *requests.SignupCheck) *responses.SignupCheck
	Logout(ctx context.Context, session Session) (*responses.Navigation, error)
}

// RoleRouter resolves the dashboard a logged-in user belongs to.
type RoleRouter interface {
	Resolve(ctx context.Context, session Session) *responses.Navigation
}
