package auth

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type authUsecase struct {
	Backend contracts.BackendClient
	Log     *zap.Logger
}

func NewAuthUsecase(backend contracts.BackendClient, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		Backend: backend,
		Log:     logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, session contracts.Session, request *requests.Login) (*responses.Navigation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	backendRequest := &requests.BackendLogin{
		Email:    request.Email,
		Password: request.Password,
	}
	backendResponse := new(responses.BackendLogin)
	err := uc.Backend.DoPublic(ctx, constvars.MethodPost, constvars.BackendAuthLogin, backendRequest, backendResponse)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling backend.DoPublic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.WithFallbackMessage(err, fmt.Sprintf(constvars.ErrClientLoginFailed, exceptions.StatusCodeOf(err)))
	}

	err = session.Establish(ctx, backendResponse.Token, backendResponse.Role)
	if err != nil {
		uc.Log.Error("authUsecase.Login error establishing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID()),
		zap.String(constvars.LoggingRoleKey, backendResponse.Role),
	)
	return &responses.Navigation{RedirectTo: constvars.PathDashboard}, nil
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Navigation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := validateSignup(request)
	if err != nil {
		uc.Log.Info("authUsecase.Signup rejected input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	backendRequest := &requests.BackendRegister{
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Password:  request.Password,
		Role:      request.Role,
	}
	err = uc.Backend.DoPublic(ctx, constvars.MethodPost, constvars.BackendAuthRegister, backendRequest, nil)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error calling backend.DoPublic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.WithFallbackMessage(err, fmt.Sprintf(constvars.ErrClientSignupFailed, exceptions.StatusCodeOf(err)))
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)
	return &responses.Navigation{RedirectTo: constvars.PathRoot}, nil
}

// CheckSignup gives live feedback while the password fields are typed.
func (uc *authUsecase) CheckSignup(request *requests.SignupCheck) *responses.SignupCheck {
	check := &responses.SignupCheck{
		PasswordErrors: []string{},
		ConfirmMessage: utils.ConfirmMismatch(request.Password, request.Confirm),
	}
	if request.Password != "" {
		check.PasswordErrors = utils.PasswordRequirements(request.Password)
	}
	return check
}

func (uc *authUsecase) Logout(ctx context.Context, session contracts.Session) (*responses.Navigation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := session.Clear(ctx)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID()),
	)
	return &responses.Navigation{RedirectTo: constvars.PathRoot, Replace: true}, nil
}

// validateSignup checks the form in the order the user sees the messages:
// required fields, role, password strength, then confirmation.
func validateSignup(request *requests.Signup) error {
	err := utils.ValidateStruct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				if fieldErr.Field() == "role" {
					return exceptions.ErrValidationMessage(constvars.ErrClientSelectRole)
				}
			}
		}
		return exceptions.ErrValidationMessage(constvars.ErrClientFillRequiredFields)
	}

	missing := utils.PasswordRequirements(request.Password)
	if len(missing) > 0 {
		return exceptions.ErrValidationMessage(fmt.Sprintf(constvars.ErrClientPasswordNeeds, strings.Join(missing, ", ")))
	}

	if request.Password != request.Confirm {
		return exceptions.ErrValidationMessage(constvars.ErrClientPasswordsDoNotMatch)
	}
	return nil
}
