package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

// Page returns a handler describing a public page. No session is required.
func (ctrl *AuthController) Page(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "", &responses.PageView{Page: page})
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Debug("Login attempt started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
	)

	sess, err := requestSession(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	request := new(requests.Login)
	err = utils.DecodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	utils.SanitizeLoginRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrInputValidation(err))
		return
	}

	navigation, err := ctrl.AuthUsecase.Login(r.Context(), sess, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	ctrl.Log.Info("User logged in",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sess.ID()),
	)
	utils.Navigate(w, r, constvars.StatusOK, navigation)
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	request := new(requests.Signup)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Signup error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	utils.SanitizeSignupRequest(request)
	navigation, err := ctrl.AuthUsecase.Signup(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	utils.Navigate(w, r, constvars.StatusCreated, navigation)
}

// ValidateSignup gives live password feedback while the user types.
func (ctrl *AuthController) ValidateSignup(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SignupCheck)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	result := ctrl.AuthUsecase.CheckSignup(request)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidationCheckedMessage, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := requestSession(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	navigation, err := ctrl.AuthUsecase.Logout(r.Context(), sess)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	ctrl.Log.Info("User logged out",
		zap.String(constvars.LoggingRequestIDKey, requestIDFrom(r)),
		zap.String(constvars.LoggingSessionIDKey, sess.ID()),
	)
	utils.Navigate(w, r, constvars.StatusOK, navigation)
}
