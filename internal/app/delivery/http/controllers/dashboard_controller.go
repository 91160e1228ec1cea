package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log        *zap.Logger
	RoleRouter contracts.RoleRouter
}

func NewDashboardController(logger *zap.Logger, roleRouter contracts.RoleRouter) *DashboardController {
	return &DashboardController{
		Log:        logger,
		RoleRouter: roleRouter,
	}
}

// Dashboard sends the user to the dashboard matching their role.
func (ctrl *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, err := requestSession(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	navigation := ctrl.RoleRouter.Resolve(r.Context(), sess)
	ctrl.Log.Debug("Dashboard resolved",
		zap.String(constvars.LoggingRequestIDKey, requestIDFrom(r)),
		zap.String(constvars.LoggingRedirectKey, navigation.RedirectTo),
	)
	utils.Navigate(w, r, constvars.StatusOK, navigation)
}
