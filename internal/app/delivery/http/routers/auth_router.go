package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Get(constvars.PathRoot, authController.Page(constvars.PageLogin))
	router.Get(constvars.PathLogin, authController.Page(constvars.PageLogin))
	router.Get(constvars.PathSignup, authController.Page(constvars.PageSignup))
	router.Post(constvars.PathLogin, authController.Login)
	router.Post(constvars.PathSignup, authController.Signup)
	router.Post(constvars.PathSignup+"/validate", authController.ValidateSignup)
	router.Post(constvars.PathLogout, authController.Logout)
}
