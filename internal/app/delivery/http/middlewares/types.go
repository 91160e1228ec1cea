package middlewares

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/services/shared/session"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionStore   contracts.SessionStore
	CookieManager  *session.CookieManager
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, sessionStore contracts.SessionStore) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionStore:   sessionStore,
		CookieManager:  session.NewCookieManager(internalConfig, logger),
	}
}
