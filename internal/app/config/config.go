package config

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:               utils.GetEnvString("APP_PORT", ":8080"),
			Version:            utils.GetEnvString("APP_VERSION", "v1.0"),
			MaxRequests:        utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			CORSAllowedOrigins: utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Backend: Backend{
			BaseUrl: utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000"),
		},
		Session: Session{
			Backend:       utils.GetEnvString("SESSION_BACKEND", constvars.SessionBackendRedis),
			CookieName:    utils.GetEnvString("SESSION_COOKIE_NAME", "careportal_session"),
			TTLInHours:    utils.GetEnvInt("SESSION_TTL_IN_HOURS", 24),
			CookieSecure:  utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			SweepCronSpec: utils.GetEnvString("SESSION_SWEEP_CRON_SPEC", constvars.DefaultSessionSweepSpec),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		CSRF: CSRF{
			AuthKey: utils.GetEnvString("CSRF_AUTH_KEY", ""),
		},
	}
}
