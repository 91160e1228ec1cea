package config

import (
	"careportal-service/internal/app/contracts"
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	SessionStore   contracts.SessionStore
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	// zap returns an error syncing stdout on some platforms; it is not fatal here.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
