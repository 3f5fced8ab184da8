package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"loan-offer/config"
	"loan-offer/repository"
)

// openCache builds the configured cache backend. The returned close function
// is never nil.
func openCache(ctx context.Context, c config.CacheConfig, logger *zap.Logger) (repository.CacheRepository, func() error, error) {
	switch c.Backend {
	case "redis":
		rc := repository.NewRedisCache(repository.RedisOptions{
			Addr:     c.RedisAddress,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
			TTL:      c.TTL,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", c.RedisAddress, err)
		}
		logger.Info("connected to redis",
			zap.String("op", "cli.openCache"),
			zap.String("address", c.RedisAddress),
		)
		return rc, rc.Close, nil
	default:
		return repository.NewMemoryCache(), func() error { return nil }, nil
	}
}
