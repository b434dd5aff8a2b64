// Package redis guarda sesiones y carritos del punto de venta en Redis
// (SESSION_DRIVER=redis), así sobreviven a reinicios y se comparten entre réplicas.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/supermack-billing/pkg/config"
)

const keyPrefix = "supermack:"

func sessionKey(id string) string { return keyPrefix + "session:" + id }

func cartKey(sessionID string) string { return keyPrefix + "cart:" + sessionID }

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
