package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
)

// Client wraps redis for webhook-delivery dedup. MercadoPago re-sends
// notifications until acknowledged, so the first-seen check keeps replayed
// deliveries from creating duplicate payment requests.
type Client struct {
	rdb *redis.Client
	log *zap.SugaredLogger
}

func NewClient(lc fx.Lifecycle, cfg *cfgpkg.Config, log *zap.SugaredLogger) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Infow("closing redis connection")
			return rdb.Close()
		},
	})
	return &Client{rdb: rdb, log: log}
}

// FirstSeen returns true exactly once per key within ttl.
func (c *Client) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, "dedup:"+key, 1, ttl).Result()
}

var Module = fx.Options(
	fx.Provide(NewClient),
)
