package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	"pawtrip/internal/config"
	mem "pawtrip/pkg/memcache"
)

const limiterIdleTTL = 15 * time.Minute

var Module = fx.Provide(provideLimiterStore)

func provideLimiterStore(cfg *config.Config) mem.LimiterStore {
	return mem.NewLimiters(cfg.GenerationRatePerMinute, cfg.GenerationBurst, limiterIdleTTL)
}
