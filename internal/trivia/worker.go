package trivia

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CacheWarmWorker re-warms the category cache on an interval so the TTL
// expiry rarely falls on a request path.
type CacheWarmWorker struct {
	service  *Service
	logger   zerolog.Logger
	interval time.Duration
}

func NewCacheWarmWorker(service *Service, logger zerolog.Logger, interval time.Duration) *CacheWarmWorker {
	if interval <= 0 {
		interval = defaultCacheTTL / 2
	}
	return &CacheWarmWorker{
		service:  service,
		logger:   logger.With().Str("component", "cache_warm_worker").Logger(),
		interval: interval,
	}
}

// Run refreshes the cache until ctx is canceled.
func (w *CacheWarmWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.warm(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("cache warm worker stopping")
			return ctx.Err()
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CacheWarmWorker) warm(ctx context.Context) {
	if _, err := w.service.Categories(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("category cache warm failed")
	}
}
