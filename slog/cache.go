package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/unfurl"
)

// Ensure LoggingCache implements unfurl.PreviewCache at compile time.
var _ unfurl.PreviewCache = (*LoggingCache)(nil)

// LoggingCache wraps a PreviewCache with hit/miss logging.
type LoggingCache struct {
	next   unfurl.PreviewCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next unfurl.PreviewCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs the lookup.
func (c *LoggingCache) Get(ctx context.Context, url string) (p *unfurl.Preview, ok bool, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache get",
			"url", url,
			"hit", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Get(ctx, url)
}

// Put delegates to the wrapped cache and logs the store.
func (c *LoggingCache) Put(ctx context.Context, url string, p *unfurl.Preview) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache put",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Put(ctx, url, p)
}
