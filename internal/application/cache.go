package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"stocksinfo/internal/domain"

	"go.uber.org/zap"
)

// CacheKey is the settings key holding the serialized quote cache.
const CacheKey = "quotes.cache"

// QuoteCache persists the symbol -> Quote mapping as a single blob.
type QuoteCache struct {
	settings Settings
	log      *zap.Logger
}

func NewQuoteCache(settings Settings, log *zap.Logger) *QuoteCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteCache{settings: settings, log: log.With(zap.String("component", "quote_cache"))}
}

// Load never fails: absent, unreadable and corrupt payloads yield an empty mapping.
func (c *QuoteCache) Load(ctx context.Context) map[string]domain.Quote {
	out := map[string]domain.Quote{}
	data, err := c.settings.Get(ctx, CacheKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.log.Warn("cache.read_failed", zap.Error(err))
		}
		return out
	}
	var decoded map[string]domain.Quote
	if err := json.Unmarshal(data, &decoded); err != nil {
		c.log.Warn("cache.corrupt_payload_discarded", zap.Error(err), zap.Int("bytes", len(data)))
		return out
	}
	for k, v := range decoded {
		out[k] = v
	}
	c.log.Debug("cache.loaded", zap.Int("quotes", len(out)))
	return out
}

func (c *QuoteCache) Save(ctx context.Context, quotes map[string]domain.Quote) error {
	if quotes == nil {
		quotes = map[string]domain.Quote{}
	}
	data, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("encode quote cache: %w", err)
	}
	if err := c.settings.Set(ctx, CacheKey, data); err != nil {
		return fmt.Errorf("write quote cache: %w", err)
	}
	c.log.Debug("cache.saved", zap.Int("quotes", len(quotes)))
	return nil
}

func (c *QuoteCache) Clear(ctx context.Context) error {
	if err := c.settings.Delete(ctx, CacheKey); err != nil {
		return fmt.Errorf("clear quote cache: %w", err)
	}
	return nil
}
