package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sole_and_ankle/catalog/internal/card"
	"sole_and_ankle/catalog/internal/logic"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("card not cached")

// CardCache keeps rendered cards in redis so reads skip postgres.
type CardCache struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewCardCache creates a redis-backed card cache with a bounded ttl.
func NewCardCache(addr, password string, db int, ttl time.Duration) *CardCache {
	return NewCardCacheFromClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), ttl)
}

// DefaultCardTTL bounds cached cards when no positive ttl is configured.
const DefaultCardTTL = time.Hour

func NewCardCacheFromClient(client *redis.Client, ttl time.Duration) *CardCache {
	if ttl <= 0 {
		ttl = DefaultCardTTL
	}
	return &CardCache{client: client, ttl: ttl, now: time.Now}
}

func cardKey(slug string) string {
	return "card:" + slug
}

// variantKey holds the last variant the refresher observed. It has no ttl so
// it survives the card expiring at the moment its variant changes.
func variantKey(slug string) string {
	return "variant:" + slug
}

// Ping verifies connectivity and credentials.
func (c *CardCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// SaveCard stores a card until the earlier of the cache ttl and the moment
// its variant changes. Cards whose variant already expired are not stored.
func (c *CardCache) SaveCard(ctx context.Context, cd card.Card) error {
	ttl := c.ttl
	if !cd.ExpiresAt.IsZero() {
		untilExpiry := cd.ExpiresAt.Sub(c.now())
		if untilExpiry <= 0 {
			return nil
		}
		if untilExpiry < ttl {
			ttl = untilExpiry
		}
	}

	data, err := json.Marshal(cd)
	if err != nil {
		return fmt.Errorf("failed to encode card: %w", err)
	}
	return c.client.Set(ctx, cardKey(cd.Slug), data, ttl).Err()
}

// GetCard loads a cached card, returning ErrCacheMiss when absent.
func (c *CardCache) GetCard(ctx context.Context, slug string) (card.Card, error) {
	val, err := c.client.Get(ctx, cardKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return card.Card{}, ErrCacheMiss
	} else if err != nil {
		return card.Card{}, err
	}

	var cd card.Card
	if err := json.Unmarshal(val, &cd); err != nil {
		return card.Card{}, fmt.Errorf("failed to decode card %s: %w", slug, err)
	}
	return cd, nil
}

// DeleteCard drops a cached card. Missing keys are not an error.
func (c *CardCache) DeleteCard(ctx context.Context, slug string) error {
	return c.client.Del(ctx, cardKey(slug)).Err()
}

// LastVariant returns the variant last recorded by SetLastVariant, or ErrCacheMiss.
func (c *CardCache) LastVariant(ctx context.Context, slug string) (logic.Variant, error) {
	val, err := c.client.Get(ctx, variantKey(slug)).Result()
	if errors.Is(err, redis.Nil) {
		return logic.Default, ErrCacheMiss
	} else if err != nil {
		return logic.Default, err
	}
	return logic.ParseVariant(val)
}

func (c *CardCache) SetLastVariant(ctx context.Context, slug string, v logic.Variant) error {
	return c.client.Set(ctx, variantKey(slug), v.String(), 0).Err()
}

// Forget drops everything cached for a shoe that left the catalog.
func (c *CardCache) Forget(ctx context.Context, slug string) error {
	return c.client.Del(ctx, cardKey(slug), variantKey(slug)).Err()
}

func (c *CardCache) Close() error {
	return c.client.Close()
}
