package handler

import (
	"context"
	"errors"
	"log"
	"time"

	"sole_and_ankle/catalog/internal/card"
	"sole_and_ankle/catalog/internal/events"
	"sole_and_ankle/catalog/internal/logic"
	"sole_and_ankle/catalog/internal/store"
)

type ShoeStore interface {
	ListShoes(ctx context.Context) ([]store.Row, error)
	GetShoe(ctx context.Context, slug string) (*store.Row, error)
	GetShoesBySlugs(ctx context.Context, slugs []string) (map[string]store.Row, error)
	UpsertShoe(ctx context.Context, shoe logic.Shoe) (int, error)
	DeleteShoe(ctx context.Context, slug string) error
}

type CardCache interface {
	GetCard(ctx context.Context, slug string) (card.Card, error)
	SaveCard(ctx context.Context, c card.Card) error
	DeleteCard(ctx context.Context, slug string) error
	Forget(ctx context.Context, slug string) error
}

type EventPublisher interface {
	Publish(e events.Event) error
}

// Catalog is the read/write path shared by the HTTP and gRPC handlers.
// The cache is best effort: its failures are logged, never returned.
type Catalog struct {
	store     ShoeStore
	cache     CardCache
	builder   *card.Builder
	publisher EventPublisher
	now       func() time.Time
}

func NewCatalog(s ShoeStore, c CardCache, b *card.Builder, p EventPublisher) *Catalog {
	return &Catalog{store: s, cache: c, builder: b, publisher: p, now: time.Now}
}

// Card returns the card for slug, preferring the cache.
func (c *Catalog) Card(ctx context.Context, slug string) (card.Card, error) {
	cached, err := c.cache.GetCard(ctx, slug)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Printf("[catalog] cache read failed slug=%s err=%v", slug, err)
	}

	row, err := c.store.GetShoe(ctx, slug)
	if err != nil {
		return card.Card{}, err
	}
	cd, err := c.builder.Build(row.Shoe, c.now())
	if err != nil {
		return card.Card{}, err
	}
	if err := c.cache.SaveCard(ctx, cd); err != nil {
		log.Printf("[catalog] cache write failed slug=%s err=%v", slug, err)
	}
	return cd, nil
}

// Cards renders the whole catalog, newest release first.
func (c *Catalog) Cards(ctx context.Context) ([]card.Card, error) {
	rows, err := c.store.ListShoes(ctx)
	if err != nil {
		return nil, err
	}
	shoes := make([]logic.Shoe, 0, len(rows))
	for _, r := range rows {
		shoes = append(shoes, r.Shoe)
	}
	return c.builder.BuildAll(shoes, c.now())
}

// CardsBySlugs renders the requested shoes in request order. Unknown slugs
// are skipped and duplicates rendered once.
func (c *Catalog) CardsBySlugs(ctx context.Context, slugs []string) ([]card.Card, error) {
	rows, err := c.store.GetShoesBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}
	now := c.now()
	cards := make([]card.Card, 0, len(rows))
	seen := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		row, ok := rows[slug]
		if !ok || seen[slug] {
			continue
		}
		seen[slug] = true
		cd, err := c.builder.Build(row.Shoe, now)
		if err != nil {
			return nil, err
		}
		cards = append(cards, cd)
	}
	return cards, nil
}

// Preview renders a card for a shoe that is not stored.
func (c *Catalog) Preview(shoe logic.Shoe) (card.Card, error) {
	return c.builder.Build(shoe, c.now())
}

// Save validates and upserts shoe, drops its stale card and announces the change.
func (c *Catalog) Save(ctx context.Context, shoe logic.Shoe) (int, card.Card, error) {
	now := c.now()
	cd, err := c.builder.Build(shoe, now)
	if err != nil {
		return 0, card.Card{}, err
	}

	id, err := c.store.UpsertShoe(ctx, shoe)
	if err != nil {
		return 0, card.Card{}, err
	}
	if err := c.cache.DeleteCard(ctx, shoe.Slug); err != nil {
		log.Printf("[catalog] cache invalidate failed slug=%s err=%v", shoe.Slug, err)
	}
	c.publish(events.New(events.Upserted, shoe, cd.Variant, now))
	return id, cd, nil
}

// Delete removes slug from the catalog.
func (c *Catalog) Delete(ctx context.Context, slug string) error {
	if err := c.store.DeleteShoe(ctx, slug); err != nil {
		return err
	}
	if err := c.cache.Forget(ctx, slug); err != nil {
		log.Printf("[catalog] cache invalidate failed slug=%s err=%v", slug, err)
	}
	c.publish(events.New(events.Deleted, logic.Shoe{Slug: slug}, logic.Default, c.now()))
	return nil
}

func (c *Catalog) publish(e events.Event) {
	if err := c.publisher.Publish(e); err != nil {
		log.Printf("[catalog] publish failed slug=%s kind=%s err=%v", e.Slug, e.Kind, err)
		return
	}
	log.Printf("[catalog] published slug=%s kind=%s variant=%s", e.Slug, e.Kind, e.Variant)
}
