// Package refresher re-renders cached cards on a schedule so variants age out
// of the new-release window without waiting for a write.
package refresher

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

type Lister interface {
	ListShoes(ctx context.Context) ([]store.Row, error)
}

// Cache stores rendered cards plus the last variant seen per shoe. The
// variant record must outlive the card, whose ttl ends at the transition.
type Cache interface {
	LastVariant(ctx context.Context, slug string) (logic.Variant, error)
	SetLastVariant(ctx context.Context, slug string, v logic.Variant) error
	SaveCard(ctx context.Context, c card.Card) error
}

type Publisher interface {
	Publish(e events.Event) error
}

type Refresher struct {
	lister    Lister
	cache     Cache
	builder   *card.Builder
	publisher Publisher
	now       func() time.Time
}

func New(l Lister, c Cache, b *card.Builder, p Publisher) *Refresher {
	return &Refresher{lister: l, cache: c, builder: b, publisher: p, now: time.Now}
}

// RefreshOnce re-classifies every shoe, rewrites its cached card and
// publishes VariantChanged where the last recorded variant differs. Invalid shoes
// are skipped. It returns how many variants changed.
func (r *Refresher) RefreshOnce(ctx context.Context) (int, error) {
	rows, err := r.lister.ListShoes(ctx)
	if err != nil {
		return 0, err
	}

	now := r.now()
	changed := 0
	for _, row := range rows {
		cd, err := r.builder.Build(row.Shoe, now)
		if err != nil {
			log.Printf("[refresher] skip slug=%s err=%v", row.Slug, err)
			continue
		}

		prev, err := r.cache.LastVariant(ctx, row.Slug)
		switch {
		case err == nil && prev != cd.Variant:
			changed++
			e := events.New(events.VariantChanged, row.Shoe, cd.Variant, now)
			if err := r.publisher.Publish(e); err != nil {
				log.Printf("[refresher] publish failed slug=%s err=%v", row.Slug, err)
			} else {
				log.Printf("[refresher] variant changed slug=%s %s -> %s", row.Slug, prev, cd.Variant)
			}
		case err != nil && !errors.Is(err, store.ErrCacheMiss):
			log.Printf("[refresher] variant read failed slug=%s err=%v", row.Slug, err)
		}

		if err == nil || errors.Is(err, store.ErrCacheMiss) {
			if err := r.cache.SetLastVariant(ctx, row.Slug, cd.Variant); err != nil {
				log.Printf("[refresher] variant write failed slug=%s err=%v", row.Slug, err)
			}
		}
		if err := r.cache.SaveCard(ctx, cd); err != nil {
			log.Printf("[refresher] cache write failed slug=%s err=%v", row.Slug, err)
		}
	}
	return changed, nil
}

// Run refreshes every interval until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[refresher] active interval=%s", interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
			n, err := r.RefreshOnce(runCtx)
			cancel()
			if err != nil {
				log.Printf("[refresher] refresh failed err=%v", err)
				continue
			}
			log.Printf("[refresher] refresh complete changed=%d", n)
		}
	}
}
