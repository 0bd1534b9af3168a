package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"sole_and_ankle/catalog/internal/card"
	"sole_and_ankle/catalog/internal/events"
	"sole_and_ankle/catalog/internal/logic"
	"sole_and_ankle/catalog/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	mu    sync.Mutex
	shoes map[string]logic.Shoe
	order []string
	gets  int
}

func newFakeStore(shoes ...logic.Shoe) *fakeStore {
	s := &fakeStore{shoes: map[string]logic.Shoe{}}
	for _, sh := range shoes {
		s.shoes[sh.Slug] = sh
		s.order = append(s.order, sh.Slug)
	}
	return s
}

func (s *fakeStore) ListShoes(ctx context.Context) ([]store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []store.Row
	for i, slug := range s.order {
		if sh, ok := s.shoes[slug]; ok {
			rows = append(rows, store.Row{ID: i + 1, Shoe: sh})
		}
	}
	return rows, nil
}

func (s *fakeStore) GetShoe(ctx context.Context, slug string) (*store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	sh, ok := s.shoes[slug]
	if !ok {
		return nil, store.ErrShoeNotFound
	}
	return &store.Row{ID: 1, Shoe: sh}, nil
}

func (s *fakeStore) GetShoesBySlugs(ctx context.Context, slugs []string) (map[string]store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]store.Row)
	for _, slug := range slugs {
		if sh, ok := s.shoes[slug]; ok {
			out[slug] = store.Row{ID: 1, Shoe: sh}
		}
	}
	return out, nil
}

func (s *fakeStore) UpsertShoe(ctx context.Context, shoe logic.Shoe) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shoes[shoe.Slug]; !ok {
		s.order = append(s.order, shoe.Slug)
	}
	s.shoes[shoe.Slug] = shoe
	return len(s.order), nil
}

func (s *fakeStore) DeleteShoe(ctx context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shoes[slug]; !ok {
		return store.ErrShoeNotFound
	}
	delete(s.shoes, slug)
	return nil
}

type fakeCache struct {
	mu        sync.Mutex
	cards     map[string]card.Card
	forgotten []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{cards: map[string]card.Card{}}
}

func (c *fakeCache) GetCard(ctx context.Context, slug string) (card.Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cd, ok := c.cards[slug]
	if !ok {
		return card.Card{}, store.ErrCacheMiss
	}
	return cd, nil
}

func (c *fakeCache) SaveCard(ctx context.Context, cd card.Card) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards[cd.Slug] = cd
	return nil
}

func (c *fakeCache) DeleteCard(ctx context.Context, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cards, slug)
	return nil
}

func (c *fakeCache) Forget(ctx context.Context, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cards, slug)
	c.forgotten = append(c.forgotten, slug)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) kinds() []events.Kind {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Kind
	for _, e := range p.events {
		out = append(out, e.Kind)
	}
	return out
}

type fixture struct {
	store     *fakeStore
	cache     *fakeCache
	publisher *fakePublisher
	catalog   *Catalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f, err := logic.NewPriceFormatter("USD", "en-US")
	require.NoError(t, err)

	fx := &fixture{
		store: newFakeStore(
			logic.Shoe{
				Slug:        "lebron",
				Name:        "LeBron 18",
				Price:       decimal.NewFromInt(150),
				SalePrice:   decimal.NewNullDecimal(decimal.NewFromInt(110)),
				ReleaseDate: now.AddDate(-2, 0, 0),
				NumOfColors: 3,
			},
			logic.Shoe{
				Slug:        "pegasus",
				Name:        "Pegasus",
				Price:       decimal.NewFromInt(150),
				ReleaseDate: now.AddDate(0, 0, -5),
				NumOfColors: 1,
			},
		),
		cache:     newFakeCache(),
		publisher: &fakePublisher{},
	}
	fx.catalog = NewCatalog(fx.store, fx.cache, card.NewBuilder(logic.DefaultWindow, f), fx.publisher)
	fx.catalog.now = func() time.Time { return now }
	return fx
}
