package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sole_and_ankle/catalog/internal/logic"

	"github.com/lib/pq"
)

var ErrShoeNotFound = errors.New("shoe not found")

// Row mirrors the 'shoes' table.
type Row struct {
	ID int
	logic.Shoe
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CatalogStore holds the connection pool for the shoe catalog.
type CatalogStore struct {
	db *sql.DB
}

// NewCatalogStore expects main.go to pass it a working database connection.
func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

const shoeColumns = `id, slug, name, image_src, price, sale_price, release_date, num_of_colors, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (Row, error) {
	var r Row
	err := sc.Scan(
		&r.ID, &r.Slug, &r.Name, &r.ImageSrc, &r.Price, &r.SalePrice,
		&r.ReleaseDate, &r.NumOfColors, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// UpsertShoe inserts the shoe or, when the slug exists, overwrites it.
func (s *CatalogStore) UpsertShoe(ctx context.Context, shoe logic.Shoe) (int, error) {
	query := `
		INSERT INTO shoes (slug, name, image_src, price, sale_price, release_date, num_of_colors)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug)
		DO UPDATE SET
			name = EXCLUDED.name,
			image_src = EXCLUDED.image_src,
			price = EXCLUDED.price,
			sale_price = EXCLUDED.sale_price,
			release_date = EXCLUDED.release_date,
			num_of_colors = EXCLUDED.num_of_colors,
			updated_at = NOW()
		RETURNING id
	`
	var id int
	// RETURNING id works for both the insert and the update path
	err := s.db.QueryRowContext(ctx, query,
		shoe.Slug, shoe.Name, shoe.ImageSrc, shoe.Price, shoe.SalePrice, shoe.ReleaseDate, shoe.NumOfColors,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert shoe: %w", err)
	}
	return id, nil
}

// GetShoe loads a single shoe by slug.
func (s *CatalogStore) GetShoe(ctx context.Context, slug string) (*Row, error) {
	query := `SELECT ` + shoeColumns + ` FROM shoes WHERE slug = $1`

	r, err := scanRow(s.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShoeNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get shoe: %w", err)
	}
	return &r, nil
}

// ListShoes returns the whole catalog, newest release first.
func (s *CatalogStore) ListShoes(ctx context.Context) ([]Row, error) {
	query := `SELECT ` + shoeColumns + ` FROM shoes ORDER BY release_date DESC, slug`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shoes: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

// GetShoesBySlugs batch-loads shoes keyed by slug. Unknown slugs are absent from the map.
func (s *CatalogStore) GetShoesBySlugs(ctx context.Context, slugs []string) (map[string]Row, error) {
	query := `SELECT ` + shoeColumns + ` FROM shoes WHERE slug = ANY($1)`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(slugs))
	if err != nil {
		return nil, fmt.Errorf("failed to batch get shoes: %w", err)
	}
	defer rows.Close()

	list, err := collect(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Row, len(list))
	for _, r := range list {
		out[r.Slug] = r
	}
	return out, nil
}

// DeleteShoe removes a shoe. Deleting an unknown slug returns ErrShoeNotFound.
func (s *CatalogStore) DeleteShoe(ctx context.Context, slug string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM shoes WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete shoe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete shoe: %w", err)
	}
	if n == 0 {
		return ErrShoeNotFound
	}
	return nil
}

func collect(rows *sql.Rows) ([]Row, error) {
	var out []Row
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shoe: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shoes: %w", err)
	}
	return out, nil
}
