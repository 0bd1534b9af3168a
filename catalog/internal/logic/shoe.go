package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingSlug        = errors.New("slug is required")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrNegativeSalePrice  = errors.New("sale price must not be negative")
	ErrMissingReleaseDate = errors.New("release date is required")
	ErrNegativeColors     = errors.New("number of colors must not be negative")
)

// Shoe is the per-render display record for one catalog product.
type Shoe struct {
	Slug        string              `json:"slug"`
	Name        string              `json:"name"`
	ImageSrc    string              `json:"imageSrc"`
	Price       decimal.Decimal     `json:"price"`
	SalePrice   decimal.NullDecimal `json:"salePrice"`
	ReleaseDate time.Time           `json:"releaseDate"`
	NumOfColors int                 `json:"numOfColors"`
}

// Validate reports the first contract violation in s.
func (s Shoe) Validate() error {
	if s.Slug == "" {
		return ErrMissingSlug
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("shoe %s: %w", s.Slug, ErrNegativePrice)
	}
	if s.SalePrice.Valid && s.SalePrice.Decimal.IsNegative() {
		return fmt.Errorf("shoe %s: %w", s.Slug, ErrNegativeSalePrice)
	}
	if s.ReleaseDate.IsZero() {
		return fmt.Errorf("shoe %s: %w", s.Slug, ErrMissingReleaseDate)
	}
	if s.NumOfColors < 0 {
		return fmt.Errorf("shoe %s: %w", s.Slug, ErrNegativeColors)
	}
	return nil
}

// Variant classifies s at now.
func (s Shoe) Variant(c Classifier, now time.Time) Variant {
	return c.Classify(s.Price, s.SalePrice, s.ReleaseDate, now)
}

// VariantExpiry is when s's variant next changes on its own, or the zero
// time when it never will. Only new releases age out.
func (s Shoe) VariantExpiry(c Classifier, now time.Time) time.Time {
	if s.Variant(c, now) == NewRelease {
		return c.NewUntil(s.ReleaseDate)
	}
	if !s.SalePrice.Valid && s.ReleaseDate.After(now) {
		return s.ReleaseDate
	}
	return time.Time{}
}
