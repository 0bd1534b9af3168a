// Package card turns catalog shoes into the view model a storefront renders.
package card

import (
	"fmt"
	"time"

	"sole_and_ankle/catalog/internal/logic"
)

const (
	TagSale       = "Sale"
	TagNewRelease = "Just released!"

	ColorPrimary   = "primary"
	ColorSecondary = "secondary"
)

// Card is everything the rendering layer needs for one product tile.
type Card struct {
	Slug        string        `json:"slug"`
	Href        string        `json:"href"`
	Name        string        `json:"name"`
	ImageSrc    string        `json:"imageSrc"`
	Variant     logic.Variant `json:"variant"`
	Tag         string        `json:"tag,omitempty"`
	TagColor    string        `json:"tagColor,omitempty"`
	Price       string        `json:"price"`
	PriceStruck bool          `json:"priceStruck"`
	SalePrice   string        `json:"salePrice,omitempty"`
	Colors      string        `json:"colors"`
	ColorsLabel string        `json:"colorsLabel"`
	// ExpiresAt is when Variant stops being accurate; zero means never.
	ExpiresAt time.Time `json:"expiresAt"`
}

// Builder renders cards with a fixed classifier and price formatter.
type Builder struct {
	Classifier logic.Classifier
	Formatter  *logic.PriceFormatter
}

// NewBuilder returns a Builder for the given recency window and formatter.
func NewBuilder(window time.Duration, f *logic.PriceFormatter) *Builder {
	return &Builder{Classifier: logic.NewClassifier(window), Formatter: f}
}

// Href is the storefront link target for a shoe.
func Href(slug string) string {
	return "/shoe/" + slug
}

// Build validates s and renders its card as of now.
func (b *Builder) Build(s logic.Shoe, now time.Time) (Card, error) {
	if err := s.Validate(); err != nil {
		return Card{}, fmt.Errorf("build card: %w", err)
	}

	variant := s.Variant(b.Classifier, now)
	c := Card{
		Slug:        s.Slug,
		Href:        Href(s.Slug),
		Name:        s.Name,
		ImageSrc:    s.ImageSrc,
		Variant:     variant,
		Price:       b.Formatter.Format(s.Price),
		Colors:      logic.Pluralize("Color", s.NumOfColors),
		ColorsLabel: fmt.Sprintf("%d %s", s.NumOfColors, logic.Pluralize("Color", s.NumOfColors)),
		ExpiresAt:   s.VariantExpiry(b.Classifier, now),
	}

	switch variant {
	case logic.OnSale:
		c.Tag = TagSale
		c.TagColor = ColorPrimary
		c.PriceStruck = true
		c.SalePrice = b.Formatter.Format(s.SalePrice.Decimal)
	case logic.NewRelease:
		c.Tag = TagNewRelease
		c.TagColor = ColorSecondary
	}
	return c, nil
}

// BuildAll renders shoes in order, stopping at the first invalid one.
func (b *Builder) BuildAll(shoes []logic.Shoe, now time.Time) ([]Card, error) {
	cards := make([]Card, 0, len(shoes))
	for _, s := range shoes {
		c, err := b.Build(s, now)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
