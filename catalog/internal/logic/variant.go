package logic

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=Variant -linecomment -output=variant_string.go

// Variant is the display mode of a product card.
type Variant int

const (
	Default    Variant = iota // default
	NewRelease                // new-release
	OnSale                    // on-sale
)

// DefaultWindow is how long after release a shoe counts as new.
const DefaultWindow = 30 * 24 * time.Hour

// ParseVariant maps the text form back to a Variant.
func ParseVariant(s string) (Variant, error) {
	for v := Default; v <= OnSale; v++ {
		if v.String() == s {
			return v, nil
		}
	}
	return Default, fmt.Errorf("unknown variant %q", s)
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Classifier selects a Variant. Window is the trailing recency window.
type Classifier struct {
	Window time.Duration
}

// NewClassifier returns a Classifier, falling back to DefaultWindow for non-positive windows.
func NewClassifier(window time.Duration) Classifier {
	if window <= 0 {
		window = DefaultWindow
	}
	return Classifier{Window: window}
}

// Classify picks exactly one variant. A present sale price wins over recency,
// even when it is zero. Releases dated after now are never new.
func (c Classifier) Classify(price decimal.Decimal, salePrice decimal.NullDecimal, releaseDate, now time.Time) Variant {
	if salePrice.Valid {
		return OnSale
	}
	if c.IsNew(releaseDate, now) {
		return NewRelease
	}
	return Default
}

// IsNew reports whether releaseDate falls inside [now-Window, now].
func (c Classifier) IsNew(releaseDate, now time.Time) bool {
	age := now.Sub(releaseDate)
	return age >= 0 && age < c.window()
}

// NewUntil is the instant a shoe released at releaseDate stops being new.
func (c Classifier) NewUntil(releaseDate time.Time) time.Time {
	return releaseDate.Add(c.window())
}

func (c Classifier) window() time.Duration {
	if c.Window <= 0 {
		return DefaultWindow
	}
	return c.Window
}

// ClassifyVariant classifies against the wall clock with the default window.
func ClassifyVariant(price decimal.Decimal, salePrice decimal.NullDecimal, releaseDate time.Time) Variant {
	return Classifier{Window: DefaultWindow}.Classify(price, salePrice, releaseDate, time.Now())
}
