package logic

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"59.99", "$59.99"},
		{"150", "$150.00"},
		{"110.5", "$110.50"},
		{"19.995", "$20.00"},
		{"19.994", "$19.99"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"-5", "-$5.00"},
		{"-0.001", "$0.00"},
		{"12345678901234567890.5", "$12,345,678,901,234,567,890.50"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestPriceFormatterCurrencies(t *testing.T) {
	eur, err := NewPriceFormatter("EUR", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "€59.99", eur.Format(decimal.RequireFromString("59.99")))

	jpy, err := NewPriceFormatter("JPY", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "¥1,235", jpy.Format(decimal.RequireFromString("1234.5")))

	chf, err := NewPriceFormatter("CHF", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "CHF 12.00", chf.Format(decimal.NewFromInt(12)))
}

func TestPriceFormatterFollowsLocale(t *testing.T) {
	// output must agree with the locale's own rendering of the same number,
	// including locales whose digits and separators are multi-byte
	for _, locale := range []string{"en-US", "de-DE", "fr-FR", "ar-EG", "fa-IR"} {
		t.Run(locale, func(t *testing.T) {
			f, err := NewPriceFormatter("EUR", locale)
			require.NoError(t, err)

			p := message.NewPrinter(language.MustParse(locale))
			assert.Equal(t, "€"+p.Sprintf("%.2f", 1234.5), f.Format(decimal.RequireFromString("1234.5")))
			assert.Equal(t, "€"+p.Sprintf("%.2f", 7.25), f.Format(decimal.RequireFromString("7.25")))
		})
	}
}

func TestNewPriceFormatterRejectsBadInput(t *testing.T) {
	_, err := NewPriceFormatter("XYZW", "en-US")
	assert.Error(t, err)

	_, err = NewPriceFormatter("USD", "not a locale!")
	assert.Error(t, err)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "Color", Pluralize("Color", 1))
	assert.Equal(t, "Colors", Pluralize("Color", 2))
	assert.Equal(t, "Colors", Pluralize("Color", 0))
}
