package logic

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.CAD: "CA$",
	currency.AUD: "A$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// PriceFormatter renders amounts as localized currency strings.
type PriceFormatter struct {
	symbol   string
	scale    int
	digits   [10]string
	groupSep string
	decSep   string
}

// NewPriceFormatter builds a formatter for an ISO 4217 code and a BCP 47 locale.
func NewPriceFormatter(isoCode, locale string) (*PriceFormatter, error) {
	unit, err := currency.ParseISO(isoCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", isoCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	sym, ok := symbols[unit]
	if !ok {
		sym = unit.String() + " "
	}

	f := &PriceFormatter{symbol: sym, scale: scale}
	f.learnLocale(message.NewPrinter(tag))
	return f, nil
}

// learnLocale reads the locale's digits and separators off the printer's own
// output, so amounts of any size are rendered without going through int64.
func (f *PriceFormatter) learnLocale(p *message.Printer) {
	for d := range f.digits {
		f.digits[d] = p.Sprintf("%d", d)
	}
	one, zero, five := f.digits[1], f.digits[0], f.digits[5]

	grouped := p.Sprintf("%d", 1000)
	f.groupSep = strings.TrimSuffix(strings.TrimPrefix(grouped, one), strings.Repeat(zero, 3))

	f.decSep = "."
	half := p.Sprintf("%.1f", 1.5)
	if strings.HasPrefix(half, one) && strings.HasSuffix(half, five) && len(half) > len(one)+len(five) {
		f.decSep = half[len(one) : len(half)-len(five)]
	}
}

// Format rounds half away from zero to the currency's minor units and
// prefixes the symbol, e.g. 1234.5 -> "$1,234.50".
func (f *PriceFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(int32(f.scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(int32(f.scale))
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(f.symbol)
	b.WriteString(f.group(intPart))
	if f.scale > 0 {
		b.WriteString(f.decSep)
		b.WriteString(f.localize(frac))
	}
	return b.String()
}

// group inserts the group separator every three digits from the right.
func (f *PriceFormatter) group(digits string) string {
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(f.localize(digits[:lead]))
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(f.groupSep)
		b.WriteString(f.localize(digits[i : i+3]))
	}
	return b.String()
}

func (f *PriceFormatter) localize(ascii string) string {
	var b strings.Builder
	for i := 0; i < len(ascii); i++ {
		b.WriteString(f.digits[ascii[i]-'0'])
	}
	return b.String()
}

var usd, _ = NewPriceFormatter("USD", "en-US")

// FormatPrice formats an amount in US dollars.
func FormatPrice(amount decimal.Decimal) string {
	return usd.Format(amount)
}
