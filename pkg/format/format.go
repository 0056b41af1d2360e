package format

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDecimals is the fraction-digit count used when a caller passes a
// negative decimals argument.
const DefaultDecimals = 2

// Formatter renders localized numeric strings for a single locale and
// currency. Immutable after New; safe for concurrent use.
type Formatter struct {
	tag      language.Tag
	unit     currency.Unit
	decimals int
	printer  *message.Printer
}

// Option configures Formatter creation.
type Option func(*Formatter)

// WithLocale sets the locale used for digit grouping and decimal separators.
func WithLocale(tag language.Tag) Option {
	return func(f *Formatter) { f.tag = tag }
}

// WithCurrency sets the currency unit used by FormatCurrency.
func WithCurrency(unit currency.Unit) Option {
	return func(f *Formatter) { f.unit = unit }
}

// WithDecimals sets the default fraction-digit count. Negative values are
// ignored to keep the formatter in a usable state.
func WithDecimals(n int) Option {
	return func(f *Formatter) {
		if n >= 0 {
			f.decimals = n
		}
	}
}

// New creates a Formatter. Defaults: en-US locale, USD, 2 decimals.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		tag:      language.AmericanEnglish,
		unit:     currency.USD,
		decimals: DefaultDecimals,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.printer = message.NewPrinter(f.tag)
	return f
}

// FormatNumber renders a localized fixed-decimal number with digit grouping.
// A negative decimals argument selects the formatter default. Non-finite
// values render as 0.
func (f *Formatter) FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		decimals = f.decimals
	}
	v = finite(v)
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// FormatPercentage renders a number followed by a percent sign. The value is
// taken as already being on the 0-100 scale; no multiplication happens here.
func (f *Formatter) FormatPercentage(v float64, decimals int) string {
	return f.FormatNumber(v, decimals) + "%"
}

// FormatCurrency renders an amount with the formatter's currency symbol and
// the fraction digits that currency prescribes (USD=2, JPY=0, ...).
// Non-finite amounts render as 0.
func (f *Formatter) FormatCurrency(amount float64) string {
	amount = finite(amount)
	scale, _ := currency.Standard.Rounding(f.unit)
	num := f.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(scale),
		number.MaxFractionDigits(scale),
	))
	return f.printer.Sprint(currency.Symbol(f.unit)) + num
}

// Currency returns the unit FormatCurrency renders with.
func (f *Formatter) Currency() currency.Unit { return f.unit }

// Locale returns the language tag the formatter renders for.
func (f *Formatter) Locale() language.Tag { return f.tag }

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// defaultFormatter backs the package-level convenience functions.
var defaultFormatter = New()

// FormatNumber renders v using the default en-US formatter.
func FormatNumber(v float64, decimals int) string {
	return defaultFormatter.FormatNumber(v, decimals)
}

// FormatPercentage renders v with a trailing percent sign using the default
// en-US formatter.
func FormatPercentage(v float64, decimals int) string {
	return defaultFormatter.FormatPercentage(v, decimals)
}

// FormatCurrency renders v as USD using the default en-US formatter.
func FormatCurrency(amount float64) string {
	return defaultFormatter.FormatCurrency(amount)
}
