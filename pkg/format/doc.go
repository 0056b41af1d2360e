// Package format renders numbers, percentages, and currency amounts for
// calculator widget display using golang.org/x/text locale data.
//
// A Formatter carries the locale, currency unit, and default fraction-digit
// settings for one widget (or one application). Formatters are immutable
// after construction and safe for concurrent use.
//
// # Usage
//
//	f := format.New(
//	    format.WithLocale(language.German),
//	    format.WithCurrency(currency.EUR),
//	)
//	f.FormatCurrency(1050)        // "€1.050,00"
//	f.FormatNumber(1234.5, 2)     // "1.234,50"
//	f.FormatPercentage(7.5, 2)    // "7,50%"
//
// Package-level FormatCurrency, FormatPercentage, and FormatNumber use a
// shared en-US/USD formatter for callers that do not need locale control.
//
// Non-finite input (NaN or ±Inf, the float64 spelling of a missing value)
// is rendered as 0 rather than leaking "NaN" into widget output.
//
// Defaults can also come from the environment (CALCKIT_LOCALE,
// CALCKIT_CURRENCY, CALCKIT_DECIMALS) via LoadConfig and NewFromConfig.
package format
