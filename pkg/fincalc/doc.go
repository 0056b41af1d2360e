// Package fincalc provides elementary closed-form financial math for
// calculator widgets: compound interest, discounting, annuity valuation,
// amortized loan payments, common business ratios, and day arithmetic.
//
// Every function is a pure computation over float64 inputs with no shared
// state, which makes the package allocation-free and goroutine-safe. The
// package deliberately trades generality for predictability: every
// division-by-zero edge case is special-cased to return 0 instead of
// propagating Inf or NaN into widget display code.
//
// # Usage
//
//	payment := fincalc.MonthlyPayment(200_000, 0.005, 360)
//	growth := fincalc.CAGR(10_000, 25_000, 5)
//	due := fincalc.AddDays(start, 30)
//
// Rates are plain fractions (0.05 for 5%) except where a function documents
// otherwise; returned percentages are on the 0-100 scale widgets display.
//
// Date helpers do not validate their inputs. A zero time.Time flows through
// the arithmetic as-is, so callers should validate dates before calling.
package fincalc
