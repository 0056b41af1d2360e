// Package calckit provides the shared state and helpers that calculator
// widgets compose: per-field validation with error accumulation, localized
// formatting pass-throughs, and YAML-declared rule schemas.
//
// Widgets hold a Core by pointer (or embed it) and feed it raw input:
//
//	type LoanWidget struct {
//	    *calckit.Core
//	    principal string
//	    rate      string
//	}
//
//	w := LoanWidget{Core: calckit.New()}
//	res := w.ValidateField("principal", w.principal, calckit.Rules{
//	    Type: calckit.TypeNumber,
//	    Min:  calckit.Bound(0),
//	})
//	if w.IsValid() {
//	    payment := fincalc.MonthlyPayment(res.Value, 0.005, 360)
//	    display(w.FormatCurrency(payment))
//	}
//
// Validation failures are ordinary data. ValidateField records a message in
// the widget's error map and returns it; it never panics or returns a Go
// error. Overall validity is always derived from the error map being empty,
// never stored separately.
//
// Rule sets for a whole widget can be declared in YAML and applied in one
// pass with LoadSchema and ValidateAll.
//
// The heavy lifting lives in the subpackages: pkg/validator for the input
// checks, pkg/format for locale-aware rendering, pkg/fincalc for the
// financial formulas widgets compute with.
package calckit
