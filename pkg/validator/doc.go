// Package validator provides stateless validation primitives for raw
// calculator widget input: required checks, numeric parsing with optional
// bounds, and percentage checks, plus a small rule engine for aggregating
// several field checks into a single error value.
//
// Two call styles are supported. The Check* functions validate one value and
// return the outcome directly, which is what the widget core uses per field:
//
//	v, err := validator.CheckNumber(raw, bounds...)
//
// The Rule constructors wrap the same checks with field metadata so several
// fields can be validated declaratively in one pass:
//
//	err := validator.Apply(
//	    validator.RequiredInput("name", name),
//	    validator.NumberInput("amount", amount, validator.Bound(0), nil),
//	    validator.PercentageInput("rate", rate),
//	)
//
// Apply aggregates failures into a ValidationErrors slice that implements
// the error interface; Has, Get, and Fields inspect individual fields.
//
// Every failure is an ordinary returned value. Nothing in this package
// panics or treats bad input as fatal, and no function keeps state, so the
// whole package is goroutine-safe.
package validator
