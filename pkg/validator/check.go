package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bound is a convenience for building optional min/max arguments inline.
func Bound(v float64) *float64 { return &v }

// ParseNumber parses raw widget input as a float64, ignoring surrounding
// whitespace. Tokens that parse to NaN or ±Inf are rejected so downstream
// arithmetic never sees non-finite input.
func ParseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// CheckRequired fails with ErrRequired when the value is empty or blank.
// Any other value passes through untouched.
func CheckRequired(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrRequired
	}
	return nil
}

// CheckNumber parses raw as a number and enforces optional bounds; nil means
// unbounded on that side. Range failures wrap ErrOutOfRange with a message
// naming the violated bound.
func CheckNumber(raw string, min, max *float64) (float64, error) {
	v, err := ParseNumber(raw)
	if err != nil {
		return 0, err
	}
	if min != nil && v < *min {
		return 0, fmt.Errorf("%w: must be at least %v", ErrOutOfRange, *min)
	}
	if max != nil && v > *max {
		return 0, fmt.Errorf("%w: must be at most %v", ErrOutOfRange, *max)
	}
	return v, nil
}

// CheckPercentage is CheckNumber with the implicit bounds [0, 100].
func CheckPercentage(raw string) (float64, error) {
	return CheckNumber(raw, Bound(0), Bound(100))
}
