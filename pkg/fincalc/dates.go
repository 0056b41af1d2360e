package fincalc

import (
	"math"
	"time"
)

// DaysBetween returns the absolute number of days between two instants,
// rounded to the nearest whole day. Order of arguments does not matter.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(math.Abs(b.Sub(a).Hours() / 24)))
}

// AddDays returns the date offset by the given number of days, which may be
// negative. Normalization follows time.Time.AddDate, so offsets crossing
// month boundaries roll over naturally.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
