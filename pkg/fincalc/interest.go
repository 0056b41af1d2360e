package fincalc

import "math"

// Compound returns the future value of principal compounded at the given
// annual rate, compounded periods times per year over the given number of
// years: principal * (1 + rate/periods)^(periods*years).
// Returns 0 when periods is 0.
func Compound(principal, rate, periods, years float64) float64 {
	if periods == 0 {
		return 0
	}
	return principal * math.Pow(1+rate/periods, periods*years)
}

// PresentValue discounts a future value back over the given number of
// periods at the given per-period rate: futureValue / (1+rate)^periods.
// Returns 0 when the discount factor degenerates to 0 (rate of -100%).
func PresentValue(futureValue, rate, periods float64) float64 {
	factor := math.Pow(1+rate, periods)
	if factor == 0 {
		return 0
	}
	return futureValue / factor
}
