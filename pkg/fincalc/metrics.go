package fincalc

import "math"

// PercentageChange returns the relative change from oldValue to newValue on
// the 0-100 scale: (new-old)/old*100. A zero oldValue is special-cased:
// 100 when newValue is positive, 0 otherwise.
func PercentageChange(oldValue, newValue float64) float64 {
	if oldValue == 0 {
		if newValue > 0 {
			return 100
		}
		return 0
	}
	return (newValue - oldValue) / oldValue * 100
}

// Ratio returns numerator/denominator, or 0 when denominator is 0.
func Ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// ROI returns return on investment as a percentage: (gain-cost)/cost*100.
// Returns 0 when cost is 0.
func ROI(gain, cost float64) float64 {
	if cost == 0 {
		return 0
	}
	return (gain - cost) / cost * 100
}

// CAGR returns the compound annual growth rate as a percentage for a value
// growing from begin to end over the given number of years:
// ((end/begin)^(1/years) - 1) * 100.
// Returns 0 when begin or years is 0.
func CAGR(begin, end, years float64) float64 {
	if begin == 0 || years == 0 {
		return 0
	}
	return (math.Pow(end/begin, 1/years) - 1) * 100
}

// Margin returns profit margin as a percentage of revenue:
// (revenue-cost)/revenue*100. Returns 0 when revenue is 0.
func Margin(revenue, cost float64) float64 {
	if revenue == 0 {
		return 0
	}
	return (revenue - cost) / revenue * 100
}

// Markup returns markup as a percentage of cost: (price-cost)/cost*100.
// Returns 0 when cost is 0.
func Markup(cost, price float64) float64 {
	if cost == 0 {
		return 0
	}
	return (price - cost) / cost * 100
}
