package fincalc

import "math"

// FutureValueAnnuity returns the future value of an ordinary annuity paying
// the given amount each period at the given per-period rate:
// payment * ((1+rate)^periods - 1) / rate.
// A zero rate degenerates to payment * periods.
func FutureValueAnnuity(payment, rate, periods float64) float64 {
	if rate == 0 {
		return payment * periods
	}
	return payment * (math.Pow(1+rate, periods) - 1) / rate
}

// PresentValueAnnuity returns the present value of an ordinary annuity:
// payment * (1 - (1+rate)^-periods) / rate.
// A zero rate degenerates to payment * periods.
func PresentValueAnnuity(payment, rate, periods float64) float64 {
	if rate == 0 {
		return payment * periods
	}
	return payment * (1 - math.Pow(1+rate, -periods)) / rate
}

// MonthlyPayment returns the fixed payment that amortizes principal over the
// given number of periods at the given per-period rate:
// principal * rate / (1 - (1+rate)^-periods).
// A zero rate degenerates to principal / periods; zero periods returns 0.
func MonthlyPayment(principal, rate, periods float64) float64 {
	if periods == 0 {
		return 0
	}
	if rate == 0 {
		return principal / periods
	}
	return principal * rate / (1 - math.Pow(1+rate, -periods))
}
