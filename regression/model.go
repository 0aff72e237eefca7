package regression

import (
	"fmt"
	"math"
)

// Fit is the outcome of one log-linear window fit.
type Fit struct {
	// Slope is the daily growth rate b in ln v = b*day + ln(a).
	Slope float64
	// Intercept is ln(a), the fitted log rate on the window's first day.
	Intercept float64
	// R0 is e^(Slope * serialInterval).
	R0 float64
	// RSquared is the coefficient of determination in log space.
	RSquared float64
	// RMSE is the root mean square residual in log space.
	RMSE float64
}

// String returns a string representation of the fit.
func (f Fit) String() string {
	return fmt.Sprintf("Fit{R0: %.4f, Slope: %.6f, Intercept: %.6f, R²: %.4f, RMSE: %.4f}",
		f.R0, f.Slope, f.Intercept, f.RSquared, f.RMSE)
}

// DoublingTime returns ln(2)/Slope in days. It is negative for a declining
// window (halving time) and +Inf for a flat one.
func (f Fit) DoublingTime() float64 {
	if f.Slope == 0 {
		return math.Inf(1)
	}

	return math.Ln2 / f.Slope
}

// Estimator returns the fitted curve in case-rate space.
func (f Fit) Estimator() *ExponentialEstimator {
	return NewExponentialEstimator(math.Exp(f.Intercept), f.Slope)
}
