package regression

import "math"

// Estimator evaluates a fitted growth curve at a day offset within a window.
type Estimator interface {
	// Estimate returns the curve value at day.
	Estimate(day float64) float64
}

// ExponentialEstimator evaluates v = a * e^(b * day), the fitted curve in
// case-rate space.
type ExponentialEstimator struct {
	a, b float64
}

var _ Estimator = (*ExponentialEstimator)(nil)

// NewExponentialEstimator creates an estimator for a * e^(b * day).
func NewExponentialEstimator(a, b float64) *ExponentialEstimator {
	return &ExponentialEstimator{a: a, b: b}
}

// Estimate calculates a * e^(b * day).
func (e *ExponentialEstimator) Estimate(day float64) float64 {
	return e.a * math.Exp(e.b*day)
}

// LogLinearEstimator evaluates ln v = ln(a) + b * day, the fitted line in
// log space that R² and RMSE are measured against.
type LogLinearEstimator struct {
	lnA, b float64
}

var _ Estimator = (*LogLinearEstimator)(nil)

// NewLogLinearEstimator creates an estimator for ln(a) + b * day.
func NewLogLinearEstimator(lnA, b float64) *LogLinearEstimator {
	return &LogLinearEstimator{lnA: lnA, b: b}
}

// Estimate calculates ln(a) + b * day.
func (l *LogLinearEstimator) Estimate(day float64) float64 {
	return l.lnA + l.b*day
}
