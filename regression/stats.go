package regression

import (
	"math"

	"github.com/arloliu/rzero/internal/pool"
)

// Evaluate computes R² and RMSE of an estimator against observed values at
// days 0..len(observed)-1.
func Evaluate(est Estimator, observed []float64) (r2, rmse float64) {
	predicted, release := pool.GetFloat64Slice(len(observed))
	defer release()

	for i := range observed {
		predicted[i] = est.Estimate(float64(i))
	}

	return calculateRSquared(observed, predicted), calculateRMSE(observed, predicted)
}

// calculateRSquared calculates the coefficient of determination.
//
// Formula: R² = 1 - (SS_res / SS_tot). Returns 0 when observed is flat.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if isFlat(ssTot, mean, len(observed)) {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// isFlat reports whether ssTot is no larger than the rounding noise of n
// copies of mean. ln(10) repeated 14 times leaves ssTot near 1e-30, not 0.
func isFlat(ssTot, mean float64, n int) bool {
	return ssTot <= eps*float64(n)*max(1, mean*mean)
}

// calculateRMSE calculates the root mean square error.
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
