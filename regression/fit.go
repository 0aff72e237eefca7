package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/internal/options"
	"github.com/arloliu/rzero/internal/pool"
)

// FitWindow fits ln(values) = b*day + ln(a) for day = 0..len(values)-1 and
// derives R0 = e^(b * serialInterval).
//
// Returns:
//   - errs.ErrInvalidWindow when fewer than two values are given
//   - errs.ErrInvalidSerialInterval when serialInterval is not positive and finite
//   - *errs.DomainError when a value is zero, negative, NaN or infinite
func FitWindow(values []float64, serialInterval float64, opts ...FitOption) (Fit, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Fit{}, err
	}

	n := len(values)
	if n < 2 {
		return Fit{}, fmt.Errorf("%w: got %d values", errs.ErrInvalidWindow, n)
	}
	if serialInterval <= 0 || math.IsInf(serialInterval, 0) || math.IsNaN(serialInterval) {
		return Fit{}, fmt.Errorf("%w: got %v", errs.ErrInvalidSerialInterval, serialInterval)
	}

	y, releaseY := pool.GetFloat64Slice(n)
	defer releaseY()

	for i, v := range values {
		if !(v > 0) || math.IsInf(v, 1) {
			return Fit{}, &errs.DomainError{Offset: i, Value: v}
		}
		y[i] = math.Log(v)
	}

	slope, intercept, err := solveLine(y, cfg.RCond)
	if err != nil {
		return Fit{}, err
	}

	r2, rmse := Evaluate(NewLogLinearEstimator(intercept, slope), y)

	return Fit{
		Slope:     slope,
		Intercept: intercept,
		R0:        math.Exp(slope * serialInterval),
		RSquared:  r2,
		RMSE:      rmse,
	}, nil
}

// solveLine returns the minimum-norm least-squares [b, c] for y ≈ b*day + c.
func solveLine(y []float64, rcond float64) (slope, intercept float64, err error) {
	n := len(y)

	data, releaseX := pool.GetFloat64Slice(2 * n)
	defer releaseX()
	for i := range n {
		data[2*i] = float64(i)
		data[2*i+1] = 1
	}
	x := mat.NewDense(n, 2, data)

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return 0, 0, fmt.Errorf("svd factorization failed for %d-day window", n)
	}

	if rcond < 0 {
		rcond = eps * float64(max(n, 2))
	}
	rank := svd.Rank(rcond)
	if rank == 0 {
		return 0, 0, fmt.Errorf("design matrix for %d-day window has rank 0", n)
	}

	var beta mat.VecDense
	svd.SolveVecTo(&beta, mat.NewVecDense(n, y), rank)

	return beta.AtVec(0), beta.AtVec(1), nil
}

// eps is the float64 machine epsilon.
const eps = 0x1p-52
