// Package regression fits the log-linear growth model behind each R0 estimate.
//
// For a window of daily case rates v[0..n-1] the model is exponential growth
//
//	v(day) = a * e^(b * day)
//
// which is linear after taking logarithms:
//
//	ln v(day) = b*day + ln(a)
//
// FitWindow solves this least-squares problem with a singular value
// decomposition (gonum.org/v1/gonum/mat), discarding singular values below
// eps*max(rows, cols) of the largest one, and converts the slope to
//
//	R0 = e^(b * serialInterval)
//
// # Usage
//
//	fit, err := regression.FitWindow(rates[t:t+14], 5.2)
//	if err != nil {
//	    return err // errs.ErrDomain for a non-positive rate
//	}
//	fmt.Printf("R0=%.3f (R²=%.4f)\n", fit.R0, fit.RSquared)
//
// A Fitter binds one subregion column so windows can be requested by offset:
//
//	f := regression.NewFitter("Timur Laut", rates, labels, 5.2)
//	for t := range f.Windows(14) {
//	    fit, err := f.At(t, 14)
//	    ...
//	}
//
// # Precision
//
// Nothing in this package rounds. Rounding for presentation belongs to the caller.
//
// # Thread Safety
//
// FitWindow and Fitter.At keep no shared state beyond pooled scratch buffers
// and may be called concurrently.
package regression
