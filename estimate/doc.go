// Package estimate slides the R0 window across a case-rate series.
//
// For a series of n days and a window of w days, Run fits every offset
// t = 0..n-w for every requested subregion and returns a Table of n-w+1 rows.
// Row t is dated on the last day of its window, t+w-1. Columns keep the
// order the subregions were given in.
//
// Values are rounded once, after every fit has succeeded. Any failed fit
// aborts the run and no table is returned.
//
// Fits are independent, so Run can spread offsets over several goroutines
// with WithWorkers; the table is identical for any worker count.
package estimate
