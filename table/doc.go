// Package table serializes an estimate.Table.
//
// Three layouts are supported:
//
//	csv          ,date,<subregion>...   one row per date, leading row index
//	json         [{"date": ..., "values": {<subregion>: r0, ...}}, ...]
//	diagnostics  date,subregion,slope,intercept,r0,r_squared,rmse
//
// Save renders into memory, compresses by file extension and moves the
// result into place, so a failed write never leaves a partial output file.
package table
