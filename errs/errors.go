// Package errs defines the error values shared by all rzero packages.
//
// Callers classify failures with errors.Is against the sentinels below, or
// errors.As against *DateRangeError and *DomainError when they need the
// structured fields.
package errs

import "errors"

// Input date errors.
var (
	// ErrDateFormat is returned when a date string does not match the expected layout.
	ErrDateFormat = errors.New("invalid date format")
	// ErrDateOrder is returned when a requested start date is not strictly before the end date.
	ErrDateOrder = errors.New("end date must be later than start date")
	// ErrDateRange is returned when the resolved range is not covered by the data.
	ErrDateRange = errors.New("selected dates are not covered by data")
	// ErrInsufficientData is returned when fewer than window days remain after restriction.
	ErrInsufficientData = errors.New("insufficient data for window")
)

// Fitting errors.
var (
	// ErrDomain is returned when a window contains a value whose logarithm is undefined.
	ErrDomain = errors.New("case rate must be positive")
	// ErrInvalidWindow is returned when the window length cannot support a linear fit.
	ErrInvalidWindow = errors.New("window must be at least 2 days")
	// ErrWindowOutOfRange is returned when a window would read past the end of a column.
	ErrWindowOutOfRange = errors.New("window out of range")
	// ErrInvalidSerialInterval is returned when the serial interval is not a positive finite number.
	ErrInvalidSerialInterval = errors.New("serial interval must be positive")
)

// Series and configuration errors.
var (
	ErrInvalidConfig      = errors.New("invalid config")
	ErrUnknownSubregion   = errors.New("unknown subregion")
	ErrDuplicateSubregion = errors.New("duplicate subregion")
	ErrInvalidSubregion   = errors.New("subregion name cannot be empty")
	ErrEmptySeries        = errors.New("no data rows found")
	ErrNonContiguous      = errors.New("dates must be contiguous and strictly increasing by one day")
	ErrMissingDateColumn  = errors.New("date column not found")
)

// I/O errors.
var (
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrUnsupportedFormat      = errors.New("unsupported output format")
)
