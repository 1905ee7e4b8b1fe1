// Package errs defines the sentinel errors returned by the binning engine.
//
// Callers should compare with errors.Is, since most errors are wrapped with
// additional context such as the offending axis or bin index.
package errs

import "errors"

// Axis construction errors.
var (
	ErrInvalidBinCount   = errors.New("invalid number of bins")
	ErrInvalidRange      = errors.New("invalid axis range")
	ErrInvalidBoundaries = errors.New("invalid axis boundaries")
	ErrUnknownAxisKind   = errors.New("unknown axis kind")
)

// Layout and histogram construction errors.
var (
	ErrNoAxes        = errors.New("histogram requires at least one axis")
	ErrTooManyBins   = errors.New("total number of bins overflows int")
	ErrInvalidConfig = errors.New("invalid histogram configuration")
)

// Query errors.
var (
	ErrDimensionMismatch    = errors.New("coordinate dimension does not match number of axes")
	ErrInvalidBinIndex      = errors.New("invalid global bin index")
	ErrInvalidLocalBin      = errors.New("invalid local bin index")
	ErrInvalidSlot          = errors.New("invalid content slot")
	ErrCoordinateOutOfRange = errors.New("coordinate outside growable axis partition")
	ErrNaNCoordinate        = errors.New("coordinate is NaN")
)

// Internal consistency errors.
var (
	ErrFingerprintCollision = errors.New("layout fingerprint collision")
)
