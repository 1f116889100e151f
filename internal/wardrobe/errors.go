package wardrobe

import "errors"

var (
	// ErrIndexOutOfRange is returned when a series is shorter than the averaging window.
	ErrIndexOutOfRange = errors.New("series index out of range")

	// ErrMissingValue is returned when the provider had no value (NaN) for an
	// hour inside the averaging window, or for every UV entry.
	ErrMissingValue = errors.New("missing value")

	// ErrUnhandledBand is returned when an input falls into a gap of a band table
	// and the engine is configured with GapPolicyError.
	ErrUnhandledBand = errors.New("input falls into an unhandled band")

	// ErrInvalidWindow is returned for window bounds outside 0 <= start < end <= 24.
	ErrInvalidWindow = errors.New("invalid averaging window")
)
