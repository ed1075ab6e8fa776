package pick

import "errors"

// Errors returned by strategy constructors and the Picker.
var (
	ErrInvalidWindow    = errors.New("pick: invalid window")
	ErrInvalidThreshold = errors.New("pick: invalid threshold")
	ErrNilStrategy      = errors.New("pick: nil strategy")
	ErrMissingGeometry  = errors.New("pick: strategy requires geometry")
)
