package seismic

import "errors"

// Errors returned by record, geometry and loader functions.
var (
	ErrMalformedRecord   = errors.New("seismic: malformed record")
	ErrMalformedGeometry = errors.New("seismic: malformed geometry")
	ErrGeometryMismatch  = errors.New("seismic: geometry does not match record")
	ErrNoValidPick       = errors.New("seismic: no valid pick")
)
