package costmodel

import "errors"

// ErrInvalidBicycleType is returned by ParseBicycleType for a bike_type
// outside the known [Road..Mountain] range.
var ErrInvalidBicycleType = errors.New("costmodel: invalid bicycle type")
