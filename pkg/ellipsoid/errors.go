package ellipsoid

import (
	"errors"

	"github.com/Faultbox/tilted-globe/pkg/math"
)

// Error kinds. Returned errors wrap one of these; test with errors.Is.
var (
	// ErrInvalidArgument reports bad radii, a near-pole latitude passed to the
	// general normal rule, a NaN latitude, a zero rotation axis
	// (math.ErrZeroAxis) or an out-of-range index.
	ErrInvalidArgument = math.ErrInvalidArgument

	// ErrGeometryInvariant reports that the finite-difference ordering or sign
	// assumptions did not hold for the requested latitude.
	ErrGeometryInvariant = errors.New("geometry invariant violation")
)
