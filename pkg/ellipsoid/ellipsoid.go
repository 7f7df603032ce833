// Package ellipsoid generates latitude rings of vertices and surface normals
// on an oblate spheroid and applies Earth's axial tilt to them.
package ellipsoid

import "fmt"

// Ellipsoid is a spheroid described by its equatorial (major) and polar
// (minor) semi-axes, in meters.
type Ellipsoid struct {
	RadiusMajor float64
	RadiusMinor float64
}

// WGS84 is the WGS 84 reference ellipsoid.
var WGS84 = Ellipsoid{
	RadiusMajor: 6378137.0,
	RadiusMinor: 6356752.314245,
}

// Sphere returns an ellipsoid with both semi-axes equal to r.
func Sphere(r float64) Ellipsoid {
	return Ellipsoid{RadiusMajor: r, RadiusMinor: r}
}

// Validate checks that both radii are positive.
func (e Ellipsoid) Validate() error {
	return validateRadii(e.RadiusMinor, e.RadiusMajor)
}

// Flattening returns (a - b) / a.
func (e Ellipsoid) Flattening() float64 {
	return (e.RadiusMajor - e.RadiusMinor) / e.RadiusMajor
}

func validateRadii(radiusMinor, radiusMajor float64) error {
	// Written as !(r > 0) so NaN is rejected too.
	if !(radiusMinor > 0) {
		return fmt.Errorf("%w: radius minor %v must be positive", ErrInvalidArgument, radiusMinor)
	}
	if !(radiusMajor > 0) {
		return fmt.Errorf("%w: radius major %v must be positive", ErrInvalidArgument, radiusMajor)
	}
	return nil
}
