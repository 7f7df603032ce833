// Package globe builds the latitude rings of a whole tilted globe.
package globe

import (
	"github.com/Faultbox/tilted-globe/pkg/ellipsoid"
	"github.com/Faultbox/tilted-globe/pkg/math"
)

// Vertex is a globe vertex ready for upload to the host renderer.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Band is one latitude band of the globe.
type Band struct {
	Latitude         float64 // Nominal latitude, degrees
	GeodeticLatitude float64 // Degrees, before tilt
	Ring             *ellipsoid.Ring
}

// Model holds every band of the globe, south to north.
type Model struct {
	Bands  []Band
	Bounds Bounds
}

// Bounds holds the axis-aligned bounding box of the globe.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Options controls how the globe is built.
type Options struct {
	Ellipsoid       ellipsoid.Ellipsoid
	RingSize        int     // Vertices per ring, including the duplicated seam vertex
	LatitudeStep    float64 // Degrees between bands; must divide 180
	LongitudeOffset float64 // Radians, e.g. lighting.HourAngle
	Tilt            bool    // Apply the axial tilt to every ring
}

// DefaultOptions returns options for a WGS84 globe with one-degree bands.
func DefaultOptions() Options {
	return Options{
		Ellipsoid:    ellipsoid.WGS84,
		RingSize:     361,
		LatitudeStep: 1,
		Tilt:         true,
	}
}
