package ellipsoid

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/tilted-globe/pkg/math"
)

// LatitudeDelta is the step, in radians, used to differentiate the ellipsoid
// along a meridian.
const LatitudeDelta = 1e-7

// The thresholds below belong to LatitudeDelta. Closer to a pole or to the
// equator the finite difference is too unstable to use.
const (
	// SetupLatitude copies nominal to geodetic beyond this (degrees).
	poleLimit = 89.9999
	// SetupLatitude copies nominal to geodetic inside ±equatorLimit.
	equatorLimit = 0.0001
	// NormalAt rejects latitudes beyond this; pole rows take the degenerate path.
	normalPoleLimit = 89.999
	// NormalAt uses the radial direction inside ±normalEquatorLimit.
	normalEquatorLimit = 0.00001
)

// straightUp points through the north pole.
var straightUp = math.UnitZ

// Ring is one parallel of latitude on an ellipsoid: a fixed number of
// positions and matching outward surface normals.
//
// SetupLatitude must be called before MakeVertexRow. A Ring is not safe for
// concurrent use.
type Ring struct {
	radiusMajor float64
	radiusMinor float64

	nominalLatitude  float64
	geodeticLatitude float64
	configured       bool

	cosLat      float64
	sinLat      float64
	cosLatDelta float64
	sinLatDelta float64

	positions []math.Vec3
	normals   []math.Vec3
}

// New creates a ring of n vertices. A ring with fewer than two vertices is a
// pole row.
func New(n int) (*Ring, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: ring size %d", ErrInvalidArgument, n)
	}
	return &Ring{
		positions: make([]math.Vec3, n),
		normals:   make([]math.Vec3, n),
	}, nil
}

// Size returns the number of vertices in the ring.
func (r *Ring) Size() int {
	return len(r.positions)
}

// SetupLatitude configures the ring for a nominal (parametric) latitude in
// degrees and derives the geodetic latitude.
func (r *Ring) SetupLatitude(nominalLatitude, radiusMinor, radiusMajor float64) error {
	if err := validateRadii(radiusMinor, radiusMajor); err != nil {
		return err
	}
	if gomath.IsNaN(nominalLatitude) {
		return fmt.Errorf("%w: latitude is NaN", ErrInvalidArgument)
	}

	r.configured = false
	r.nominalLatitude = nominalLatitude
	r.radiusMinor = radiusMinor
	r.radiusMajor = radiusMajor

	latRadians := math.DegToRad(nominalLatitude)
	r.sinLat, r.cosLat = gomath.Sincos(latRadians)
	r.sinLatDelta, r.cosLatDelta = gomath.Sincos(latRadians + LatitudeDelta)

	geodetic, err := r.deriveGeodetic()
	if err != nil {
		return err
	}
	r.geodeticLatitude = geodetic
	r.configured = true
	return nil
}

// deriveGeodetic measures the meridian tangent against the polar axis at
// longitude zero. The tangent's angle from vertical equals the angle of the
// surface normal above the equatorial plane.
func (r *Ring) deriveGeodetic() (float64, error) {
	lat := r.nominalLatitude
	if lat > poleLimit || lat < -poleLimit {
		return lat, nil
	}
	if lat > -equatorLimit && lat < equatorLimit {
		return lat, nil
	}

	position := r.pointAt(r.cosLat, r.sinLat, 1, 0)
	atDelta := r.pointAt(r.cosLatDelta, r.sinLatDelta, 1, 0)

	flat, err := meridianTangent(position, atDelta)
	if err != nil {
		return 0, fmt.Errorf("geodetic latitude at %v: %w", lat, err)
	}

	degrees := math.RadToDeg(gomath.Acos(straightUp.Dot(flat)))
	if lat >= 0 {
		return degrees, nil
	}
	return -degrees, nil
}

// pointAt evaluates the ellipsoid at the given latitude and longitude
// cosines and sines.
func (r *Ring) pointAt(cosLat, sinLat, cosLon, sinLon float64) math.Vec3 {
	return math.Vec3{
		X: r.radiusMajor * (cosLat * cosLon),
		Y: r.radiusMajor * (cosLat * sinLon),
		Z: r.radiusMinor * sinLat,
	}
}

// meridianTangent returns the normalized northward difference atDelta - position.
func meridianTangent(position, atDelta math.Vec3) (math.Vec3, error) {
	if position.Z > atDelta.Z {
		return math.Vec3{}, fmt.Errorf("%w: position z %v above delta z %v", ErrGeometryInvariant, position.Z, atDelta.Z)
	}
	flat := atDelta.Sub(position)
	if flat.Z < 0 {
		return math.Vec3{}, fmt.Errorf("%w: tangent z %v is negative", ErrGeometryInvariant, flat.Z)
	}
	flat = flat.Normalize()
	if flat.IsZero() {
		return math.Vec3{}, fmt.Errorf("%w: tangent vanished", ErrGeometryInvariant)
	}
	if dot := straightUp.Dot(flat); dot < 0 {
		return math.Vec3{}, fmt.Errorf("%w: tangent points away from the pole (dot %v)", ErrGeometryInvariant, dot)
	}
	return flat, nil
}

// MakeVertexRow fills the ring's positions and normals.
//
// Vertices run from longitude -180 to 180 degrees; the first and last
// coincide and are both stored. longitudeOffset, in radians, is added to
// every vertex longitude. On error the arrays may be partially written and
// must not be used.
func (r *Ring) MakeVertexRow(approxLatitude, longitudeOffset float64) error {
	if !r.configured {
		return fmt.Errorf("%w: latitude not set up", ErrInvalidArgument)
	}

	n := len(r.positions)
	if n < 2 {
		r.makePoleRow(approxLatitude)
		return nil
	}

	lonDelta := 360.0 / float64(n-1)
	for i := 0; i < n; i++ {
		lonRadians := math.DegToRad(-180.0+lonDelta*float64(i)) + longitudeOffset
		sinLon, cosLon := gomath.Sincos(lonRadians)

		position := r.pointAt(r.cosLat, r.sinLat, cosLon, sinLon)
		r.positions[i] = position

		normal, err := r.NormalAt(position, cosLon, sinLon, approxLatitude)
		if err != nil {
			return fmt.Errorf("vertex %d: %w", i, err)
		}
		r.normals[i] = normal
	}
	return nil
}

func (r *Ring) makePoleRow(approxLatitude float64) {
	if approxLatitude > 0 {
		r.positions[0] = math.Vec3{Z: r.radiusMinor}
		r.normals[0] = math.Vec3{Z: 1}
		return
	}
	r.positions[0] = math.Vec3{Z: -r.radiusMinor}
	r.normals[0] = math.Vec3{Z: -1}
}

// NormalAt returns the outward surface normal at position, a point of this
// ring at the longitude with the given cosine and sine.
//
// Latitudes within 0.001 degrees of a pole are rejected; pole rows are built
// by MakeVertexRow on a ring of size one.
func (r *Ring) NormalAt(position math.Vec3, cosLon, sinLon, approxLatitude float64) (math.Vec3, error) {
	if approxLatitude < -normalPoleLimit || approxLatitude > normalPoleLimit {
		return math.Vec3{}, fmt.Errorf("%w: latitude %v is at a pole", ErrInvalidArgument, approxLatitude)
	}

	if approxLatitude < normalEquatorLimit && approxLatitude > -normalEquatorLimit {
		return math.Vec3{X: position.X, Y: position.Y}.Normalize(), nil
	}

	atDelta := r.pointAt(r.cosLatDelta, r.sinLatDelta, cosLon, sinLon)
	flat, err := meridianTangent(position, atDelta)
	if err != nil {
		return math.Vec3{}, err
	}

	// Component of the polar axis perpendicular to the meridian tangent.
	perp := straightUp.Sub(flat.Scale(straightUp.Dot(flat))).Normalize()
	if position.Z < 0 {
		perp = perp.Negate()
	}
	return perp, nil
}

// GeodeticLatitude returns the geodetic latitude in degrees computed by the
// last SetupLatitude.
func (r *Ring) GeodeticLatitude() float64 {
	return r.geodeticLatitude
}

// NominalLatitude returns the parametric latitude passed to SetupLatitude.
func (r *Ring) NominalLatitude() float64 {
	return r.nominalLatitude
}

// Ellipsoid returns the radii passed to SetupLatitude.
func (r *Ring) Ellipsoid() Ellipsoid {
	return Ellipsoid{RadiusMajor: r.radiusMajor, RadiusMinor: r.radiusMinor}
}

// Position returns the position at index i.
func (r *Ring) Position(i int) (math.Vec3, error) {
	if i < 0 || i >= len(r.positions) {
		return math.Vec3{}, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, i, len(r.positions))
	}
	return r.positions[i], nil
}

// SurfaceNormal returns the surface normal at index i.
func (r *Ring) SurfaceNormal(i int) (math.Vec3, error) {
	if i < 0 || i >= len(r.normals) {
		return math.Vec3{}, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, i, len(r.normals))
	}
	return r.normals[i], nil
}

// Positions returns a copy of the positions.
func (r *Ring) Positions() []math.Vec3 {
	return append([]math.Vec3(nil), r.positions...)
}

// Normals returns a copy of the surface normals.
func (r *Ring) Normals() []math.Vec3 {
	return append([]math.Vec3(nil), r.normals...)
}
