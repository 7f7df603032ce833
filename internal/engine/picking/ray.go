// Package picking casts rays from the camera onto the globe.
package picking

import (
	gomath "math"

	"github.com/Faultbox/tilted-globe/pkg/ellipsoid"
	"github.com/Faultbox/tilted-globe/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// Hit is a ray intersection with the globe surface.
type Hit struct {
	Distance  float64
	Point     math.Vec3 // World space, tilted if the globe is
	Latitude  float64   // Geodetic, degrees
	Longitude float64   // Degrees in [-180, 180)
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// viewProj is the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float64, viewProj math.Mat4) Ray {
	// Normalized device coords (-1 to 1), Y flipped
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH

	// The far plane sits too far away for a precise unprojection, so the
	// second point is taken at NDC depth 0.
	inv := viewProj.Inv()
	nearWorld := math.TransformPoint(inv, math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	midWorld := math.TransformPoint(inv, math.Vec3{X: ndcX, Y: ndcY, Z: 0})

	return Ray{Origin: nearWorld, Direction: midWorld.Sub(nearWorld).Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectEllipsoid intersects the ray with an ellipsoid centered at the
// origin. When tilted is set the ellipsoid carries the axial tilt. The
// longitude of the hit is reported before longitudeOffset was applied, so it
// is a true Earth longitude.
func (r Ray) IntersectEllipsoid(e ellipsoid.Ellipsoid, tilted bool, longitudeOffset float64) (Hit, bool) {
	origin, dir := r.Origin, r.Direction
	if tilted {
		tilt := ellipsoid.EarthTilt()
		origin = tilt.Undo(origin)
		dir = tilt.Undo(dir)
	}

	// Scale to the unit sphere.
	scale := math.Vec3{X: 1 / e.RadiusMajor, Y: 1 / e.RadiusMajor, Z: 1 / e.RadiusMinor}
	o := mulComponents(origin, scale)
	d := mulComponents(dir, scale)

	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) - 1
	disc := b*b - 4*a*c
	if a == 0 || disc < 0 {
		return Hit{}, false
	}

	sq := gomath.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		// Origin inside the ellipsoid: take the exit point.
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return Hit{}, false
	}

	local := origin.Add(dir.Scale(t))
	lat, lon := surfaceLatLon(local, e)
	lon = wrapDegrees(lon - math.RadToDeg(longitudeOffset))

	return Hit{
		Distance:  t,
		Point:     r.At(t),
		Latitude:  lat,
		Longitude: lon,
	}, true
}

// surfaceLatLon returns the geodetic latitude and longitude of a point on the
// untilted ellipsoid, from the gradient of its implicit surface.
func surfaceLatLon(p math.Vec3, e ellipsoid.Ellipsoid) (lat, lon float64) {
	a2 := e.RadiusMajor * e.RadiusMajor
	b2 := e.RadiusMinor * e.RadiusMinor
	n := math.Vec3{X: p.X / a2, Y: p.Y / a2, Z: p.Z / b2}
	lat = math.RadToDeg(gomath.Atan2(n.Z, gomath.Hypot(n.X, n.Y)))
	lon = math.RadToDeg(gomath.Atan2(p.Y, p.X))
	return lat, lon
}

func mulComponents(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func wrapDegrees(d float64) float64 {
	d = gomath.Mod(d+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// IntersectBounds tests ray intersection with an axis-aligned box.
// Returns the distance to intersection and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectBounds(min, max math.Vec3) (t float64, hit bool) {
	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{min.X, min.Y, min.Z}
	hi := [3]float64{max.X, max.Y, max.Z}

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = gomath.Max(tmin, t1)
		tmax = gomath.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
