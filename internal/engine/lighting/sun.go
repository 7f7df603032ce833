// Package lighting locates the sun relative to the globe.
package lighting

import (
	gomath "math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/Faultbox/tilted-globe/pkg/math"
)

// HourAngle returns the Greenwich hour angle of the sun at t, in radians in
// [-π, π).
//
// Passed as the longitude offset of a vertex row, it turns the globe so the
// subsolar meridian lies on +X. Later times give larger angles, so the sun
// sets in the west.
func HourAngle(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	ra, _ := solar.ApparentEquatorial(jd)
	gst := sidereal.Apparent(jd)
	return wrapAngle(gst.Angle().Rad() - ra.Rad())
}

// SubsolarPoint returns the latitude and longitude, in degrees, where the sun
// is directly overhead at t. Longitude is in [-180, 180).
func SubsolarPoint(t time.Time) (lat, lon float64) {
	jd := julian.TimeToJD(t.UTC())
	_, dec := solar.ApparentEquatorial(jd)
	return dec.Deg(), math.RadToDeg(wrapAngle(-HourAngle(t)))
}

// SunDirection returns the unit vector toward the sun in the Earth-fixed
// frame: +X through longitude 0 on the equator, +Z through the north pole.
func SunDirection(t time.Time) math.Vec3 {
	lat, lon := SubsolarPoint(t)
	sinLat, cosLat := gomath.Sincos(math.DegToRad(lat))
	sinLon, cosLon := gomath.Sincos(math.DegToRad(lon))
	return math.Vec3{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat}
}

// wrapAngle maps a to [-π, π).
func wrapAngle(a float64) float64 {
	a = gomath.Mod(a+gomath.Pi, 2*gomath.Pi)
	if a < 0 {
		a += 2 * gomath.Pi
	}
	return a - gomath.Pi
}
