package lighting

import (
	gomath "math"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/tilted-globe/pkg/ellipsoid"
	"github.com/Faultbox/tilted-globe/pkg/math"
)

// March equinox 2024 was at 03:06 UTC on the 20th.
var equinoxNoon = time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

func TestSubsolarPointEquinox(t *testing.T) {
	lat, lon := SubsolarPoint(equinoxNoon)
	if !scalar.EqualWithinAbs(lat, 0, 0.5) {
		t.Errorf("subsolar latitude = %v, want ~0", lat)
	}
	// The equation of time is under 8 minutes in March: 2 degrees.
	if !scalar.EqualWithinAbs(lon, 0, 2.5) {
		t.Errorf("subsolar longitude = %v, want ~0", lon)
	}
}

func TestSubsolarPointSolstice(t *testing.T) {
	lat, _ := SubsolarPoint(time.Date(2024, time.June, 20, 21, 0, 0, 0, time.UTC))
	if !scalar.EqualWithinAbs(lat, ellipsoid.AxialTiltDegrees, 0.05) {
		t.Errorf("solstice subsolar latitude = %v, want ~%v", lat, ellipsoid.AxialTiltDegrees)
	}
}

func TestHourAngleAdvances(t *testing.T) {
	a := HourAngle(equinoxNoon)
	b := HourAngle(equinoxNoon.Add(time.Hour))
	// The sun moves about 15 degrees west per hour.
	step := math.RadToDeg(wrapAngle(b - a))
	if !scalar.EqualWithinAbs(step, 15, 0.1) {
		t.Errorf("hour angle step = %v degrees, want ~15", step)
	}
	if a < -gomath.Pi || a >= gomath.Pi {
		t.Errorf("HourAngle = %v out of range", a)
	}
}

func TestHourAnglePutsSunOnX(t *testing.T) {
	ts := time.Date(2025, time.October, 3, 17, 45, 0, 0, time.UTC)
	_, lon := SubsolarPoint(ts)

	// The subsolar meridian shifted by the hour angle lands on longitude 0.
	shifted := wrapAngle(math.DegToRad(lon) + HourAngle(ts))
	if !scalar.EqualWithinAbs(shifted, 0, 1e-9) {
		t.Errorf("shifted subsolar longitude = %v, want 0", shifted)
	}
}

func TestSunDirectionUnit(t *testing.T) {
	d := SunDirection(equinoxNoon)
	if !scalar.EqualWithinAbs(d.Length(), 1, 1e-12) {
		t.Errorf("SunDirection length = %v", d.Length())
	}
	if d.X < 0.99 {
		t.Errorf("equinox noon sun = %v, want near +X", d)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{gomath.Pi, -gomath.Pi},
		{-gomath.Pi, -gomath.Pi},
		{3 * gomath.Pi / 2, -gomath.Pi / 2},
		{-5 * gomath.Pi / 2, -gomath.Pi / 2},
	}
	for _, tt := range tests {
		if got := wrapAngle(tt.in); !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
			t.Errorf("wrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
