package ellipsoid

import (
	"github.com/Faultbox/tilted-globe/pkg/math"
)

// AxialTiltDegrees is the inclination of Earth's rotational axis to its
// orbital plane.
const AxialTiltDegrees = 23.43689

// earthTilt rotates by -AxialTiltDegrees about the X axis. Built once.
var earthTilt = mustRotation(math.UnitX, math.DegToRad(-AxialTiltDegrees))

func mustRotation(axis math.Vec3, angle float64) math.Rotation {
	r, err := math.NewRotation(axis, angle)
	if err != nil {
		panic(err)
	}
	return r
}

// EarthTilt returns the axial tilt rotation and its inverse.
func EarthTilt() math.Rotation {
	return earthTilt
}

// TiltArray replaces every element of vs with its image under the axial tilt.
func TiltArray(vs []math.Vec3) {
	for i, v := range vs {
		vs[i] = math.RotateVec3(earthTilt.Q, earthTilt.Inverse, v)
	}
}

// ApplyTilt rotates positions, then normals, by the axial tilt in place.
// The stored geodetic latitude is not rotated.
func (r *Ring) ApplyTilt() {
	TiltArray(r.positions)
	TiltArray(r.normals)
}
