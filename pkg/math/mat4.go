package math

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4x4 column-major matrix, as consumed by OpenGL-style hosts.
type Mat4 = mgl64.Mat4

// MGL converts v to an mgl64 vector.
func (v Vec3) MGL() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMGL converts an mgl64 vector.
func FromMGL(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// MGL converts q to an mgl64 quaternion.
func (q Quat) MGL() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// Mat4 converts the rotation to a 4x4 matrix.
func (q Quat) Mat4() Mat4 {
	return q.Normalize().MGL().Mat4()
}

// Mat4 converts the rotation to a 4x4 matrix.
func (r Rotation) Mat4() Mat4 {
	return r.Q.Mat4()
}

// LookAt returns a view matrix looking from eye to center with up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	return mgl64.LookAtV(eye.MGL(), center.MGL(), up.MGL())
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	return mgl64.Perspective(fovY, aspect, near, far)
}

// TransformPoint transforms a point by m (w = 1).
func TransformPoint(m Mat4, p Vec3) Vec3 {
	return FromMGL(mgl64.TransformCoordinate(p.MGL(), m))
}

// TransformDirection transforms a direction by m, ignoring translation.
func TransformDirection(m Mat4, d Vec3) Vec3 {
	return FromMGL(mgl64.TransformNormal(d.MGL(), m))
}
