package math

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is the kind shared by every bad-input error of the
	// geometry packages.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrZeroAxis is returned when a rotation is requested about the zero
	// vector. It is an ErrInvalidArgument.
	ErrZeroAxis = fmt.Errorf("%w: rotation axis is the zero vector", ErrInvalidArgument)
)

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
//
// A rotation quaternion is unit-norm. A vector quaternion wraps a Vec3 with W = 0.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// VectorQuat wraps v as a pure quaternion (W = 0).
func VectorQuat(v Vec3) Quat {
	return Quat{X: v.X, Y: v.Y, Z: v.Z, W: 0}
}

// FromAxisAngle creates a unit quaternion rotating by angle radians about axis.
// The axis does not need to be normalized but must not be the zero vector.
func FromAxisAngle(axis Vec3, angle float64) (Quat, error) {
	l := axis.Length()
	if l == 0 || math.IsNaN(l) {
		return Quat{}, ErrZeroAxis
	}
	s, c := math.Sincos(angle / 2)
	s /= l
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}, nil
}

// Vec3 returns the vector part.
func (q Quat) Vec3() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// NormSquared returns the squared norm.
func (q Quat) NormSquared() float64 {
	return q.Dot(q)
}

// Norm returns the norm.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.NormSquared())
}

// Normalize returns a normalized quaternion.
// A zero quaternion normalizes to the identity.
func (q Quat) Normalize() Quat {
	length := q.Norm()
	if length == 0 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Conjugate returns {-X, -Y, -Z, W}.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the conjugate divided by the squared norm.
// The division is done even for unit quaternions so rounding drift in the
// norm is absorbed. The zero quaternion has no inverse and yields zero.
func (q Quat) Inverse() Quat {
	n := q.NormSquared()
	if n == 0 {
		return Quat{}
	}
	return Quat{X: -q.X / n, Y: -q.Y / n, Z: -q.Z / n, W: q.W / n}
}

// Mul multiplies two quaternions (Hamilton product, q * other).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate returns q * point * qInverse.
// point must be a vector quaternion; the W of the result cancels and is
// forced to zero.
func Rotate(q, qInverse, point Quat) Quat {
	r := q.Mul(point).Mul(qInverse)
	r.W = 0
	return r
}

// RotateVec3 rotates v by the rotation q, qInverse.
func RotateVec3(q, qInverse Quat, v Vec3) Vec3 {
	return Rotate(q, qInverse, VectorQuat(v)).Vec3()
}

// Rotation is a rotation quaternion paired with its inverse.
type Rotation struct {
	Q       Quat
	Inverse Quat
}

// NewRotation builds the rotation by angle radians about axis.
func NewRotation(axis Vec3, angle float64) (Rotation, error) {
	q, err := FromAxisAngle(axis, angle)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{Q: q, Inverse: q.Inverse()}, nil
}

// Apply rotates v.
func (r Rotation) Apply(v Vec3) Vec3 {
	return RotateVec3(r.Q, r.Inverse, v)
}

// Undo applies the opposite rotation.
func (r Rotation) Undo(v Vec3) Vec3 {
	return RotateVec3(r.Inverse, r.Q, v)
}
