package math

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

func vecNear(a, b Vec3, rel float64) bool {
	tol := rel * math.Max(1, math.Max(a.Length(), b.Length()))
	return a.Distance(b) <= tol
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestFromAxisAngle(t *testing.T) {
	// 90 degrees around an unnormalized Y axis
	q, err := FromAxisAngle(Vec3{X: 0, Y: 5, Z: 0}, math.Pi/2)
	if err != nil {
		t.Fatalf("FromAxisAngle failed: %v", err)
	}

	if !scalar.EqualWithinAbs(q.W, math.Cos(math.Pi/4), 1e-15) {
		t.Errorf("FromAxisAngle W: expected %v, got %v", math.Cos(math.Pi/4), q.W)
	}
	if !scalar.EqualWithinAbs(q.Y, math.Sin(math.Pi/4), 1e-15) {
		t.Errorf("FromAxisAngle Y: expected %v, got %v", math.Sin(math.Pi/4), q.Y)
	}
	if !scalar.EqualWithinAbs(q.Norm(), 1, 1e-15) {
		t.Errorf("FromAxisAngle norm = %v, want 1", q.Norm())
	}
}

func TestFromAxisAngleZeroAxis(t *testing.T) {
	_, err := FromAxisAngle(Vec3{}, 1)
	if !errors.Is(err, ErrZeroAxis) {
		t.Errorf("expected ErrZeroAxis, got %v", err)
	}
	if _, err := NewRotation(Vec3{}, 1); !errors.Is(err, ErrZeroAxis) {
		t.Errorf("NewRotation: expected ErrZeroAxis, got %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero axis should be ErrInvalidArgument, got %v", err)
	}
}

func TestQuatInverse(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	got := q.Mul(q.Inverse())
	want := QuatIdentity()
	if !scalar.EqualWithinAbs(got.X, want.X, 1e-15) ||
		!scalar.EqualWithinAbs(got.Y, want.Y, 1e-15) ||
		!scalar.EqualWithinAbs(got.Z, want.Z, 1e-15) ||
		!scalar.EqualWithinAbs(got.W, want.W, 1e-15) {
		t.Errorf("q * q^-1 = %v, want identity", got)
	}

	// Cross-check against gonum.
	g := quat.Inv(quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z})
	inv := q.Inverse()
	if !scalar.EqualWithinAbs(inv.W, g.Real, 1e-15) || !scalar.EqualWithinAbs(inv.X, g.Imag, 1e-15) ||
		!scalar.EqualWithinAbs(inv.Y, g.Jmag, 1e-15) || !scalar.EqualWithinAbs(inv.Z, g.Kmag, 1e-15) {
		t.Errorf("Inverse = %v, gonum = %v", inv, g)
	}

	if z := (Quat{}).Inverse(); z != (Quat{}) {
		t.Errorf("zero Inverse() = %v, want zero", z)
	}
}

func TestQuatMulMatchesGonum(t *testing.T) {
	a := Quat{X: 0.3, Y: -1.2, Z: 2, W: 0.7}
	b := Quat{X: -4, Y: 0.5, Z: 1, W: 2}
	got := a.Mul(b)
	g := quat.Mul(
		quat.Number{Real: a.W, Imag: a.X, Jmag: a.Y, Kmag: a.Z},
		quat.Number{Real: b.W, Imag: b.X, Jmag: b.Y, Kmag: b.Z},
	)
	if !scalar.EqualWithinAbs(got.W, g.Real, 1e-12) || !scalar.EqualWithinAbs(got.X, g.Imag, 1e-12) ||
		!scalar.EqualWithinAbs(got.Y, g.Jmag, 1e-12) || !scalar.EqualWithinAbs(got.Z, g.Kmag, 1e-12) {
		t.Errorf("Mul = %v, gonum = %v", got, g)
	}
}

func TestRotateVec3(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float64
		in    Vec3
		want  Vec3
	}{
		{"z quarter turn", UnitZ, math.Pi / 2, UnitX, UnitY},
		{"x quarter turn", UnitX, math.Pi / 2, UnitY, UnitZ},
		{"y quarter turn", UnitY, math.Pi / 2, UnitZ, UnitX},
		{"half turn", Vec3{0, 0, 3}, math.Pi, Vec3{2, 1, 4}, Vec3{-2, -1, 4}},
		{"on axis", Vec3{1, 1, 1}, 1.3, Vec3{2, 2, 2}, Vec3{2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := FromAxisAngle(tt.axis, tt.angle)
			if err != nil {
				t.Fatalf("FromAxisAngle failed: %v", err)
			}
			got := RotateVec3(q, q.Inverse(), tt.in)
			if !vecNear(got, tt.want, 1e-12) {
				t.Errorf("RotateVec3 = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateKeepsVectorQuat(t *testing.T) {
	q, _ := FromAxisAngle(Vec3{1, -2, 0.5}, 0.8)
	r := Rotate(q, q.Inverse(), VectorQuat(Vec3{3, 4, 5}))
	if r.W != 0 {
		t.Errorf("Rotate W = %v, want 0", r.W)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	axes := []Vec3{UnitX, {1, 2, 3}, {-0.2, 0, 7}, {6378137, -1, 0.001}}
	angles := []float64{-3, -DegToRad(23.43689), 0.001, 1, math.Pi}
	vectors := []Vec3{UnitZ, {1, 2, 3}, {6378137, 0, 6356752}, {-0.5, 1e-3, 42}}

	for _, axis := range axes {
		for _, angle := range angles {
			q, err := FromAxisAngle(axis, angle)
			if err != nil {
				t.Fatalf("FromAxisAngle(%v, %v) failed: %v", axis, angle, err)
			}
			inv := q.Inverse()
			for _, v := range vectors {
				rotated := RotateVec3(q, inv, v)
				if !scalar.EqualWithinRel(rotated.Length(), v.Length(), 1e-12) {
					t.Errorf("rotation changed length: %v -> %v", v.Length(), rotated.Length())
				}
				back := RotateVec3(inv, q, rotated)
				if !vecNear(back, v, 1e-9) {
					t.Errorf("round trip axis=%v angle=%v: got %v, want %v", axis, angle, back, v)
				}
			}
		}
	}
}

func TestRotateMatchesMathGL(t *testing.T) {
	axis := Vec3{0.3, -0.4, 0.8}
	angle := 1.1
	r, err := NewRotation(axis, angle)
	if err != nil {
		t.Fatalf("NewRotation failed: %v", err)
	}
	v := Vec3{2, -3, 0.25}

	want := FromMGL(mgl64.QuatRotate(angle, axis.Normalize().MGL()).Rotate(v.MGL()))
	if got := r.Apply(v); !vecNear(got, want, 1e-12) {
		t.Errorf("Apply = %v, mgl64 = %v", got, want)
	}
	if got := r.Undo(r.Apply(v)); !vecNear(got, v, 1e-12) {
		t.Errorf("Undo(Apply) = %v, want %v", got, v)
	}
}

func TestRotationPreservesAngles(t *testing.T) {
	r, _ := NewRotation(Vec3{1, 1, 0}, 0.7)
	a := Vec3{1, 0, 0}
	b := Vec3{0.5, 0.5, 2}
	before := a.Dot(b)
	after := r.Apply(a).Dot(r.Apply(b))
	if !scalar.EqualWithinAbs(before, after, 1e-12) {
		t.Errorf("dot before %v, after %v", before, after)
	}
}
