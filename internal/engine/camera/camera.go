// Package camera provides a free-flying camera steered with quaternion rotations.
package camera

import (
	"fmt"

	"github.com/Faultbox/tilted-globe/pkg/math"
)

// FreeCamera has a position and an orthogonal pair of look and up directions.
// Positive Z is toward the north pole of the globe.
type FreeCamera struct {
	Position math.Vec3
	Look     math.Vec3
	Up       math.Vec3

	// Projection
	FieldOfView float64 // Vertical, degrees
	Near        float64
	Far         float64
}

// NewFreeCamera creates a camera looking at the origin from -Y with Z up.
func NewFreeCamera() *FreeCamera {
	return &FreeCamera{
		Position:    math.Vec3{X: 0, Y: -15, Z: 0},
		Look:        math.Vec3{X: 0, Y: 1, Z: 0},
		Up:          math.Vec3{X: 0, Y: 0, Z: 1},
		FieldOfView: 60,
		// A wide depth range loses depth buffer precision.
		Near: 0.5,
		Far:  1000000000,
	}
}

// Right returns look × up.
func (c *FreeCamera) Right() math.Vec3 {
	return math.Cross(c.Look, c.Up)
}

// MoveForwardBack moves along the look direction.
func (c *FreeCamera) MoveForwardBack(howFar float64) {
	c.Position = c.Position.Add(c.Look.Scale(howFar))
}

// MoveLeftRight turns the look direction about the up direction (yaw).
func (c *FreeCamera) MoveLeftRight(angle float64) error {
	r, err := math.NewRotation(c.Up, angle)
	if err != nil {
		return fmt.Errorf("yaw: %w", err)
	}
	c.Look = r.Apply(c.Look)
	return nil
}

// RotateLeftRight turns the up direction about the look direction (roll).
func (c *FreeCamera) RotateLeftRight(angle float64) error {
	r, err := math.NewRotation(c.Look, angle)
	if err != nil {
		return fmt.Errorf("roll: %w", err)
	}
	c.Up = r.Apply(c.Up)
	return nil
}

// MoveUpDown turns both look and up about look × up (pitch).
func (c *FreeCamera) MoveUpDown(angle float64) error {
	r, err := math.NewRotation(c.Right(), angle)
	if err != nil {
		return fmt.Errorf("pitch: %w", err)
	}
	c.Up = r.Apply(c.Up)
	c.Look = r.Apply(c.Look)
	return nil
}

// ShiftLeftRight moves along look × up.
func (c *FreeCamera) ShiftLeftRight(howFar float64) {
	c.Position = c.Position.Add(c.Right().Scale(howFar))
}

// ShiftUpDown moves along the up direction.
func (c *FreeCamera) ShiftUpDown(howFar float64) {
	c.Position = c.Position.Add(c.Up.Scale(howFar))
}

// ViewMatrix returns the view matrix for this camera.
func (c *FreeCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Look), c.Up)
}

// ProjectionMatrix returns the perspective matrix for the given aspect ratio.
func (c *FreeCamera) ProjectionMatrix(aspect float64) math.Mat4 {
	return math.Perspective(math.DegToRad(c.FieldOfView), aspect, c.Near, c.Far)
}
