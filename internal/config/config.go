// Package config handles globe configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/tilted-globe/internal/engine/globe"
	"github.com/Faultbox/tilted-globe/pkg/ellipsoid"
)

// Config holds all globe settings.
type Config struct {
	Ellipsoid EllipsoidConfig `yaml:"ellipsoid"`
	Ring      RingConfig      `yaml:"ring"`
	Camera    CameraConfig    `yaml:"camera"`
	Sun       SunConfig       `yaml:"sun"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// EllipsoidConfig holds the semi-axes of the globe, in meters.
type EllipsoidConfig struct {
	RadiusMajor float64 `yaml:"radius_major"`
	RadiusMinor float64 `yaml:"radius_minor"`
}

// RingConfig holds mesh resolution settings.
type RingConfig struct {
	Size         int     `yaml:"size"`          // Vertices per ring, seam included
	LatitudeStep float64 `yaml:"latitude_step"` // Degrees between rings
	Tilt         bool    `yaml:"tilt"`          // Apply Earth's axial tilt
}

// CameraConfig holds free camera settings.
type CameraConfig struct {
	FieldOfView float64 `yaml:"fov"` // Degrees
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	MoveStep    float64 `yaml:"move_step"`   // Distance per move command
	RotateStep  float64 `yaml:"rotate_step"` // Degrees per rotate command
}

// SunConfig selects the moment used to orient the globe toward the sun.
type SunConfig struct {
	// Time is RFC 3339; empty means now.
	Time string `yaml:"time"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Ellipsoid: EllipsoidConfig{
			RadiusMajor: ellipsoid.WGS84.RadiusMajor,
			RadiusMinor: ellipsoid.WGS84.RadiusMinor,
		},
		Ring: RingConfig{
			Size:         181,
			LatitudeStep: 2,
			Tilt:         true,
		},
		Camera: CameraConfig{
			FieldOfView: 60,
			Near:        0.5,
			Far:         1000000000,
			MoveStep:    100000,
			RotateStep:  2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Shape returns the configured ellipsoid.
func (c *Config) Shape() ellipsoid.Ellipsoid {
	return ellipsoid.Ellipsoid{
		RadiusMajor: c.Ellipsoid.RadiusMajor,
		RadiusMinor: c.Ellipsoid.RadiusMinor,
	}
}

// SunTime parses Sun.Time, falling back to now when it is empty.
func (c *Config) SunTime(now time.Time) (time.Time, error) {
	if c.Sun.Time == "" {
		return now, nil
	}
	t, err := time.Parse(time.RFC3339, c.Sun.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("sun time: %w", err)
	}
	return t, nil
}

// GlobeOptions returns build options for the configured globe.
func (c *Config) GlobeOptions(longitudeOffset float64) globe.Options {
	return globe.Options{
		Ellipsoid:       c.Shape(),
		RingSize:        c.Ring.Size,
		LatitudeStep:    c.Ring.LatitudeStep,
		LongitudeOffset: longitudeOffset,
		Tilt:            c.Ring.Tilt,
	}
}

// Validate checks the settings that the geometry cannot recover from.
func (c *Config) Validate() error {
	if err := c.Shape().Validate(); err != nil {
		return fmt.Errorf("ellipsoid: %w", err)
	}
	if c.Ellipsoid.RadiusMinor > c.Ellipsoid.RadiusMajor {
		return fmt.Errorf("ellipsoid: radius minor %v exceeds radius major %v",
			c.Ellipsoid.RadiusMinor, c.Ellipsoid.RadiusMajor)
	}
	if c.Ring.Size < 2 {
		return fmt.Errorf("ring: size %d, need at least 2", c.Ring.Size)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: bad clip planes %v..%v", c.Camera.Near, c.Camera.Far)
	}
	return nil
}
