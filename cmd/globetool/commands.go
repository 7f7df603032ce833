package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tilted-globe/internal/config"
	"github.com/Faultbox/tilted-globe/internal/engine/camera"
	"github.com/Faultbox/tilted-globe/internal/engine/globe"
	"github.com/Faultbox/tilted-globe/internal/engine/lighting"
	"github.com/Faultbox/tilted-globe/internal/engine/picking"
	"github.com/Faultbox/tilted-globe/internal/logger"
	"github.com/Faultbox/tilted-globe/pkg/ellipsoid"
	"github.com/Faultbox/tilted-globe/pkg/math"
)

var errUsage = errors.New("usage")

type app struct {
	cfg *config.Config
	out io.Writer
	now func() time.Time
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "ring":
		return a.cmdRing(args)
	case "geodetic", "geo":
		return a.cmdGeodetic(args)
	case "sun":
		return a.cmdSun(args)
	case "globe":
		return a.cmdGlobe(args)
	case "camera", "cam":
		return a.cmdCamera(args)
	case "pick":
		return a.cmdPick(args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *app) cmdRing(args []string) error {
	fs := flag.NewFlagSet("ring", flag.ContinueOnError)
	fs.SetOutput(a.out)
	offset := fs.Float64("offset", 0, "Longitude offset in radians")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: globetool ring [-offset rad] <latitude>", errUsage)
	}
	lat, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("latitude: %w", err)
	}

	size := a.cfg.Ring.Size
	if lat >= 90 || lat <= -90 {
		size = 1
	}
	ring, err := ellipsoid.New(size)
	if err != nil {
		return err
	}
	shape := a.cfg.Shape()
	if err := ring.SetupLatitude(lat, shape.RadiusMinor, shape.RadiusMajor); err != nil {
		return err
	}
	if err := ring.MakeVertexRow(lat, *offset); err != nil {
		return err
	}
	if a.cfg.Ring.Tilt {
		ring.ApplyTilt()
	}

	fmt.Fprintf(a.out, "Latitude:  %.6f (geodetic %.6f)\n", lat, ring.GeodeticLatitude())
	fmt.Fprintf(a.out, "Vertices:  %d\n", ring.Size())
	fmt.Fprintf(a.out, "Tilted:    %v\n\n", a.cfg.Ring.Tilt)
	fmt.Fprintf(a.out, "%5s %16s %16s %16s %10s %10s %10s\n", "#", "x", "y", "z", "nx", "ny", "nz")

	normals := ring.Normals()
	for i, p := range ring.Positions() {
		n := normals[i]
		fmt.Fprintf(a.out, "%5d %16.3f %16.3f %16.3f %10.6f %10.6f %10.6f\n", i, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}
	return nil
}

func (a *app) cmdGeodetic(args []string) error {
	fs := flag.NewFlagSet("geodetic", flag.ContinueOnError)
	fs.SetOutput(a.out)
	from := fs.Float64("from", -90, "First latitude")
	to := fs.Float64("to", 90, "Last latitude")
	by := fs.Float64("by", 10, "Latitude increment")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *by <= 0 || *to < *from {
		return fmt.Errorf("%w: need -by > 0 and -to >= -from", errUsage)
	}

	ring, err := ellipsoid.New(1)
	if err != nil {
		return err
	}
	shape := a.cfg.Shape()

	fmt.Fprintf(a.out, "%12s %14s %14s\n", "nominal", "geodetic", "difference")
	for i := 0; ; i++ {
		lat := *from + float64(i)*(*by)
		if lat > *to {
			break
		}
		if err := ring.SetupLatitude(lat, shape.RadiusMinor, shape.RadiusMajor); err != nil {
			return err
		}
		g := ring.GeodeticLatitude()
		fmt.Fprintf(a.out, "%12.4f %14.8f %14.8f\n", lat, g, g-lat)
	}
	return nil
}

func (a *app) cmdSun(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: globetool [-time RFC3339] sun", errUsage)
	}
	t, err := a.cfg.SunTime(a.now())
	if err != nil {
		return err
	}

	lat, lon := lighting.SubsolarPoint(t)
	hourAngle := lighting.HourAngle(t)
	dir := lighting.SunDirection(t)
	if a.cfg.Ring.Tilt {
		dir = ellipsoid.EarthTilt().Apply(dir)
	}

	fmt.Fprintf(a.out, "Time:       %s\n", t.UTC().Format(time.RFC3339))
	fmt.Fprintf(a.out, "Subsolar:   %.4f, %.4f\n", lat, lon)
	fmt.Fprintf(a.out, "Hour angle: %.6f rad (%.4f deg)\n", hourAngle, math.RadToDeg(hourAngle))
	fmt.Fprintf(a.out, "Direction:  %.6f %.6f %.6f\n", dir.X, dir.Y, dir.Z)
	return nil
}

func (a *app) cmdGlobe(args []string) error {
	fs := flag.NewFlagSet("globe", flag.ContinueOnError)
	fs.SetOutput(a.out)
	sunlit := fs.Bool("sun", false, "Turn the globe to the configured sun time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	offset := 0.0
	if *sunlit {
		t, err := a.cfg.SunTime(a.now())
		if err != nil {
			return err
		}
		offset = lighting.HourAngle(t)
	}

	start := time.Now()
	model, err := globe.Build(a.cfg.GlobeOptions(offset))
	if err != nil {
		return err
	}
	logger.Info("globe built",
		zap.Int("bands", len(model.Bands)),
		zap.Int("vertices", model.VertexCount()),
		zap.Duration("elapsed", time.Since(start)))

	b := model.Bounds
	fmt.Fprintf(a.out, "Bands:    %d\n", len(model.Bands))
	fmt.Fprintf(a.out, "Vertices: %d\n", model.VertexCount())
	fmt.Fprintf(a.out, "Offset:   %.6f rad\n", offset)
	fmt.Fprintf(a.out, "Bounds:   (%.1f, %.1f, %.1f) - (%.1f, %.1f, %.1f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	return nil
}

// steerCamera builds the configured camera and applies moves named forward,
// back, yaw, yaw-, pitch, pitch-, roll, roll-, left, right, up, down.
func (a *app) steerCamera(moves []string) (*camera.FreeCamera, error) {
	cam := camera.NewFreeCamera()
	cam.FieldOfView = a.cfg.Camera.FieldOfView
	cam.Near = a.cfg.Camera.Near
	cam.Far = a.cfg.Camera.Far

	step := a.cfg.Camera.MoveStep
	angle := math.DegToRad(a.cfg.Camera.RotateStep)

	for _, move := range moves {
		var err error
		switch strings.ToLower(move) {
		case "forward":
			cam.MoveForwardBack(step)
		case "back":
			cam.MoveForwardBack(-step)
		case "yaw":
			err = cam.MoveLeftRight(angle)
		case "yaw-":
			err = cam.MoveLeftRight(-angle)
		case "pitch":
			err = cam.MoveUpDown(angle)
		case "pitch-":
			err = cam.MoveUpDown(-angle)
		case "roll":
			err = cam.RotateLeftRight(angle)
		case "roll-":
			err = cam.RotateLeftRight(-angle)
		case "right":
			cam.ShiftLeftRight(step)
		case "left":
			cam.ShiftLeftRight(-step)
		case "up":
			cam.ShiftUpDown(step)
		case "down":
			cam.ShiftUpDown(-step)
		default:
			return nil, fmt.Errorf("%w: unknown camera move %q", errUsage, move)
		}
		if err != nil {
			return nil, fmt.Errorf("camera move %q: %w", move, err)
		}
		logger.Debug("camera moved", zap.String("move", move))
	}
	return cam, nil
}

func (a *app) cmdCamera(args []string) error {
	cam, err := a.steerCamera(args)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Position: %.6f %.6f %.6f\n", cam.Position.X, cam.Position.Y, cam.Position.Z)
	fmt.Fprintf(a.out, "Look:     %.6f %.6f %.6f\n", cam.Look.X, cam.Look.Y, cam.Look.Z)
	fmt.Fprintf(a.out, "Up:       %.6f %.6f %.6f\n", cam.Up.X, cam.Up.Y, cam.Up.Z)

	view := cam.ViewMatrix()
	fmt.Fprintln(a.out, "View:")
	for row := 0; row < 4; row++ {
		fmt.Fprintf(a.out, "  %12.6f %12.6f %12.6f %12.6f\n", view.At(row, 0), view.At(row, 1), view.At(row, 2), view.At(row, 3))
	}
	return nil
}

// cmdPick casts a ray through a screen pixel of the steered camera and
// reports where it meets the globe.
func (a *app) cmdPick(args []string) error {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(a.out)
	width := fs.Float64("width", 800, "Viewport width in pixels")
	height := fs.Float64("height", 600, "Viewport height in pixels")
	sunlit := fs.Bool("sun", false, "Turn the globe to the configured sun time")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 || *width <= 0 || *height <= 0 {
		return fmt.Errorf("%w: globetool pick [-width w -height h] [-sun] <x> <y> [moves...]", errUsage)
	}
	x, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}

	offset := 0.0
	if *sunlit {
		t, err := a.cfg.SunTime(a.now())
		if err != nil {
			return err
		}
		offset = lighting.HourAngle(t)
	}

	cam, err := a.steerCamera(fs.Args()[2:])
	if err != nil {
		return err
	}
	viewProj := cam.ProjectionMatrix(*width / *height).Mul4(cam.ViewMatrix())
	ray := picking.ScreenToRay(x, y, *width, *height, viewProj)

	fmt.Fprintf(a.out, "Ray:       %.3f %.3f %.3f -> %.6f %.6f %.6f\n",
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z, ray.Direction.X, ray.Direction.Y, ray.Direction.Z)

	hit, ok := ray.IntersectEllipsoid(a.cfg.Shape(), a.cfg.Ring.Tilt, offset)
	if !ok {
		fmt.Fprintln(a.out, "Hit:       none")
		return nil
	}
	fmt.Fprintf(a.out, "Hit:       %.3f %.3f %.3f\n", hit.Point.X, hit.Point.Y, hit.Point.Z)
	fmt.Fprintf(a.out, "Distance:  %.3f\n", hit.Distance)
	fmt.Fprintf(a.out, "Lat/Lon:   %.6f, %.6f\n", hit.Latitude, hit.Longitude)
	return nil
}
