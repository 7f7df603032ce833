package globe

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/tilted-globe/internal/logger"
	"github.com/Faultbox/tilted-globe/pkg/ellipsoid"
	"github.com/Faultbox/tilted-globe/pkg/math"
)

// Build creates one ring per latitude band from the south pole to the north
// pole. Pole bands are single-vertex rings. No triangles are produced.
func Build(opts Options) (*Model, error) {
	if err := opts.Ellipsoid.Validate(); err != nil {
		return nil, err
	}
	if opts.RingSize < 2 {
		return nil, fmt.Errorf("%w: ring size %d, need at least 2", ellipsoid.ErrInvalidArgument, opts.RingSize)
	}
	count, err := bandCount(opts.LatitudeStep)
	if err != nil {
		return nil, err
	}

	model := &Model{
		Bands: make([]Band, 0, count+1),
		Bounds: Bounds{
			Min: math.Vec3{X: gomath.Inf(1), Y: gomath.Inf(1), Z: gomath.Inf(1)},
			Max: math.Vec3{X: gomath.Inf(-1), Y: gomath.Inf(-1), Z: gomath.Inf(-1)},
		},
	}

	for i := 0; i < count+1; i++ {
		lat := -90.0 + float64(i)*opts.LatitudeStep
		if i == count {
			lat = 90
		}

		band, err := buildBand(lat, opts)
		if err != nil {
			return nil, fmt.Errorf("band %v: %w", lat, err)
		}
		for _, p := range band.Ring.Positions() {
			updateBounds(&model.Bounds, p)
		}
		model.Bands = append(model.Bands, band)

		logger.Debug("built band",
			zap.Float64("latitude", lat),
			zap.Float64("geodetic", band.GeodeticLatitude),
			zap.Int("vertices", band.Ring.Size()))
	}

	return model, nil
}

func bandCount(step float64) (int, error) {
	if !(step > 0) || step > 180 {
		return 0, fmt.Errorf("%w: latitude step %v", ellipsoid.ErrInvalidArgument, step)
	}
	count := gomath.Round(180 / step)
	if gomath.Abs(count*step-180) > 1e-9 {
		return 0, fmt.Errorf("%w: latitude step %v does not divide 180", ellipsoid.ErrInvalidArgument, step)
	}
	return int(count), nil
}

func buildBand(lat float64, opts Options) (Band, error) {
	size := opts.RingSize
	if lat == 90 || lat == -90 {
		size = 1
	}

	ring, err := ellipsoid.New(size)
	if err != nil {
		return Band{}, err
	}
	e := opts.Ellipsoid
	if err := ring.SetupLatitude(lat, e.RadiusMinor, e.RadiusMajor); err != nil {
		return Band{}, err
	}
	if err := ring.MakeVertexRow(lat, opts.LongitudeOffset); err != nil {
		return Band{}, err
	}
	if opts.Tilt {
		ring.ApplyTilt()
	}

	return Band{
		Latitude:         lat,
		GeodeticLatitude: ring.GeodeticLatitude(),
		Ring:             ring,
	}, nil
}

// VertexCount returns the total number of vertices over all bands.
func (m *Model) VertexCount() int {
	n := 0
	for _, b := range m.Bands {
		n += b.Ring.Size()
	}
	return n
}

// Vertices flattens every band, south to north, into one slice.
func (m *Model) Vertices() []Vertex {
	vertices := make([]Vertex, 0, m.VertexCount())
	for _, b := range m.Bands {
		normals := b.Ring.Normals()
		for i, p := range b.Ring.Positions() {
			vertices = append(vertices, Vertex{Position: p, Normal: normals[i]})
		}
	}
	return vertices
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min.X = gomath.Min(b.Min.X, p.X)
	b.Min.Y = gomath.Min(b.Min.Y, p.Y)
	b.Min.Z = gomath.Min(b.Min.Z, p.Z)
	b.Max.X = gomath.Max(b.Max.X, p.X)
	b.Max.Y = gomath.Max(b.Max.Y, p.Y)
	b.Max.Z = gomath.Max(b.Max.Z, p.Z)
}
