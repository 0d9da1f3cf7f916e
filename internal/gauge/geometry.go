package gauge

import "go.uber.org/zap"

// MeasureMode says how a layout constrains one dimension.
type MeasureMode int

const (
	// Unspecified places no limit; the gauge picks its own size.
	Unspecified MeasureMode = iota
	// Exactly forces the given size.
	Exactly
	// AtMost allows up to the given size.
	AtMost
)

// MeasureSpec is a layout constraint for one dimension.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// Geometry is everything about the dial that depends on its assigned size.
type Geometry struct {
	Size     float32
	Radius   float32
	CenterX  float32
	CenterY  float32
	TextSize float32
}

func geometryFor(size int) Geometry {
	s := float32(size)
	return Geometry{
		Size:     s,
		Radius:   s / 2 * 0.8,
		CenterX:  s / 2,
		CenterY:  s/2 - 0.05*s,
		TextSize: 0.05 * s,
	}
}

// Geometry returns the current dial geometry.
func (g *Gauge) Geometry() Geometry { return g.geom }

// Measure picks the gauge's width and height for the given constraints and
// resizes the dial to fit the smaller of the two.
func (g *Gauge) Measure(width, height MeasureSpec) (int, int) {
	w := measureDimension(DefaultSize, width)
	h := measureDimension(DefaultSize/2, height)
	g.SetSize(min(w, h))
	return w, h
}

// SetSize assigns the dial size directly.
func (g *Gauge) SetSize(size int) {
	if size < 0 {
		size = 0
	}
	geom := geometryFor(size)
	if geom == g.geom {
		return
	}
	g.geom = geom
	g.logger.Debug("gauge resized",
		zap.Int("size", size),
		zap.Float32("radius", geom.Radius),
		zap.Float32("center_x", geom.CenterX),
		zap.Float32("center_y", geom.CenterY),
	)
	g.invalidate()
}

func measureDimension(minSize int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(minSize, spec.Size)
	default:
		return minSize
	}
}
