package gauge

import (
	"image/color"
	"math"
	"strconv"
)

// Rect is an axis-aligned rectangle. Arcs are inscribed in it.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Surface is the 2D drawing target a gauge renders onto.
//
// Angles are in degrees, measured clockwise from the positive x axis with y
// pointing down. Arcs are pie slices: the outline runs from the centre of the
// oval along the arc and back. Text is positioned by its baseline origin.
type Surface interface {
	FillArc(oval Rect, startDeg, sweepDeg float32, c color.Color)
	StrokeArc(oval Rect, startDeg, sweepDeg, width float32, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	DrawText(s string, x, y, size float32, c color.Color)
}

// Dial label offsets, in multiples of the label text size, relative to
// x = 0 and y = CenterY. They are hand-fitted to sit just outside the rim.
var tickLabels = [...]struct {
	text   string
	dx, dy float32
}{
	{"0", 1, 0.3},
	{"10", 0.7, -1.15},
	{"20", 1.1, -2.55},
	{"30", 1.7, -4},
	{"40", 2.63, -5.25},
	{"50", 3.62, -6.3},
	{"60", 4.92, -7.25},
	{"70", 6.4, -7.8},
	{"80", 7.9, -8.2},
	{"90", 9.5, -8.3},
	{"100", 10.8, -8.2},
	{"110", 12.4, -7.8},
	{"120", 13.9, -7.15},
	{"130", 15.2, -6.3},
	{"140", 16.2, -5.25},
	{"150", 17.1, -4},
	{"160", 17.7, -2.55},
	{"170", 18.1, -1.15},
	{"180", 18.2, 0.3},
}

// Render draws the gauge: background, needle, border, speed label, dial labels.
func (g *Gauge) Render(s Surface) {
	geo := g.geom
	p := g.style.Palette
	oval := Rect{
		Left:   geo.CenterX - geo.Radius,
		Top:    geo.CenterY - geo.Radius,
		Right:  geo.CenterX + geo.Radius,
		Bottom: geo.CenterY + geo.Radius,
	}

	s.FillArc(oval, -180, 180, p.Background)

	x, y := g.needleTip()
	s.StrokeLine(geo.CenterX, geo.CenterY, x, y, g.style.BorderWidth, g.needle)

	s.StrokeArc(oval, -180, 180, g.style.BorderWidth, p.Border)

	ts := geo.TextSize
	s.DrawText(SpeedLabel(g.speed), geo.CenterX-ts*2, geo.Size/2, ts, p.Text)
	for _, l := range tickLabels {
		s.DrawText(l.text, ts*l.dx, geo.CenterY+ts*l.dy, ts, p.Text)
	}
}

func (g *Gauge) needleTip() (float32, float32) {
	theta := g.speed * math.Pi / 180
	r := float64(g.geom.Radius)
	return g.geom.CenterX - float32(r*math.Cos(theta)),
		g.geom.CenterY - float32(r*math.Sin(theta))
}

// SpeedLabel formats a speed the way the dial prints it.
func SpeedLabel(speed float64) string {
	return strconv.FormatFloat(speed, 'f', 1, 64) + " km/h"
}
