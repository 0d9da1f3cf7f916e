package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/speedometer/internal/gauge"
)

// Canvas draws gauge primitives onto an ebiten image, shifted by an offset.
type Canvas struct {
	dst              *ebiten.Image
	offsetX, offsetY float32

	fonts *text.GoTextFaceSource
	faces map[float32]*text.GoTextFace

	// 1x1 white source for DrawTriangles
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ gauge.Surface = (*Canvas)(nil)

// NewCanvas loads the label font.
func NewCanvas() (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &Canvas{
		fonts: src,
		faces: map[float32]*text.GoTextFace{},
	}, nil
}

// Begin targets dst for the following draw calls.
func (c *Canvas) Begin(dst *ebiten.Image, offsetX, offsetY float32) {
	c.dst = dst
	c.offsetX, c.offsetY = offsetX, offsetY
	if c.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
}

func (c *Canvas) FillArc(oval gauge.Rect, startDeg, sweepDeg float32, clr color.Color) {
	p := piePath(c.shift(oval), startDeg, sweepDeg)
	c.vertices, c.indices = p.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawTriangles(clr)
}

func (c *Canvas) StrokeArc(oval gauge.Rect, startDeg, sweepDeg, width float32, clr color.Color) {
	p := piePath(c.shift(oval), startDeg, sweepDeg)
	c.vertices, c.indices = p.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	c.drawTriangles(clr)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.dst, x0+c.offsetX, y0+c.offsetY, x1+c.offsetX, y1+c.offsetY, width, clr, true)
}

// DrawText draws s with its baseline starting at (x, y).
func (c *Canvas) DrawText(s string, x, y, size float32, clr color.Color) {
	face := c.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x+c.offsetX), float64(y+c.offsetY)-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, face, op)
}

func (c *Canvas) face(size float32) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.fonts, Size: float64(size)}
		c.faces[size] = f
	}
	return f
}

func (c *Canvas) shift(r gauge.Rect) gauge.Rect {
	return gauge.Rect{
		Left:   r.Left + c.offsetX,
		Top:    r.Top + c.offsetY,
		Right:  r.Right + c.offsetX,
		Bottom: r.Bottom + c.offsetY,
	}
}

func (c *Canvas) drawTriangles(clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	c.dst.DrawTriangles(c.vertices, c.indices, c.white, op)
}

// piePath outlines a pie slice of the circle inscribed in oval: centre, along
// the arc, and back to the centre.
func piePath(oval gauge.Rect, startDeg, sweepDeg float32) *vector.Path {
	cx := (oval.Left + oval.Right) / 2
	cy := (oval.Top + oval.Bottom) / 2
	r := min(oval.Right-oval.Left, oval.Bottom-oval.Top) / 2

	start := startDeg * math.Pi / 180
	end := (startDeg + sweepDeg) * math.Pi / 180
	dir := vector.Clockwise
	if sweepDeg < 0 {
		dir = vector.CounterClockwise
	}

	var p vector.Path
	p.MoveTo(cx, cy)
	p.Arc(cx, cy, r, start, end, dir)
	p.Close()
	return &p
}
