package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// button is an on-screen push button. It counts as held from a click inside it
// until the mouse is released or leaves it.
type button struct {
	label      string
	x, y, w, h int
	normal     color.RGBA

	hovered bool
	held    bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// update applies one frame of mouse state and reports whether the look changed.
func (b *button) update(mouseX, mouseY int, mouseDown, justPressed bool) bool {
	hovered, held := b.hovered, b.held

	b.hovered = b.contains(mouseX, mouseY)
	if b.hovered && justPressed {
		b.held = true
	}
	if !mouseDown || !b.hovered {
		b.held = false
	}
	return hovered != b.hovered || held != b.held
}

func (b *button) fill(keyDown bool) color.RGBA {
	switch {
	case b.held || keyDown:
		return shade(b.normal, 0.6)
	case b.hovered:
		return shade(b.normal, 0.8)
	default:
		return b.normal
	}
}

func (b *button) draw(screen *ebiten.Image, keyDown bool) {
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), b.fill(keyDown), false)

	borderColor := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	textWidth := len(b.label) * 6 // debug font glyph width
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}

func shade(c color.RGBA, f float64) color.RGBA {
	f = clamp01(f)
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: c.A,
	}
}
