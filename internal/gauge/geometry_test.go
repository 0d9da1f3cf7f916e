package gauge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name          string
		width, height MeasureSpec
		wantW, wantH  int
		wantSize      float32
	}{
		{
			name:     "unspecified uses default footprint",
			wantW:    800,
			wantH:    400,
			wantSize: 400,
		},
		{
			name:     "exact sizes win",
			width:    MeasureSpec{Mode: Exactly, Size: 1000},
			height:   MeasureSpec{Mode: Exactly, Size: 600},
			wantW:    1000,
			wantH:    600,
			wantSize: 600,
		},
		{
			name:     "at most clamps the footprint",
			width:    MeasureSpec{Mode: AtMost, Size: 300},
			height:   MeasureSpec{Mode: AtMost, Size: 1000},
			wantW:    300,
			wantH:    400,
			wantSize: 300,
		},
		{
			name:     "at most larger than footprint",
			width:    MeasureSpec{Mode: AtMost, Size: 2000},
			height:   MeasureSpec{Mode: Unspecified, Size: 10},
			wantW:    800,
			wantH:    400,
			wantSize: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(DefaultStyle())
			w, h := g.Measure(tt.width, tt.height)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantSize, g.Geometry().Size)
		})
	}
}

func TestGeometryFollowsSize(t *testing.T) {
	g := New(DefaultStyle())
	g.SetSize(400)
	geo := g.Geometry()
	assert.InDelta(t, 160, geo.Radius, 1e-3)
	assert.InDelta(t, 200, geo.CenterX, 1e-3)
	assert.InDelta(t, 180, geo.CenterY, 1e-3)
	assert.InDelta(t, 20, geo.TextSize, 1e-3)

	g.SetSize(1000)
	geo = g.Geometry()
	assert.InDelta(t, 400, geo.Radius, 1e-3)
	assert.InDelta(t, 500, geo.CenterX, 1e-3)
	assert.InDelta(t, 450, geo.CenterY, 1e-3)
}

func TestSetSize_InvalidatesOnlyOnChange(t *testing.T) {
	calls := 0
	g := New(DefaultStyle(), WithInvalidate(func() { calls++ }))
	calls = 0
	g.SetSize(DefaultSize)
	assert.Zero(t, calls)
	g.SetSize(500)
	assert.Equal(t, 1, calls)
}
