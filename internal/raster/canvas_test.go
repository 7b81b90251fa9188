package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{255, 0, 0, 255}

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := NewCanvas(w, h)
	require.NoError(t, err)
	return c
}

func at(c *Canvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func transparent(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

func uniform(img *image.RGBA, c color.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != c {
				return false
			}
		}
	}
	return true
}

func drag(c *Canvas, from, to image.Point) {
	c.Press(from)
	mid := image.Pt((from.X+to.X)/2, (from.Y+to.Y)/2)
	c.Move(mid)
	c.Move(to)
	c.Release(to)
}

func TestNewCanvas(t *testing.T) {
	c := newTestCanvas(t, 40, 30)

	assert.Equal(t, image.Pt(40, 30), c.Size())
	assert.True(t, uniform(c.Image(), Background))
	assert.Equal(t, ToolPen, c.Tool())
	assert.Equal(t, DefaultColor, c.Color())
	assert.Equal(t, DefaultWidth, c.Width())

	_, err := NewCanvas(0, 10)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestCanvas_LineGesture(t *testing.T) {
	c := newTestCanvas(t, 200, 200)
	c.SetTool(ToolLine)
	c.SetColor(red)

	drag(c, image.Pt(10, 10), image.Pt(100, 100))

	for _, p := range []image.Point{{10, 10}, {55, 55}, {100, 100}} {
		assert.Equal(t, red, at(c, p.X, p.Y), "point %v", p)
	}
	assert.Equal(t, Background, at(c, 10, 100))
	assert.Equal(t, Background, at(c, 150, 150))

	assert.False(t, c.hasPreview)
	assert.True(t, transparent(c.preview))
	assert.False(t, c.Dragging())
}

func TestCanvas_RectangleNormalized(t *testing.T) {
	tests := []struct {
		name     string
		from, to image.Point
	}{
		{"top-left to bottom-right", image.Pt(10, 10), image.Pt(100, 100)},
		{"bottom-right to top-left", image.Pt(100, 100), image.Pt(10, 10)},
		{"top-right to bottom-left", image.Pt(100, 10), image.Pt(10, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 200, 200)
			c.SetTool(ToolRect)
			c.SetWidth(1)

			drag(c, tt.from, tt.to)

			for _, p := range []image.Point{{10, 10}, {100, 10}, {10, 100}, {100, 100}, {55, 10}, {10, 55}, {100, 55}, {55, 100}} {
				assert.Equal(t, DefaultColor, at(c, p.X, p.Y), "edge %v", p)
			}
			for _, p := range []image.Point{{55, 55}, {9, 9}, {101, 101}} {
				assert.Equal(t, Background, at(c, p.X, p.Y), "off-edge %v", p)
			}
			assert.True(t, transparent(c.preview))
		})
	}
}

func TestCanvas_EllipseInscribed(t *testing.T) {
	c := newTestCanvas(t, 200, 200)
	c.SetTool(ToolEllipse)
	c.SetWidth(1)

	drag(c, image.Pt(110, 60), image.Pt(10, 10))

	// Extremes of the inscribed ellipse.
	for _, p := range []image.Point{{10, 35}, {110, 35}, {60, 10}, {60, 60}} {
		assert.Equal(t, DefaultColor, at(c, p.X, p.Y), "point %v", p)
	}
	assert.Equal(t, Background, at(c, 60, 35))
	assert.Equal(t, Background, at(c, 10, 10))
	assert.False(t, c.hasPreview)
}

func TestCanvas_ShapePreviewDoesNotTouchRaster(t *testing.T) {
	c := newTestCanvas(t, 120, 120)
	c.SetTool(ToolLine)

	c.Press(image.Pt(10, 10))
	c.Move(image.Pt(100, 100))

	assert.True(t, c.hasPreview)
	assert.True(t, uniform(c.Image(), Background))
	assert.NotZero(t, c.preview.RGBAAt(55, 55).A)
	assert.Equal(t, DefaultColor, c.Composite().RGBAAt(55, 55))

	// The preview is redrawn from the anchor each move.
	c.Move(image.Pt(100, 10))
	assert.Zero(t, c.preview.RGBAAt(55, 55).A)
	assert.NotZero(t, c.preview.RGBAAt(55, 10).A)

	c.Release(image.Pt(100, 10))
	assert.Equal(t, DefaultColor, at(c, 55, 10))
	assert.Equal(t, Background, at(c, 55, 55))
}

func TestCanvas_PenCommitsImmediately(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	c.SetWidth(1)

	c.Press(image.Pt(10, 10))
	assert.Equal(t, DefaultColor, at(c, 10, 10))

	c.Move(image.Pt(30, 10))
	assert.Equal(t, DefaultColor, at(c, 20, 10))
	assert.False(t, c.hasPreview)

	before := c.Composite()
	c.Release(image.Pt(30, 10))
	assert.Equal(t, before.Pix, c.Image().Pix)
}

func TestCanvas_EraserPaintsBackgroundAtDoubleWidth(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	c.SetWidth(10)
	drag(c, image.Pt(10, 50), image.Pt(90, 50))
	require.Equal(t, DefaultColor, at(c, 50, 50))

	c.SetTool(ToolEraser)
	c.Press(image.Pt(50, 50))
	assert.Equal(t, DefaultColor, at(c, 50, 50), "press alone does not erase")

	c.Move(image.Pt(50, 50))
	c.Release(image.Pt(50, 50))

	assert.Equal(t, Background, at(c, 50, 50))
	// Eraser radius is 10 (double the width of 10, halved).
	assert.Equal(t, Background, at(c, 59, 50))
	assert.Equal(t, DefaultColor, at(c, 70, 50))
}

func TestCanvas_MoveWithoutPressIgnored(t *testing.T) {
	c := newTestCanvas(t, 50, 50)
	v := c.Version()

	c.Move(image.Pt(10, 10))
	c.Release(image.Pt(10, 10))

	assert.True(t, uniform(c.Image(), Background))
	assert.Equal(t, v, c.Version())
}

func TestCanvas_SetWidthClamps(t *testing.T) {
	c := newTestCanvas(t, 10, 10)

	c.SetWidth(0)
	assert.Equal(t, MinWidth, c.Width())
	c.SetWidth(99)
	assert.Equal(t, MaxWidth, c.Width())
}

func TestCanvas_Clear(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	drag(c, image.Pt(5, 5), image.Pt(60, 60))

	c.SetTool(ToolRect)
	c.Press(image.Pt(10, 10))
	c.Move(image.Pt(50, 50))
	require.True(t, c.hasPreview)

	c.Clear()

	assert.True(t, uniform(c.Image(), Background))
	assert.False(t, c.hasPreview)
	assert.True(t, transparent(c.preview))
}

func TestCanvas_Resize(t *testing.T) {
	c := newTestCanvas(t, 50, 50)
	c.SetWidth(1)
	c.Press(image.Pt(5, 5))
	c.Release(image.Pt(5, 5))
	require.Equal(t, DefaultColor, at(c, 5, 5))

	require.NoError(t, c.Resize(200, 150))
	assert.Equal(t, image.Pt(200, 150), c.Size())
	assert.Equal(t, DefaultColor, at(c, 5, 5))
	assert.Equal(t, Background, at(c, 6, 5))
	assert.Equal(t, Background, at(c, 180, 140))

	require.NoError(t, c.Resize(4, 4))
	assert.Equal(t, image.Pt(4, 4), c.Size())
	assert.False(t, image.Pt(5, 5).In(c.Image().Bounds()))
	assert.True(t, uniform(c.Image(), Background))

	// Growing again does not bring the clipped mark back.
	require.NoError(t, c.Resize(50, 50))
	assert.Equal(t, Background, at(c, 5, 5))

	assert.ErrorIs(t, c.Resize(-1, 10), ErrInvalidSize)
	assert.Equal(t, image.Pt(50, 50), c.Size())
}

func TestTool_String(t *testing.T) {
	assert.Equal(t, "PEN", ToolPen.String())
	assert.Equal(t, "ELLIPSE", ToolEllipse.String())
	assert.Equal(t, "UNKNOWN", Tool(42).String())
	assert.True(t, ToolRect.IsShape())
	assert.False(t, ToolEraser.IsShape())
	assert.Len(t, Tools(), 5)
}
