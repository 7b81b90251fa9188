// Package raster implements the drawing surface: an immediate-mode raster
// with a transient preview overlay for shape tools, plus the image codecs
// used to save, publish and display artworks.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

var ErrInvalidSize = errors.New("invalid canvas size")

var (
	// Background is the paper color and the eraser color.
	Background = color.RGBA{255, 255, 255, 255}
	// DefaultColor is the initial pen color.
	DefaultColor = color.RGBA{0, 0, 0, 255}
)

// Canvas is a raster drawing surface. Pen and eraser strokes are committed
// as the pointer moves; shape tools draw into the preview overlay until the
// pointer is released.
type Canvas struct {
	img     *image.RGBA
	preview *image.RGBA

	tool  Tool
	color color.RGBA
	width int

	// Drag state
	dragging   bool
	anchor     image.Point
	last       image.Point
	hasPreview bool

	version uint64
}

// NewCanvas creates a w×h canvas filled with the background color.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	c := &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, w, h)),
		preview: image.NewRGBA(image.Rect(0, 0, w, h)),
		tool:    ToolPen,
		color:   DefaultColor,
		width:   DefaultWidth,
	}
	fill(c.img, Background)
	return c, nil
}

func (c *Canvas) SetTool(t Tool) {
	c.tool = t
}

func (c *Canvas) SetColor(col color.RGBA) {
	c.color = col
}

// SetWidth sets the stroke width, clamped to [MinWidth, MaxWidth].
func (c *Canvas) SetWidth(w int) {
	c.width = ClampWidth(w)
}

func (c *Canvas) Tool() Tool         { return c.tool }
func (c *Canvas) Color() color.RGBA  { return c.color }
func (c *Canvas) Width() int         { return c.width }
func (c *Canvas) Dragging() bool     { return c.dragging }
func (c *Canvas) Last() image.Point  { return c.last }
func (c *Canvas) Size() image.Point  { return c.img.Bounds().Size() }
func (c *Canvas) Image() *image.RGBA { return c.img }

// Version changes whenever the displayed content may have changed.
func (c *Canvas) Version() uint64 { return c.version }

// Press starts a drag gesture at p.
func (c *Canvas) Press(p image.Point) {
	c.dragging = true
	c.anchor = p
	c.last = p

	if c.tool == ToolPen {
		stamp(c.img, p.X, p.Y, c.width, c.color)
		c.touch()
	}
}

// Move continues the drag gesture to p. Moves outside a drag are ignored.
func (c *Canvas) Move(p image.Point) {
	if !c.dragging {
		return
	}

	switch c.tool {
	case ToolPen:
		drawLine(c.img, c.last, p, c.width, c.color)
	case ToolEraser:
		stamp(c.img, p.X, p.Y, c.width*2, Background)
	default:
		c.clearPreview()
		c.drawShape(c.preview, c.anchor, p)
		c.hasPreview = true
	}
	c.last = p
	c.touch()
}

// Release ends the drag gesture at p, committing the shape for shape tools.
func (c *Canvas) Release(p image.Point) {
	if !c.dragging {
		return
	}
	c.dragging = false

	if c.tool.IsShape() {
		c.drawShape(c.img, c.anchor, p)
		c.clearPreview()
		c.touch()
	}
}

func (c *Canvas) drawShape(dst *image.RGBA, a, b image.Point) {
	switch c.tool {
	case ToolLine:
		drawLine(dst, a, b, c.width, c.color)
	case ToolRect:
		drawRect(dst, a, b, c.width, c.color)
	case ToolEllipse:
		drawEllipse(dst, a, b, c.width, c.color)
	}
}

// Clear resets the raster to the background color and drops any preview.
func (c *Canvas) Clear() {
	fill(c.img, Background)
	c.clearPreview()
	c.touch()
}

// Resize replaces the raster with a w×h one. Existing content is kept at the
// origin and clipped; newly exposed area is background.
func (c *Canvas) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if c.Size() == image.Pt(w, h) {
		return nil
	}

	next := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(next, Background)
	draw.Draw(next, c.img.Bounds(), c.img, image.Point{}, draw.Src)

	c.img = next
	c.preview = image.NewRGBA(image.Rect(0, 0, w, h))
	c.hasPreview = false
	c.touch()
	return nil
}

// Composite returns the raster with the preview drawn over it.
func (c *Canvas) Composite() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	draw.Draw(out, out.Bounds(), c.img, image.Point{}, draw.Src)
	if c.hasPreview {
		draw.Draw(out, out.Bounds(), c.preview, image.Point{}, draw.Over)
	}
	return out
}

func (c *Canvas) clearPreview() {
	if c.hasPreview {
		fill(c.preview, color.Transparent)
	}
	c.hasPreview = false
}

func (c *Canvas) touch() {
	c.version++
}
