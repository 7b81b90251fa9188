package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// stamp paints a round brush of diameter size centred at (x, y).
func stamp(img *image.RGBA, x, y, size int, c color.RGBA) {
	r := size / 2
	b := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			px, py := x+dx, y+dy
			if image.Pt(px, py).In(b) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

// drawLine walks from start to end with Bresenham's algorithm, stamping the
// brush at every step.
func drawLine(img *image.RGBA, start, end image.Point, size int, c color.RGBA) {
	dx := abs(end.X - start.X)
	dy := abs(end.Y - start.Y)
	sx, sy := 1, 1
	if start.X > end.X {
		sx = -1
	}
	if start.Y > end.Y {
		sy = -1
	}
	err := dx - dy

	x0, y0 := start.X, start.Y
	for {
		stamp(img, x0, y0, size, c)

		if x0 == end.X && y0 == end.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// normalized returns the box spanned by two corners, both inclusive, with
// Min at the top-left.
func normalized(a, b image.Point) (image.Point, image.Point) {
	return image.Pt(min(a.X, b.X), min(a.Y, b.Y)), image.Pt(max(a.X, b.X), max(a.Y, b.Y))
}

func drawRect(img *image.RGBA, a, b image.Point, size int, c color.RGBA) {
	tl, br := normalized(a, b)
	tr := image.Pt(br.X, tl.Y)
	bl := image.Pt(tl.X, br.Y)
	drawLine(img, tl, tr, size, c)
	drawLine(img, tr, br, size, c)
	drawLine(img, br, bl, size, c)
	drawLine(img, bl, tl, size, c)
}

// drawEllipse outlines the ellipse inscribed in the box spanned by a and b.
func drawEllipse(img *image.RGBA, a, b image.Point, size int, c color.RGBA) {
	tl, br := normalized(a, b)
	cx := float64(tl.X+br.X) / 2
	cy := float64(tl.Y+br.Y) / 2
	rx := float64(br.X-tl.X) / 2
	ry := float64(br.Y-tl.Y) / 2

	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(rx*rx+ry*ry)))
	if steps < 8 {
		steps = 8
	}

	var prev image.Point
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		p := image.Pt(
			int(math.Round(cx+math.Cos(angle)*rx)),
			int(math.Round(cy+math.Sin(angle)*ry)),
		)
		if i > 0 {
			drawLine(img, prev, p, size, c)
		} else {
			stamp(img, p.X, p.Y, size, c)
		}
		prev = p
	}
}

func fill(img *image.RGBA, c color.Color) {
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
