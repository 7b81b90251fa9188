package ui

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// imageTexture mirrors a Go image on the GPU and re-uploads it when the
// owner's version counter moves.
type imageTexture struct {
	tex     rl.Texture2D
	loaded  bool
	synced  bool
	version uint64
	pixels  []color.RGBA
}

// Sync uploads img if version differs from the last upload. A nil img
// unloads the texture.
func (t *imageTexture) Sync(version uint64, img func() *image.RGBA) {
	if t.synced && t.version == version {
		return
	}
	t.synced, t.version = true, version

	src := img()
	if src == nil {
		t.Unload()
		return
	}

	size := src.Bounds().Size()
	if t.loaded && int(t.tex.Width) == size.X && int(t.tex.Height) == size.Y {
		rl.UpdateTexture(t.tex, t.rgba(src))
		return
	}

	t.Unload()
	rlImg := rl.NewImageFromImage(src)
	t.tex = rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	t.loaded = true
}

func (t *imageTexture) rgba(src *image.RGBA) []color.RGBA {
	b := src.Bounds()
	n := b.Dx() * b.Dy()
	if cap(t.pixels) < n {
		t.pixels = make([]color.RGBA, n)
	}
	t.pixels = t.pixels[:n]
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			p := row[x*4 : x*4+4]
			t.pixels[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
			i++
		}
	}
	return t.pixels
}

func (t *imageTexture) Draw(x, y float32) bool {
	if !t.loaded {
		return false
	}
	rl.DrawTexture(t.tex, int32(x), int32(y), rl.White)
	return true
}

func (t *imageTexture) Size() (float32, float32) {
	return float32(t.tex.Width), float32(t.tex.Height)
}

func (t *imageTexture) Unload() {
	if t.loaded {
		rl.UnloadTexture(t.tex)
	}
	t.loaded = false
}
