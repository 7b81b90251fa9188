package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 10

var (
	colorPanel    = rl.Color{R: 50, G: 50, B: 50, A: 255}
	colorBar      = rl.Color{R: 60, G: 60, B: 60, A: 255}
	colorControl  = rl.Color{R: 70, G: 70, B: 70, A: 255}
	colorHover    = rl.Color{R: 80, G: 80, B: 80, A: 255}
	colorSelected = rl.Color{R: 100, G: 100, B: 150, A: 255}
	colorBorder   = rl.Color{R: 90, G: 90, B: 90, A: 255}
	colorField    = rl.Color{R: 30, G: 30, B: 30, A: 255}
	colorShade    = rl.Color{R: 0, G: 0, B: 0, A: 160}
)

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func leftPressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Button is a push button or, with selected set by the owner, a radio button.
type Button struct {
	rect     rl.Rectangle
	text     string
	hover    bool
	selected bool
}

// Update reports whether the button was clicked this frame.
func (b *Button) Update(mouse rl.Vector2) bool {
	b.hover = rl.CheckCollisionPointRec(mouse, b.rect)
	return b.hover && leftPressed()
}

func (b *Button) Draw() {
	bg := colorControl
	if b.selected {
		bg = colorSelected
	} else if b.hover {
		bg = colorHover
	}
	rl.DrawRectangleRec(b.rect, bg)
	rl.DrawRectangleLinesEx(b.rect, 1, colorBorder)

	textW := rl.MeasureText(b.text, fontSize)
	textX := int32(b.rect.X + b.rect.Width/2 - float32(textW)/2)
	textY := int32(b.rect.Y + b.rect.Height/2 - fontSize/2)
	rl.DrawText(b.text, textX, textY, fontSize, rl.White)
}

// Slider is a horizontal integer slider.
type Slider struct {
	rect  rl.Rectangle
	min   int
	max   int
	label string
}

// Update returns the value under the mouse while the slider is dragged.
func (s *Slider) Update(mouse rl.Vector2) (int, bool) {
	if !rl.CheckCollisionPointRec(mouse, s.rect) || !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		return 0, false
	}
	rel := (mouse.X - s.rect.X) / s.rect.Width
	v := s.min + int(rel*float32(s.max-s.min)+0.5)
	return min(max(v, s.min), s.max), true
}

func (s *Slider) Draw(value int) {
	if s.label != "" {
		rl.DrawText(s.label, int32(s.rect.X), int32(s.rect.Y-14), fontSize, rl.LightGray)
	}
	rl.DrawRectangleRec(s.rect, colorBar)
	pos := s.rect.X + float32(value-s.min)/float32(s.max-s.min)*s.rect.Width
	rl.DrawRectangle(int32(pos-2), int32(s.rect.Y), 4, int32(s.rect.Height), rl.White)
}

// TextField is a single line text input. Only the focused field consumes
// typed characters.
type TextField struct {
	rect    rl.Rectangle
	label   string
	maxLen  int
	numeric bool
	focused bool
}

// Update edits text in place. changed is set when text was modified and
// submitted when Enter was pressed in the field.
func (f *TextField) Update(mouse rl.Vector2, text *string) (changed, submitted bool) {
	if leftPressed() {
		f.focused = rl.CheckCollisionPointRec(mouse, f.rect)
	}
	if !f.focused {
		return false, false
	}

	runes := []rune(*text)
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		if f.numeric && (r < '0' || r > '9') {
			continue
		}
		if f.maxLen > 0 && len(runes) >= f.maxLen {
			continue
		}
		runes = append(runes, r)
		changed = true
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(runes) > 0 {
		runes = runes[:len(runes)-1]
		changed = true
	}
	if changed {
		*text = string(runes)
	}
	return changed, rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)
}

func (f *TextField) Draw(text string) {
	if f.label != "" {
		rl.DrawText(f.label, int32(f.rect.X), int32(f.rect.Y-14), fontSize, rl.LightGray)
	}
	rl.DrawRectangleRec(f.rect, colorField)
	border := colorBorder
	if f.focused {
		border = rl.White
	}
	rl.DrawRectangleLinesEx(f.rect, 1, border)

	x := int32(f.rect.X + 4)
	y := int32(f.rect.Y + f.rect.Height/2 - fontSize/2)
	rl.BeginScissorMode(int32(f.rect.X), int32(f.rect.Y), int32(f.rect.Width), int32(f.rect.Height))
	rl.DrawText(text, x, y, fontSize, rl.White)
	if f.focused && int(rl.GetTime()*2)%2 == 0 {
		caret := x + rl.MeasureText(text, fontSize) + 1
		rl.DrawRectangle(caret, y, 1, fontSize, rl.White)
	}
	rl.EndScissorMode()
}

func label(text string, x, y float32, c rl.Color) {
	rl.DrawText(text, int32(x), int32(y), fontSize, c)
}

func labelf(x, y float32, c rl.Color, format string, args ...any) {
	label(fmt.Sprintf(format, args...), x, y, c)
}
