package ui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/artstudio/internal/panel"
	"github.com/ha1tch/artstudio/internal/raster"
)

func swatchRect(i int) rl.Rectangle {
	return rl.Rectangle{X: float32(10 + (i%6)*26), Y: float32(220 + (i/6)*26), Width: 22, Height: 22}
}

func (app *App) updateDraw(mouse rl.Vector2) {
	p := app.studio.Panel

	tools := raster.Tools()
	for i := range app.toolButtons {
		if app.toolButtons[i].Update(mouse) {
			p.SelectTool(tools[i])
		}
	}
	for i := range app.toolButtons {
		app.toolButtons[i].selected = tools[i] == p.Tool()
	}

	if leftPressed() {
		for i, c := range panel.Palette {
			if rl.CheckCollisionPointRec(mouse, swatchRect(i)) {
				p.SelectColor(c)
			}
		}
	}

	for i, ch := range panel.Channels() {
		if v, ok := app.colorSliders[i].Update(mouse); ok {
			p.SetChannel(ch, v)
		}
	}

	if v, ok := app.widthSlider.Update(mouse); ok {
		p.SetWidthFromSlider(v)
	}
	app.updateWidthField(mouse)

	if app.clearButton.Update(mouse) {
		p.Clear()
	}

	app.titleField.Update(mouse, &p.Title)
	_, submitted := app.artistField.Update(mouse, &p.Artist)
	if app.publishButton.Update(mouse) || submitted {
		app.studio.RequestPublish()
	}

	_, submitted = app.pathField.Update(mouse, &p.SavePath)
	if app.saveButton.Update(mouse) || submitted {
		app.studio.RequestSave()
	}

	app.updateCanvas(mouse)
}

// updateWidthField commits the numeric entry on Enter or when it loses
// focus, and mirrors the panel's value while it is not being edited.
func (app *App) updateWidthField(mouse rl.Vector2) {
	p := app.studio.Panel
	wasFocused := app.widthField.focused
	_, submitted := app.widthField.Update(mouse, &app.widthText)

	if submitted || (wasFocused && !app.widthField.focused) {
		if err := p.SetWidthText(app.widthText); err != nil {
			app.log.Debug().Err(err).Msg("width entry ignored")
		}
		app.widthText = strconv.Itoa(p.EntryValue())
	}
	if !app.widthField.focused {
		app.widthText = strconv.Itoa(p.EntryValue())
	}
}

func (app *App) updateCanvas(mouse rl.Vector2) {
	c := app.studio.Canvas
	pt := image.Pt(int(mouse.X-app.canvasRect.X), int(mouse.Y-app.canvasRect.Y))

	switch {
	case leftPressed() && rl.CheckCollisionPointRec(mouse, app.canvasRect):
		c.Press(pt)
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		c.Release(pt)
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && pt != c.Last():
		c.Move(pt)
	}
}

func (app *App) drawDraw() {
	p := app.studio.Panel
	c := app.studio.Canvas

	// Canvas
	app.canvasTex.Sync(c.Version(), c.Composite)
	app.canvasTex.Draw(app.canvasRect.X, app.canvasRect.Y)
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X: app.canvasRect.X - 1, Y: app.canvasRect.Y - 1,
		Width: app.canvasRect.Width + 2, Height: app.canvasRect.Height + 2,
	}, 1, colorBorder)

	mouse := rl.GetMousePosition()
	if rl.CheckCollisionPointRec(mouse, app.canvasRect) && !c.Dragging() {
		r := float32(c.Width()) / 2
		if c.Tool() == raster.ToolEraser {
			r *= 2
		}
		rl.DrawCircleLines(int32(mouse.X), int32(mouse.Y), max(r, 1), rl.Gray)
	}

	// Tool panel
	rl.DrawRectangle(0, topBar, leftPanel, int32(app.screenH-topBar-statusBar), colorPanel)
	label("TOOLS", 10, 50, rl.LightGray)
	for i := range app.toolButtons {
		app.toolButtons[i].Draw()
	}

	label("COLOR", 10, 206, rl.LightGray)
	for i, col := range panel.Palette {
		rect := swatchRect(i)
		rl.DrawRectangleRec(rect, rlColor(col))
		if col == p.Color() {
			rl.DrawRectangleLinesEx(rect, 2, rl.White)
		} else {
			rl.DrawRectangleLinesEx(rect, 1, colorControl)
		}
	}
	rl.DrawRectangle(10, 302, leftPanel-20, 16, rlColor(p.Color()))
	rl.DrawRectangleLines(10, 302, leftPanel-20, 16, rl.White)

	for i, ch := range panel.Channels() {
		label(ch.String(), 10, app.colorSliders[i].rect.Y+1, rl.LightGray)
		app.colorSliders[i].Draw(p.Value(ch))
	}

	app.widthSlider.Draw(p.SliderValue())
	app.widthField.Draw(app.widthText)
	app.clearButton.Draw()

	app.titleField.Draw(p.Title)
	app.artistField.Draw(p.Artist)
	app.publishButton.Draw()
	app.pathField.Draw(p.SavePath)
	app.saveButton.Draw()
	label(formatsHint(), 10, app.saveButton.rect.Y+30, rl.Gray)
}

func formatsHint() string {
	names := make([]string, 0, len(raster.Formats()))
	for _, f := range raster.Formats() {
		names = append(names, strings.ToUpper(string(f)))
	}
	return strings.Join(names, " ")
}

func (app *App) canvasInfo() string {
	c := app.studio.Canvas
	size := c.Size()
	return fmt.Sprintf("SIZE: %dX%d | TOOL: %s | WIDTH: %d", size.X, size.Y, c.Tool(), c.Width())
}
