// Package ui renders the studio in a raylib window and feeds it input.
package ui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/ha1tch/artstudio/internal/galleryview"
	"github.com/ha1tch/artstudio/internal/panel"
	"github.com/ha1tch/artstudio/internal/raster"
	"github.com/ha1tch/artstudio/internal/studio"
)

const (
	topBar     = 40
	statusBar  = 22
	leftPanel  = 180
	detailPane = 320
	rowHeight  = 20
)

type Tab int

const (
	TabDraw Tab = iota
	TabGallery
)

// App is the window state around a Studio.
type App struct {
	studio *studio.Studio
	log    zerolog.Logger

	screenW, screenH int

	tab  Tab
	tabs []Button

	// Draw tab
	toolButtons   []Button
	colorSliders  []Slider
	widthSlider   Slider
	widthField    TextField
	widthText     string
	clearButton   Button
	titleField    TextField
	artistField   TextField
	publishButton Button
	pathField     TextField
	saveButton    Button
	canvasRect    rl.Rectangle
	canvasTex     imageTexture

	// Gallery tab
	searchField   TextField
	searchText    string
	refreshButton Button
	editButton    Button
	deleteButton  Button
	tableRect     rl.Rectangle
	scroll        int
	lastClickRow  int
	lastClickTime float64
	imageRect     rl.Rectangle
	detailTex     imageTexture

	// Dialogs
	dialogRect   rl.Rectangle
	okButton     Button
	yesButton    Button
	noButton     Button
	submitButton Button
	cancelButton Button
	editField    TextField
	artistList   rl.Rectangle
	artistScroll int
	editing      *galleryview.Editor
}

// New builds the window state. The raylib window must already be open.
func New(s *studio.Studio, log zerolog.Logger) *App {
	app := &App{
		studio:       s,
		log:          log.With().Str("component", "ui").Logger(),
		screenW:      rl.GetScreenWidth(),
		screenH:      rl.GetScreenHeight(),
		lastClickRow: -1,
	}

	app.tabs = []Button{
		{rect: rl.Rectangle{X: 10, Y: 8, Width: 90, Height: 24}, text: "DRAW", selected: true},
		{rect: rl.Rectangle{X: 106, Y: 8, Width: 90, Height: 24}, text: "GALLERY"},
	}

	for i, t := range raster.Tools() {
		app.toolButtons = append(app.toolButtons, Button{
			rect:     rl.Rectangle{X: 10, Y: float32(64 + i*26), Width: leftPanel - 20, Height: 22},
			text:     t.String(),
			selected: t == s.Panel.Tool(),
		})
	}

	for i := range panel.Channels() {
		app.colorSliders = append(app.colorSliders, Slider{
			rect: rl.Rectangle{X: 24, Y: float32(326 + i*18), Width: leftPanel - 34, Height: 12},
			min:  0,
			max:  255,
		})
	}

	app.widthSlider = Slider{
		rect:  rl.Rectangle{X: 10, Y: 406, Width: 100, Height: 20},
		min:   raster.MinWidth,
		max:   raster.MaxWidth,
		label: "WIDTH",
	}
	app.widthField = TextField{rect: rl.Rectangle{X: 116, Y: 406, Width: 54, Height: 20}, maxLen: 2, numeric: true}
	app.clearButton = Button{rect: rl.Rectangle{X: 10, Y: 440, Width: leftPanel - 20, Height: 24}, text: "CLEAR"}
	app.titleField = TextField{rect: rl.Rectangle{X: 10, Y: 494, Width: leftPanel - 20, Height: 22}, label: "ARTWORK NAME", maxLen: 64}
	app.artistField = TextField{rect: rl.Rectangle{X: 10, Y: 538, Width: leftPanel - 20, Height: 22}, label: "NICKNAME", maxLen: 64}
	app.publishButton = Button{rect: rl.Rectangle{X: 10, Y: 566, Width: leftPanel - 20, Height: 24}, text: "PUBLISH"}
	app.pathField = TextField{rect: rl.Rectangle{X: 10, Y: 620, Width: leftPanel - 20, Height: 22}, label: "SAVE AS", maxLen: 255}
	app.saveButton = Button{rect: rl.Rectangle{X: 10, Y: 648, Width: leftPanel - 20, Height: 24}, text: "SAVE"}

	app.searchText = s.Gallery.Filter()
	app.searchField = TextField{rect: rl.Rectangle{X: 10, Y: 64, Width: 300, Height: 22}, label: "SEARCH", maxLen: 64}
	app.refreshButton = Button{rect: rl.Rectangle{X: 320, Y: 63, Width: 80, Height: 24}, text: "REFRESH"}
	app.editButton = Button{rect: rl.Rectangle{X: 406, Y: 63, Width: 80, Height: 24}, text: "EDIT"}
	app.deleteButton = Button{rect: rl.Rectangle{X: 492, Y: 63, Width: 80, Height: 24}, text: "DELETE"}

	app.layout()
	return app
}

// layout places everything that depends on the window size.
func (app *App) layout() {
	size := app.studio.Canvas.Size()
	app.canvasRect = rl.Rectangle{X: leftPanel + 10, Y: topBar + 10, Width: float32(size.X), Height: float32(size.Y)}

	w, h := float32(app.screenW), float32(app.screenH)
	app.tableRect = rl.Rectangle{X: 10, Y: 100, Width: w - detailPane - 20, Height: h - 100 - statusBar - 10}
	app.imageRect = rl.Rectangle{X: w - detailPane + 10, Y: 140, Width: 300, Height: 300}

	app.dialogRect = rl.Rectangle{X: w/2 - 210, Y: h/2 - 130, Width: 420, Height: 260}
	d := app.dialogRect
	bottom := d.Y + d.Height - 34
	app.okButton = Button{rect: rl.Rectangle{X: d.X + d.Width/2 - 40, Y: bottom, Width: 80, Height: 24}, text: "OK"}
	app.yesButton = Button{rect: rl.Rectangle{X: d.X + d.Width/2 - 90, Y: bottom, Width: 80, Height: 24}, text: "YES"}
	app.noButton = Button{rect: rl.Rectangle{X: d.X + d.Width/2 + 10, Y: bottom, Width: 80, Height: 24}, text: "NO"}
	app.submitButton = Button{rect: app.yesButton.rect, text: "SAVE"}
	app.cancelButton = Button{rect: app.noButton.rect, text: "CANCEL"}
	app.editField.rect = rl.Rectangle{X: d.X + 20, Y: d.Y + 50, Width: d.Width - 40, Height: 22}
	app.editField.label = "TITLE"
	app.editField.maxLen = 64
	app.artistList = rl.Rectangle{X: d.X + 20, Y: d.Y + 96, Width: d.Width - 40, Height: 120}
}

// viewport is the area the canvas may occupy.
func (app *App) viewport() (int, int) {
	return app.screenW - leftPanel - 20, app.screenH - topBar - statusBar - 20
}

func (app *App) resized() {
	app.screenW, app.screenH = rl.GetScreenWidth(), rl.GetScreenHeight()
	w, h := app.viewport()
	if err := app.studio.Canvas.Resize(w, h); err != nil {
		app.log.Warn().Err(err).Int("width", w).Int("height", h).Msg("canvas not resized")
	}
	app.layout()
	app.log.Debug().Int("width", app.screenW).Int("height", app.screenH).Msg("window resized")
}

// Update handles one frame of input.
func (app *App) Update(ctx context.Context) {
	if rl.IsWindowResized() {
		app.resized()
	}
	mouse := rl.GetMousePosition()

	// Dialogs capture all input while open.
	if app.studio.Gallery.Modal() {
		app.updateDialog(ctx, mouse)
		return
	}
	app.editing = nil

	for i := range app.tabs {
		if app.tabs[i].Update(mouse) {
			app.switchTab(Tab(i))
		}
	}

	switch app.tab {
	case TabDraw:
		app.updateDraw(mouse)
	case TabGallery:
		app.updateGallery(ctx, mouse)
	}
}

func (app *App) switchTab(t Tab) {
	if t == app.tab {
		return
	}
	if c := app.studio.Canvas; c.Dragging() {
		c.Release(c.Last())
	}
	app.tab = t
	for i := range app.tabs {
		app.tabs[i].selected = Tab(i) == t
	}
}

// Draw renders one frame.
func (app *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 40, G: 40, B: 40, A: 255})

	switch app.tab {
	case TabDraw:
		app.drawDraw()
	case TabGallery:
		app.drawGallery()
	}

	app.drawTopBar()
	app.drawStatus()

	if app.studio.Gallery.Modal() {
		app.drawDialog()
	}

	rl.EndDrawing()
}

func (app *App) drawTopBar() {
	rl.DrawRectangle(0, 0, int32(app.screenW), topBar, colorBar)
	for i := range app.tabs {
		app.tabs[i].Draw()
	}
	title := "ART STUDIO"
	w := rl.MeasureText(title, fontSize)
	rl.DrawText(title, int32(app.screenW)-w-10, topBar/2-fontSize/2, fontSize, rl.White)
}

func (app *App) drawStatus() {
	y := int32(app.screenH - statusBar)
	rl.DrawRectangle(0, y, int32(app.screenW), statusBar, colorBar)
	st := app.studio.Status()
	c := rl.LightGray
	if st.Err {
		c = rl.Red
	}
	rl.DrawText(st.Text, 10, y+statusBar/2-fontSize/2, fontSize, c)

	if app.tab == TabDraw {
		info := app.canvasInfo()
		w := rl.MeasureText(info, fontSize)
		rl.DrawText(info, int32(app.screenW)-w-10, y+statusBar/2-fontSize/2, fontSize, rl.Gray)
	}
}

// Unload frees GPU resources.
func (app *App) Unload() {
	app.canvasTex.Unload()
	app.detailTex.Unload()
}
