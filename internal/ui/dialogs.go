package ui

import (
	"context"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/artstudio/internal/galleryview"
)

func enterPressed() bool {
	return rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)
}

func (app *App) updateDialog(ctx context.Context, mouse rl.Vector2) {
	v := app.studio.Gallery

	// A notice may sit on top of the editor, so it goes first.
	switch {
	case v.Notice() != nil:
		if app.okButton.Update(mouse) || enterPressed() || rl.IsKeyPressed(rl.KeyEscape) {
			v.DismissNotice()
		}

	case v.Confirm() != nil:
		switch {
		case app.yesButton.Update(mouse):
			v.ConfirmDelete(ctx, true)
		case app.noButton.Update(mouse), rl.IsKeyPressed(rl.KeyEscape):
			v.ConfirmDelete(ctx, false)
		}

	case v.Editor() != nil:
		app.updateEditor(ctx, mouse, v.Editor())
	}
}

func (app *App) updateEditor(ctx context.Context, mouse rl.Vector2, e *galleryview.Editor) {
	v := app.studio.Gallery
	if app.editing != e {
		app.editing = e
		app.editField.focused = true
		app.artistScroll = max(e.Selected-2, 0)
	}

	_, submitted := app.editField.Update(mouse, &e.Title)

	list := app.artistList
	visible := int(list.Height) / rowHeight
	if rl.CheckCollisionPointRec(mouse, list) {
		app.artistScroll -= int(rl.GetMouseWheelMove())
		if leftPressed() {
			if i := app.artistScroll + int(mouse.Y-list.Y)/rowHeight; i < len(e.Artists) {
				e.Selected = i
			}
		}
	}
	app.artistScroll = max(min(app.artistScroll, len(e.Artists)-visible), 0)

	switch {
	case app.submitButton.Update(mouse) || submitted:
		v.SubmitEdit(ctx)
	case app.cancelButton.Update(mouse) || rl.IsKeyPressed(rl.KeyEscape):
		v.CancelEdit()
	}
}

func (app *App) drawDialog() {
	v := app.studio.Gallery
	rl.DrawRectangle(0, 0, int32(app.screenW), int32(app.screenH), colorShade)

	switch {
	case v.Notice() != nil:
		if v.Editor() != nil {
			app.drawEditor(v.Editor())
			rl.DrawRectangle(0, 0, int32(app.screenW), int32(app.screenH), colorShade)
		}
		n := v.Notice()
		c := rl.White
		switch n.Kind {
		case galleryview.NoticeWarning:
			c = rl.Yellow
		case galleryview.NoticeError:
			c = rl.Red
		}
		app.drawBox(n.Title, c)
		app.drawMessage(n.Text)
		app.okButton.Draw()

	case v.Confirm() != nil:
		app.drawBox("Confirm deletion", rl.White)
		app.drawMessage(v.Confirm().Prompt)
		app.yesButton.Draw()
		app.noButton.Draw()

	case v.Editor() != nil:
		app.drawEditor(v.Editor())
	}
}

func (app *App) drawBox(title string, c rl.Color) {
	d := app.dialogRect
	rl.DrawRectangleRec(d, colorPanel)
	rl.DrawRectangleLinesEx(d, 1, colorBorder)
	rl.DrawRectangle(int32(d.X), int32(d.Y), int32(d.Width), 24, colorBar)
	label(ascii(title), d.X+10, d.Y+7, c)
}

func (app *App) drawMessage(text string) {
	d := app.dialogRect
	for i, line := range strings.Split(text, "\n") {
		label(ascii(line), d.X+20, d.Y+40+float32(i*16), rl.White)
	}
}

func (app *App) drawEditor(e *galleryview.Editor) {
	app.drawBox("Edit artwork", rl.White)
	app.editField.Draw(ascii(e.Title))

	list := app.artistList
	label("ARTIST", list.X, list.Y-14, rl.LightGray)
	rl.DrawRectangleRec(list, colorField)
	rl.BeginScissorMode(int32(list.X), int32(list.Y), int32(list.Width), int32(list.Height))
	for i := app.artistScroll; i < len(e.Artists); i++ {
		y := list.Y + float32((i-app.artistScroll)*rowHeight)
		if y >= list.Y+list.Height {
			break
		}
		if i == e.Selected {
			rl.DrawRectangle(int32(list.X), int32(y), int32(list.Width), rowHeight, colorSelected)
		}
		label(ascii(e.Artists[i].Name), list.X+6, y+5, rl.White)
	}
	rl.EndScissorMode()
	rl.DrawRectangleLinesEx(list, 1, colorBorder)

	app.submitButton.Draw()
	app.cancelButton.Draw()
}
