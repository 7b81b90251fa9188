package ui

import (
	"context"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const doubleClick = 0.4

func (app *App) visibleRows() int {
	return max(int(app.tableRect.Height)/rowHeight-1, 1)
}

func (app *App) updateGallery(ctx context.Context, mouse rl.Vector2) {
	v := app.studio.Gallery

	if changed, _ := app.searchField.Update(mouse, &app.searchText); changed {
		v.Search(ctx, app.searchText)
		app.scroll = 0
	}
	if app.refreshButton.Update(mouse) {
		v.Refresh(ctx)
	}
	if app.editButton.Update(mouse) {
		v.RequestEdit(ctx)
	}
	if app.deleteButton.Update(mouse) {
		v.RequestDelete()
	}

	rows := v.Rows()
	visible := app.visibleRows()
	if rl.CheckCollisionPointRec(mouse, app.tableRect) {
		app.scroll -= int(rl.GetMouseWheelMove())
	}
	app.scroll = max(min(app.scroll, len(rows)-visible), 0)

	body := app.tableRect
	body.Y += rowHeight
	body.Height -= rowHeight
	if leftPressed() && rl.CheckCollisionPointRec(mouse, body) {
		i := app.scroll + int(mouse.Y-body.Y)/rowHeight
		now := rl.GetTime()
		switch {
		case i >= len(rows):
			v.Deselect()
		case i == app.lastClickRow && now-app.lastClickTime < doubleClick:
			v.Select(i)
			v.RequestEdit(ctx)
		default:
			v.Select(i)
		}
		app.lastClickRow, app.lastClickTime = i, now
	}

	v.SetImageArea(int(app.imageRect.Width)-20, int(app.imageRect.Height)-20)
}

func (app *App) drawGallery() {
	v := app.studio.Gallery

	app.searchField.Draw(app.searchText)
	app.refreshButton.Draw()
	app.editButton.Draw()
	app.deleteButton.Draw()

	// Table
	t := app.tableRect
	rl.DrawRectangleRec(t, colorField)
	rl.DrawRectangle(int32(t.X), int32(t.Y), int32(t.Width), rowHeight, colorBar)
	cols := []float32{t.X + 6, t.X + 60, t.X + 60 + (t.Width-60)/2}
	for i, name := range []string{"ID", "TITLE", "ARTIST"} {
		label(name, cols[i], t.Y+5, rl.LightGray)
	}

	rows := v.Rows()
	rl.BeginScissorMode(int32(t.X), int32(t.Y+rowHeight), int32(t.Width), int32(t.Height-rowHeight))
	for i := app.scroll; i < len(rows) && i < app.scroll+app.visibleRows(); i++ {
		y := t.Y + float32(rowHeight*(i-app.scroll+1))
		if i == v.Selected() {
			rl.DrawRectangle(int32(t.X), int32(y), int32(t.Width), rowHeight, colorSelected)
		}
		artist := rows[i].ArtistName
		if artist == "" {
			artist = "-"
		}
		labelf(cols[0], y+5, rl.White, "%d", rows[i].ID)
		label(ascii(rows[i].Title), cols[1], y+5, rl.White)
		label(ascii(artist), cols[2], y+5, rl.White)
	}
	rl.EndScissorMode()
	rl.DrawRectangleLinesEx(t, 1, colorBorder)
	if len(rows) == 0 {
		label("No artworks", t.X+10, t.Y+rowHeight+6, rl.Gray)
	}

	// Detail pane
	d := v.Detail()
	x := app.imageRect.X
	labelf(x, 64, rl.White, "ID: %s", ascii(d.ID))
	labelf(x, 84, rl.White, "TITLE: %s", ascii(d.Title))
	labelf(x, 104, rl.White, "ARTIST: %s", ascii(d.Artist))

	r := app.imageRect
	rl.DrawRectangleRec(r, colorField)
	rl.DrawRectangleLinesEx(r, 1, colorBorder)

	app.detailTex.Sync(v.Version(), func() *image.RGBA { return d.Image })
	if d.Image != nil {
		w, h := app.detailTex.Size()
		app.detailTex.Draw(r.X+(r.Width-w)/2, r.Y+(r.Height-h)/2)
		return
	}
	w := rl.MeasureText(d.Placeholder, fontSize)
	rl.DrawText(d.Placeholder, int32(r.X+r.Width/2)-w/2, int32(r.Y+r.Height/2-fontSize/2), fontSize, rl.Gray)
}

// ascii swaps characters the default raylib font cannot draw.
func ascii(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r > 0x7e {
			r = '-'
		}
		out = append(out, r)
	}
	return string(out)
}
