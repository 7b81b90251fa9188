// Package galleryview is the state behind the gallery tab: the loaded table,
// the selected artwork's detail pane, and the modal delete/edit flows.
package galleryview

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"github.com/ha1tch/artstudio/internal/gallery"
	"github.com/ha1tch/artstudio/internal/raster"
)

// Placeholder texts for the image area.
const (
	PlaceholderNoSelection = "Select artwork to view"
	PlaceholderNoImage     = "Image unavailable"
	PlaceholderBadImage    = "Image load error"

	EmptyField = "—"
)

// Default image area, matching a 300×300 frame with a 10px margin.
const (
	DefaultImageWidth  = 280
	DefaultImageHeight = 280
)

// Service is the part of the gallery service the view needs.
type Service interface {
	ListArtists(ctx context.Context) ([]gallery.Artist, error)
	UpdateArtwork(ctx context.Context, id int64, title string, artistID int64) error
	DeleteArtwork(ctx context.Context, id int64) error
	SetFilter(ctx context.Context, text string) error
	Reload(ctx context.Context) error
	Filter() string
	Rows() []gallery.DisplayRow
}

// Detail is the content of the detail pane.
type Detail struct {
	ID     string
	Title  string
	Artist string

	// Image is the decoded artwork scaled to the image area, or nil with
	// Placeholder set.
	Image       *image.RGBA
	Placeholder string
}

// View is the gallery tab state. At most one row is selected.
type View struct {
	svc Service
	log zerolog.Logger

	selected int
	detail   Detail
	decoded  image.Image
	areaW    int
	areaH    int
	version  uint64

	confirm *Confirm
	editor  *Editor
	notice  *Notice
}

func New(svc Service, log zerolog.Logger) *View {
	v := &View{
		svc:   svc,
		log:   log.With().Str("component", "gallery-view").Logger(),
		areaW: DefaultImageWidth,
		areaH: DefaultImageHeight,
	}
	v.clearDetails()
	return v
}

// Load performs the initial query.
func (v *View) Load(ctx context.Context) error {
	if err := v.svc.Reload(ctx); err != nil {
		v.postError("Data selection error", err)
		return err
	}
	return nil
}

// Refresh re-runs the current query and clears the detail pane.
func (v *View) Refresh(ctx context.Context) {
	if err := v.svc.Reload(ctx); err != nil {
		v.postError("Refresh failed", err)
	}
	v.clearDetails()
}

// Search filters the table by title or artist.
func (v *View) Search(ctx context.Context, text string) {
	if err := v.svc.SetFilter(ctx, text); err != nil {
		v.postError("Search failed", err)
		return
	}
	v.clearDetails()
}

func (v *View) Rows() []gallery.DisplayRow {
	return v.svc.Rows()
}

func (v *View) Filter() string {
	return v.svc.Filter()
}

// Select shows row i in the detail pane. An out of range index deselects.
func (v *View) Select(i int) {
	rows := v.svc.Rows()
	if i < 0 || i >= len(rows) {
		v.clearDetails()
		return
	}
	row := rows[i]
	v.selected = i
	v.detail = Detail{
		ID:     fmt.Sprint(row.ID),
		Title:  row.Title,
		Artist: row.ArtistName,
	}
	v.showImage(row.Image)
}

// Deselect clears the selection and the detail pane.
func (v *View) Deselect() {
	v.clearDetails()
}

// Selected returns the selected row index, or -1.
func (v *View) Selected() int {
	return v.selected
}

func (v *View) selectedRow() (gallery.DisplayRow, bool) {
	rows := v.svc.Rows()
	if v.selected < 0 || v.selected >= len(rows) {
		return gallery.DisplayRow{}, false
	}
	return rows[v.selected], true
}

// selectID selects the row with the given artwork id, or deselects when it
// is not loaded.
func (v *View) selectID(id int64) {
	for i, r := range v.svc.Rows() {
		if r.ID == id {
			v.Select(i)
			return
		}
	}
	v.clearDetails()
}

func (v *View) Detail() Detail {
	return v.detail
}

// Version changes whenever Detail changes.
func (v *View) Version() uint64 {
	return v.version
}

// SetImageArea sets the box the detail image is scaled into.
func (v *View) SetImageArea(w, h int) {
	if w <= 0 || h <= 0 || (w == v.areaW && h == v.areaH) {
		return
	}
	v.areaW, v.areaH = w, h
	if v.decoded != nil {
		v.detail.Image = raster.Fit(v.decoded, w, h)
		v.version++
	}
}

func (v *View) showImage(data []byte) {
	v.version++
	img, mimeType, err := raster.Decode(data)
	switch {
	case errors.Is(err, raster.ErrNoImage):
		v.decoded = nil
		v.detail.Placeholder = PlaceholderNoImage
		return
	case err != nil:
		v.log.Warn().Err(err).Str("id", v.detail.ID).Str("mime", mimeType).Msg("cannot decode artwork image")
		v.decoded = nil
		v.detail.Placeholder = PlaceholderBadImage
		return
	}
	v.decoded = img
	v.detail.Image = raster.Fit(img, v.areaW, v.areaH)
}

func (v *View) clearDetails() {
	v.selected = -1
	v.decoded = nil
	v.detail = Detail{
		ID:          EmptyField,
		Title:       EmptyField,
		Artist:      EmptyField,
		Placeholder: PlaceholderNoSelection,
	}
	v.version++
}

// ShowPublished reloads the table and selects the newly published artwork.
func (v *View) ShowPublished(ctx context.Context, id int64) {
	if err := v.svc.Reload(ctx); err != nil {
		v.postError("Refresh failed", err)
		return
	}
	v.selectID(id)
}
