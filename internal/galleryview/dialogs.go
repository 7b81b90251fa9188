package galleryview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ha1tch/artstudio/internal/gallery"
)

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)

// Notice is a modal message the user must dismiss.
type Notice struct {
	Kind  NoticeKind
	Title string
	Text  string
}

// Confirm is a pending delete confirmation.
type Confirm struct {
	ArtID  int64
	Prompt string
}

// Editor is the modal edit form. The UI edits Title and Selected in place.
type Editor struct {
	ArtID    int64
	Title    string
	Artists  []gallery.Artist
	Selected int
}

// ArtistID returns the id of the selected artist, or 0.
func (e *Editor) ArtistID() int64 {
	if e.Selected < 0 || e.Selected >= len(e.Artists) {
		return 0
	}
	return e.Artists[e.Selected].ID
}

func (v *View) Notice() *Notice   { return v.notice }
func (v *View) Confirm() *Confirm { return v.confirm }
func (v *View) Editor() *Editor   { return v.editor }

func (v *View) DismissNotice() {
	v.notice = nil
}

// Modal reports whether a dialog is open and should capture all input.
func (v *View) Modal() bool {
	return v.notice != nil || v.confirm != nil || v.editor != nil
}

// RequestDelete opens the delete confirmation for the selected row.
func (v *View) RequestDelete() {
	row, ok := v.selectedRow()
	if !ok {
		v.post(NoticeWarning, "Warning", "Select record to delete")
		return
	}
	v.confirm = &Confirm{
		ArtID:  row.ID,
		Prompt: fmt.Sprintf("Delete artwork?\n\nTitle: %s\nArtist: %s", row.Title, row.ArtistName),
	}
}

// ConfirmDelete answers the pending confirmation. On failure the table is
// left as it was.
func (v *View) ConfirmDelete(ctx context.Context, yes bool) {
	c := v.confirm
	v.confirm = nil
	if c == nil || !yes {
		return
	}

	if err := v.svc.DeleteArtwork(ctx, c.ArtID); err != nil {
		v.postError("Delete failed", err)
		return
	}
	if err := v.svc.Reload(ctx); err != nil {
		v.postError("Refresh failed", err)
		v.clearDetails()
		return
	}
	v.clearDetails()
	v.post(NoticeInfo, "Success", "Record deleted")
}

// RequestEdit opens the editor for the selected row with the current title
// and artist preselected.
func (v *View) RequestEdit(ctx context.Context) {
	row, ok := v.selectedRow()
	if !ok {
		v.post(NoticeWarning, "Warning", "Select record to edit")
		return
	}

	artists, err := v.svc.ListArtists(ctx)
	if err != nil {
		v.postError("Cannot load artists", err)
		return
	}

	selected := 0
	for i, a := range artists {
		if a.ID == row.ArtistID {
			selected = i
			break
		}
	}
	v.editor = &Editor{
		ArtID:    row.ID,
		Title:    row.Title,
		Artists:  artists,
		Selected: selected,
	}
}

// SubmitEdit validates the form and saves it. A blank title keeps the
// editor open.
func (v *View) SubmitEdit(ctx context.Context) {
	e := v.editor
	if e == nil {
		return
	}
	title := strings.TrimSpace(e.Title)
	if title == "" {
		v.post(NoticeWarning, "Error", "Enter title")
		return
	}
	artistID := e.ArtistID()
	if artistID == 0 {
		v.post(NoticeWarning, "Error", "Select artist")
		return
	}
	v.editor = nil

	if err := v.svc.UpdateArtwork(ctx, e.ArtID, title, artistID); err != nil {
		v.postError("Update failed", err)
		return
	}
	if err := v.svc.Reload(ctx); err != nil {
		v.postError("Refresh failed", err)
		return
	}
	v.selectID(e.ArtID)
}

func (v *View) CancelEdit() {
	v.editor = nil
}

func (v *View) post(kind NoticeKind, title, text string) {
	v.notice = &Notice{Kind: kind, Title: title, Text: text}
}

func (v *View) postError(what string, err error) {
	v.log.Error().Err(err).Msg(what)
	kind := NoticeError
	if errors.Is(err, gallery.ErrValidation) {
		kind = NoticeWarning
	}
	v.post(kind, "Error", fmt.Sprintf("%s: %v", what, err))
}
