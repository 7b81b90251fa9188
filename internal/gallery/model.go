package gallery

import "errors"

var (
	// ErrValidation is returned when input is rejected before touching the store.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when an artwork id does not exist.
	ErrNotFound = errors.New("artwork not found")
)

// Artist is a named entity artworks are attributed to.
type Artist struct {
	ID   int64
	Name string
}

// DisplayRow is one row of the arts_display view.
type DisplayRow struct {
	ID         int64
	Title      string
	ArtistName string // empty when the artist link is broken
	Image      []byte
	ArtistID   int64
}
