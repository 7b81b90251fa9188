// Package gallery mediates every read and write between the gallery UI and
// the store, and normalizes artist names to artist ids.
package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ha1tch/artstudio/internal/store"
)

const displayColumns = `ArtId, Title, ArtistName, Pixmap, ArtistId`

// Service wraps the store and keeps the currently loaded rows and filter.
type Service struct {
	db  *sql.DB
	log zerolog.Logger

	filter string
	rows   []DisplayRow
}

func NewService(st *store.Store, log zerolog.Logger) *Service {
	return &Service{
		db:  st.DB(),
		log: log.With().Str("component", "gallery-service").Logger(),
	}
}

// ListArtists returns every artist ordered by name. On failure it returns an
// empty slice together with the error.
func (s *Service) ListArtists(ctx context.Context) ([]Artist, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ArtistId, Name FROM artists ORDER BY Name`)
	if err != nil {
		return []Artist{}, queryErr("list artists", err)
	}
	defer rows.Close()

	artists := []Artist{}
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return []Artist{}, queryErr("scan artist", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return []Artist{}, queryErr("list artists", err)
	}
	return artists, nil
}

// GetOrCreateArtist returns the id of the artist with the trimmed name,
// inserting the artist first if needed.
func (s *Service) GetOrCreateArtist(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: artist name is empty", ErrValidation)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT ArtistId FROM artists WHERE Name = ?`, name).Scan(&id)
	switch {
	case err == nil:
		return id, nil
	case !errors.Is(err, sql.ErrNoRows):
		return 0, queryErr("find artist", err)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO artists (Name) VALUES (?)`, name)
	if err != nil {
		return 0, queryErr("create artist", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, queryErr("create artist", err)
	}

	s.log.Info().Int64("artist_id", id).Str("name", name).Msg("created artist")
	return id, nil
}

// AddArtwork inserts a new artwork and returns its id. A nil image is
// stored as an empty blob.
func (s *Service) AddArtwork(ctx context.Context, title string, artistID int64, image []byte) (int64, error) {
	if artistID <= 0 {
		return 0, fmt.Errorf("%w: artist id not specified", ErrValidation)
	}
	if image == nil {
		image = []byte{}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO arts (Title, ArtistId, Pixmap) VALUES (?, ?, ?)`,
		title, artistID, image,
	)
	if err != nil {
		return 0, queryErr("add artwork", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, queryErr("add artwork", err)
	}

	s.log.Debug().Int64("art_id", id).Int64("artist_id", artistID).Int("bytes", len(image)).Msg("added artwork")
	return id, nil
}

// UpdateArtwork changes the title and artist of an artwork. The image is
// immutable.
func (s *Service) UpdateArtwork(ctx context.Context, id int64, title string, artistID int64) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title is empty", ErrValidation)
	}
	if artistID <= 0 {
		return fmt.Errorf("%w: artist id not specified", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE arts SET Title = ?, ArtistId = ? WHERE ArtId = ?`,
		title, artistID, id,
	)
	if err != nil {
		return queryErr("update artwork", err)
	}
	if err := expectOne(res, id); err != nil {
		return err
	}

	s.log.Debug().Int64("art_id", id).Int64("artist_id", artistID).Msg("updated artwork")
	return nil
}

// DeleteArtwork removes one artwork.
func (s *Service) DeleteArtwork(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM arts WHERE ArtId = ?`, id)
	if err != nil {
		return queryErr("delete artwork", err)
	}
	if err := expectOne(res, id); err != nil {
		return err
	}

	s.log.Debug().Int64("art_id", id).Msg("deleted artwork")
	return nil
}

// Search returns display rows whose title or artist name contains text.
// Blank text returns every row. Matching is case-insensitive for ASCII
// letters and treats text literally (no wildcards).
func (s *Service) Search(ctx context.Context, text string) ([]DisplayRow, error) {
	text = strings.TrimSpace(text)

	query := `SELECT ` + displayColumns + ` FROM arts_display`
	var args []any
	if text != "" {
		pattern := "%" + escapeLike(text) + "%"
		query += ` WHERE Title LIKE ? ESCAPE '\' OR ArtistName LIKE ? ESCAPE '\'`
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY ArtId`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryErr("search artworks", err)
	}
	defer rows.Close()

	var out []DisplayRow
	for rows.Next() {
		r, err := scanDisplayRow(rows)
		if err != nil {
			return nil, queryErr("scan artwork", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr("search artworks", err)
	}
	return out, nil
}

// artwork returns the display row for one artwork.
func (s *Service) artwork(ctx context.Context, id int64) (DisplayRow, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+displayColumns+` FROM arts_display WHERE ArtId = ?`, id)
	r, err := scanDisplayRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return DisplayRow{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return DisplayRow{}, queryErr("get artwork", err)
	}
	return r, nil
}

// Publish resolves (or creates) the artist by name and inserts the artwork.
// Nothing is inserted when the artist cannot be resolved.
func (s *Service) Publish(ctx context.Context, title, artistName string, image []byte) (int64, error) {
	artistID, err := s.GetOrCreateArtist(ctx, artistName)
	if err != nil {
		s.log.Error().Err(err).Str("artist", artistName).Msg("publish: resolve artist")
		return 0, fmt.Errorf("publish: %w", err)
	}

	id, err := s.AddArtwork(ctx, title, artistID, image)
	if err != nil {
		s.log.Error().Err(err).Str("title", title).Msg("publish: add artwork")
		return 0, fmt.Errorf("publish: %w", err)
	}

	s.log.Info().Int64("art_id", id).Str("title", title).Str("artist", strings.TrimSpace(artistName)).Msg("published artwork")
	return id, nil
}

// SetFilter reloads the rows with a new search text. On failure both the
// filter and the rows stay as they were.
func (s *Service) SetFilter(ctx context.Context, text string) error {
	filter := strings.TrimSpace(text)
	rows, err := s.Search(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Str("filter", filter).Msg("filter failed")
		return err
	}
	s.filter, s.rows = filter, rows
	return nil
}

// Reload re-runs the current filter. On failure the previously loaded rows
// are kept.
func (s *Service) Reload(ctx context.Context) error {
	rows, err := s.Search(ctx, s.filter)
	if err != nil {
		s.log.Error().Err(err).Str("filter", s.filter).Msg("reload failed")
		return err
	}
	s.rows = rows
	return nil
}

// Filter returns the current search text.
func (s *Service) Filter() string {
	return s.filter
}

// Rows returns the rows loaded by the last successful Reload.
func (s *Service) Rows() []DisplayRow {
	return s.rows
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDisplayRow(sc scanner) (DisplayRow, error) {
	var (
		r      DisplayRow
		artist sql.NullString
	)
	if err := sc.Scan(&r.ID, &r.Title, &artist, &r.Image, &r.ArtistID); err != nil {
		return DisplayRow{}, err
	}
	r.ArtistName = artist.String
	return r, nil
}

func expectOne(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return queryErr("rows affected", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

func queryErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", store.ErrQuery, op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
