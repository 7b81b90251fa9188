// Package store owns the SQLite file behind the gallery: schema creation,
// bootstrap data and the arts_display view.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

var (
	// ErrSchema marks failures while preparing the database. They are fatal
	// at startup.
	ErrSchema = errors.New("schema setup failed")
	// ErrQuery marks failures executing a statement against a ready database.
	ErrQuery = errors.New("query failed")
)

// Options configures Open.
type Options struct {
	Path        string
	SeedArtists bool
}

// Store is the single database handle shared by the gallery.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the database at opts.Path and brings the
// schema up to date.
func Open(ctx context.Context, opts Options, log zerolog.Logger) (*Store, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("%w: empty database path", ErrSchema)
	}

	db, err := sql.Open("sqlite", dsn(opts.Path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSchema, opts.Path, err)
	}
	// One connection for the lifetime of the process; the UI is the only caller.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{
		db:  db,
		log: log.With().Str("component", "store").Logger(),
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: connect %s: %v", ErrSchema, opts.Path, err)
	}

	if err := s.createSchema(ctx, opts.SeedArtists); err != nil {
		db.Close()
		return nil, err
	}

	s.log.Info().Str("path", opts.Path).Msg("database ready")
	return s, nil
}

// dsn turns a path or file: URI into a DSN with foreign keys enforced.
func dsn(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema(ctx context.Context, seed bool) error {
	if _, err := s.db.ExecContext(ctx, schemaArtists); err != nil {
		return fmt.Errorf("%w: create artists: %v", ErrSchema, err)
	}
	if _, err := s.db.ExecContext(ctx, schemaArts); err != nil {
		return fmt.Errorf("%w: create arts: %v", ErrSchema, err)
	}
	if err := s.migrateLegacyKey(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, schemaDisplayView); err != nil {
		return fmt.Errorf("%w: create arts_display: %v", ErrSchema, err)
	}
	if seed {
		if err := s.seedArtists(ctx); err != nil {
			return err
		}
	}
	return nil
}

// migrateLegacyKey renames the Artld column written by older releases.
func (s *Store) migrateLegacyKey(ctx context.Context) error {
	columns, err := s.columns(ctx, "arts")
	if err != nil {
		return fmt.Errorf("%w: inspect arts: %v", ErrSchema, err)
	}
	if !columns[legacyArtKey] || columns["ArtId"] {
		return nil
	}

	// The view may still reference the old name.
	if _, err := s.db.ExecContext(ctx, `DROP VIEW IF EXISTS arts_display`); err != nil {
		return fmt.Errorf("%w: drop arts_display: %v", ErrSchema, err)
	}
	if _, err := s.db.ExecContext(ctx, `ALTER TABLE arts RENAME COLUMN `+legacyArtKey+` TO ArtId`); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrSchema, legacyArtKey, err)
	}
	s.log.Warn().Str("from", legacyArtKey).Str("to", "ArtId").Msg("renamed legacy artwork key column")
	return nil
}

func (s *Store) columns(ctx context.Context, table string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out[name] = true
	}
	return out, rows.Err()
}

func (s *Store) seedArtists(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&count); err != nil {
		return fmt.Errorf("%w: count artists: %v", ErrSchema, err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: seed artists: %v", ErrSchema, err)
	}
	defer tx.Rollback()

	for _, name := range DefaultArtists {
		if _, err := tx.ExecContext(ctx, `INSERT INTO artists (Name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("%w: seed artist %q: %v", ErrSchema, name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: seed artists: %v", ErrSchema, err)
	}

	s.log.Info().Int("count", len(DefaultArtists)).Msg("seeded artists")
	return nil
}
