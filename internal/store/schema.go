package store

// Column names follow the files written by earlier releases, except the
// artwork key which is spelled ArtId everywhere (see migrateLegacyKey).
const schemaArtists = `
CREATE TABLE IF NOT EXISTS artists (
    ArtistId INTEGER PRIMARY KEY AUTOINCREMENT,
    Name TEXT NOT NULL UNIQUE
)`

const schemaArts = `
CREATE TABLE IF NOT EXISTS arts (
    ArtId INTEGER PRIMARY KEY AUTOINCREMENT,
    Title TEXT NOT NULL,
    ArtistId INTEGER NOT NULL,
    Pixmap BLOB,
    FOREIGN KEY (ArtistId) REFERENCES artists(ArtistId)
)`

// The left join keeps artworks visible when their artist link is broken.
const schemaDisplayView = `
CREATE VIEW IF NOT EXISTS arts_display AS
SELECT a.ArtId, a.Title, ar.Name AS ArtistName, a.Pixmap, a.ArtistId
FROM arts a
LEFT JOIN artists ar ON a.ArtistId = ar.ArtistId`

// legacyArtKey is the misspelled artwork key found in older files.
const legacyArtKey = "Artld"

// DefaultArtists are inserted when the artists table is empty.
var DefaultArtists = []string{
	"Leonardo da Vinci",
	"Vincent van Gogh",
	"Pablo Picasso",
	"Claude Monet",
}
