package gallery

import (
	"context"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/artstudio/internal/store"
	"github.com/ha1tch/artstudio/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.SetupTestStore(t), zerolog.Nop())
}

func countArtists(t *testing.T, s *Service) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM artists`).Scan(&n))
	return n
}

func TestGetOrCreateArtist_SameIDForSameTrimmedName(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	names := []string{"Ada", "  Ada", "Ada  ", "\tAda\n"}
	first, err := s.GetOrCreateArtist(ctx, names[0])
	require.NoError(t, err)

	for _, n := range names[1:] {
		id, err := s.GetOrCreateArtist(ctx, n)
		require.NoError(t, err)
		assert.Equal(t, first, id, "name %q", n)
	}
	assert.Equal(t, 1, countArtists(t, s))
}

func TestGetOrCreateArtist_ExactMatch(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	a, err := s.GetOrCreateArtist(ctx, "Ada")
	require.NoError(t, err)
	b, err := s.GetOrCreateArtist(ctx, "ada")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, countArtists(t, s))
}

func TestGetOrCreateArtist_BlankName(t *testing.T) {
	s := newTestService(t)

	for _, name := range []string{"", "   ", "\t"} {
		_, err := s.GetOrCreateArtist(context.Background(), name)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Equal(t, 0, countArtists(t, s))
}

func TestListArtists_SortedByName(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	for _, n := range []string{"Monet", "Da Vinci", "Picasso"} {
		_, err := s.GetOrCreateArtist(ctx, n)
		require.NoError(t, err)
	}

	artists, err := s.ListArtists(ctx)
	require.NoError(t, err)

	var names []string
	for _, a := range artists {
		names = append(names, a.Name)
		assert.Positive(t, a.ID)
	}
	assert.Equal(t, []string{"Da Vinci", "Monet", "Picasso"}, names)
}

func TestListArtists_QueryErrorReturnsEmpty(t *testing.T) {
	st := testutil.SetupTestStore(t)
	s := NewService(st, zerolog.Nop())
	require.NoError(t, st.Close())

	artists, err := s.ListArtists(context.Background())
	assert.ErrorIs(t, err, store.ErrQuery)
	assert.NotNil(t, artists)
	assert.Empty(t, artists)
}

func TestAddArtwork(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	artistID, err := s.GetOrCreateArtist(ctx, "Ada")
	require.NoError(t, err)
	img := testutil.PNG(t, 4, 4, color.Black)

	tests := []struct {
		name  string
		title string
		image []byte
	}{
		{"with image", "Sketch", img},
		{"empty title", "", img},
		{"no image", "Blank", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := s.Search(ctx, "")
			require.NoError(t, err)

			id, err := s.AddArtwork(ctx, tt.title, artistID, tt.image)
			require.NoError(t, err)

			after, err := s.Search(ctx, "")
			require.NoError(t, err)
			require.Len(t, after, len(before)+1)

			got := after[len(after)-1]
			assert.Equal(t, id, got.ID)
			assert.Equal(t, tt.title, got.Title)
			assert.Equal(t, "Ada", got.ArtistName)
			assert.Equal(t, artistID, got.ArtistID)
			if tt.image == nil {
				assert.Empty(t, got.Image)
			} else {
				assert.Equal(t, tt.image, got.Image)
			}
		})
	}
}

func TestAddArtwork_InvalidArtist(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.AddArtwork(ctx, "Sketch", 0, nil)
	assert.ErrorIs(t, err, ErrValidation)

	// Unknown artist id trips the foreign key.
	_, err = s.AddArtwork(ctx, "Sketch", 77, nil)
	assert.ErrorIs(t, err, store.ErrQuery)

	rows, err := s.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateArtwork(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	ada, err := s.GetOrCreateArtist(ctx, "Ada")
	require.NoError(t, err)
	bob, err := s.GetOrCreateArtist(ctx, "Bob")
	require.NoError(t, err)
	img := testutil.PNG(t, 2, 2, color.White)
	id, err := s.AddArtwork(ctx, "Draft", ada, img)
	require.NoError(t, err)

	require.NoError(t, s.UpdateArtwork(ctx, id, "  Final  ", bob))

	got, err := s.artwork(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "Bob", got.ArtistName)
	assert.Equal(t, img, got.Image)
}

func TestUpdateArtwork_BlankTitleRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	ada, err := s.GetOrCreateArtist(ctx, "Ada")
	require.NoError(t, err)
	id, err := s.AddArtwork(ctx, "Keep", ada, nil)
	require.NoError(t, err)

	for _, title := range []string{"", "   "} {
		err := s.UpdateArtwork(ctx, id, title, ada)
		assert.ErrorIs(t, err, ErrValidation)
	}

	got, err := s.artwork(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Keep", got.Title)
}

func TestUpdateArtwork_Missing(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	ada, err := s.GetOrCreateArtist(ctx, "Ada")
	require.NoError(t, err)

	assert.ErrorIs(t, s.UpdateArtwork(ctx, 99, "Title", ada), ErrNotFound)
	assert.ErrorIs(t, s.UpdateArtwork(ctx, 99, "Title", 0), ErrValidation)
}

func TestDeleteArtwork(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	ada, err := s.GetOrCreateArtist(ctx, "Ada")
	require.NoError(t, err)
	keep, err := s.AddArtwork(ctx, "Keep", ada, nil)
	require.NoError(t, err)
	drop, err := s.AddArtwork(ctx, "Drop", ada, nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteArtwork(ctx, drop))

	rows, err := s.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, keep, rows[0].ID)

	// Deleting again is an error, not a crash.
	assert.ErrorIs(t, s.DeleteArtwork(ctx, drop), ErrNotFound)

	_, err = s.artwork(ctx, drop)
	assert.ErrorIs(t, err, ErrNotFound)
}

func seedSearch(t *testing.T, s *Service) {
	t.Helper()
	ctx := context.Background()
	data := []struct{ title, artist string }{
		{"Starry Night", "Vincent van Gogh"},
		{"Sunflowers", "Vincent van Gogh"},
		{"Guernica", "Pablo Picasso"},
		{"100% Cotton", "Ada"},
		{"snake_case", "Ada"},
	}
	for _, d := range data {
		_, err := s.Publish(ctx, d.title, d.artist, nil)
		require.NoError(t, err)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	seedSearch(t, s)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty returns all in insertion order", "", []string{"Starry Night", "Sunflowers", "Guernica", "100% Cotton", "snake_case"}},
		{"blank returns all", "   ", []string{"Starry Night", "Sunflowers", "Guernica", "100% Cotton", "snake_case"}},
		{"title substring", "flow", []string{"Sunflowers"}},
		{"artist substring", "Picasso", []string{"Guernica"}},
		{"title or artist", "van", []string{"Starry Night", "Sunflowers"}},
		{"ascii case-insensitive", "GUERN", []string{"Guernica"}},
		{"percent is literal", "%", []string{"100% Cotton"}},
		{"underscore is literal", "_", []string{"snake_case"}},
		{"no match", "Monet", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.Search(ctx, tt.text)
			require.NoError(t, err)

			var titles []string
			for _, r := range rows {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.want, titles)

			again, err := s.Search(ctx, tt.text)
			require.NoError(t, err)
			assert.Equal(t, rows, again)
		})
	}
}

func TestPublish_CreatesArtistAndArtwork(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	img := testutil.PNG(t, 3, 3, color.White)

	id, err := s.Publish(ctx, "Sketch1", "Ada", img)
	require.NoError(t, err)

	artists, err := s.ListArtists(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Ada", artists[0].Name)

	rows, err := s.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, "Sketch1", rows[0].Title)
	assert.Equal(t, artists[0].ID, rows[0].ArtistID)

	// Publishing again under the same nickname reuses the artist.
	_, err = s.Publish(ctx, "Sketch2", " Ada ", img)
	require.NoError(t, err)
	assert.Equal(t, 1, countArtists(t, s))
}

func TestPublish_BlankArtistInsertsNothing(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Publish(ctx, "Sketch1", "  ", nil)
	assert.ErrorIs(t, err, ErrValidation)

	rows, err := s.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 0, countArtists(t, s))
}

func TestReload_KeepsRowsOnFailure(t *testing.T) {
	ctx := context.Background()
	st := testutil.SetupTestStore(t)
	s := NewService(st, zerolog.Nop())
	seedSearch(t, s)

	require.NoError(t, s.SetFilter(ctx, " van "))
	assert.Equal(t, "van", s.Filter())
	require.Len(t, s.Rows(), 2)

	require.NoError(t, st.Close())
	assert.ErrorIs(t, s.Reload(ctx), store.ErrQuery)
	assert.Len(t, s.Rows(), 2)
}

func TestSetFilter_FailureKeepsFilter(t *testing.T) {
	ctx := context.Background()
	st := testutil.SetupTestStore(t)
	s := NewService(st, zerolog.Nop())
	seedSearch(t, s)

	require.NoError(t, s.SetFilter(ctx, "van"))
	require.Len(t, s.Rows(), 2)

	require.NoError(t, st.Close())
	assert.ErrorIs(t, s.SetFilter(ctx, "zzz"), store.ErrQuery)
	assert.Equal(t, "van", s.Filter())
	assert.Len(t, s.Rows(), 2)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}
