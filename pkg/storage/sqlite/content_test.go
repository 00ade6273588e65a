package sqlite

import (
	"context"
	"testing"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageFilter() storage.ListFilter {
	return storage.ListFilter{}
}

func movie(title string, rating *float64) content.Content {
	return content.Content{
		Title:       title,
		Description: "description of " + title,
		Type:        content.TypeMovie,
		Poster:      "https://image.tmdb.org/t/p/w500/poster.jpg",
		Backdrop:    content.Ptr("https://image.tmdb.org/t/p/original/backdrop.jpg"),
		Language:    "English",
		Category:    "Action",
		Year:        2001,
		Rating:      rating,
		MovieData: &content.MovieData{
			EmbedIframeLink: content.Ptr("https://player.example.com/" + title),
			DownloadLink:    "https://example.com/" + title + ".mkv",
		},
		Seasons: []content.Season{},
	}
}

func series(title string) content.Content {
	return content.Content{
		Title:       title,
		Description: "description of " + title,
		Type:        content.TypeSeries,
		Poster:      "https://image.tmdb.org/t/p/w500/series.jpg",
		Language:    "Korean",
		Category:    "Drama",
		Year:        2019,
		Seasons: []content.Season{
			{
				SeasonNumber: 1,
				Episodes: []content.Episode{
					{EpisodeNumber: 1, EpisodeTitle: "One", DownloadLink: "https://example.com/s1e1", Quality: content.QualityHD},
					{EpisodeNumber: 3, EpisodeTitle: "Three", DownloadLink: "https://example.com/s1e3", Quality: content.Quality4K},
				},
			},
		},
	}
}

func titles(list []content.Content) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Title
	}
	return out
}

func TestContentStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	in := movie("Heat", content.Ptr(8.3))
	in.DownloadCount = 42
	created, err := store.CreateContent(ctx, in)
	require.NoError(t, err)

	assert.True(t, storage.ValidID(created.ID))
	assert.Zero(t, created.DownloadCount)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := store.GetContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "https://example.com/Heat.mkv", got.MovieData.DownloadLink)
	assert.Equal(t, 8.3, *got.Rating)
	assert.NotNil(t, got.Seasons)

	s, err := store.CreateContent(ctx, series("Kingdom"))
	require.NoError(t, err)
	assert.Nil(t, s.MovieData)
	require.Len(t, s.Seasons, 1)
	assert.Equal(t, []content.Episode{
		{EpisodeNumber: 1, EpisodeTitle: "One", DownloadLink: "https://example.com/s1e1", Quality: content.QualityHD},
		{EpisodeNumber: 3, EpisodeTitle: "Three", DownloadLink: "https://example.com/s1e3", Quality: content.Quality4K},
	}, s.Seasons[0].Episodes)
}

func TestContentStorage_GetNotFound(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, err := store.GetContent(ctx, storage.NewID())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestContentStorage_List(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	seed := []content.Content{
		movie("Unrated", nil),
		movie("Good", content.Ptr(7.0)),
		series("Kingdom"),
		movie("Best", content.Ptr(9.1)),
		movie("Bad", content.Ptr(2.5)),
	}
	french := movie("Amelie", content.Ptr(8.0))
	french.Language = "French"
	french.Category = "Romance"
	seed = append(seed, french)

	for _, c := range seed {
		_, err := store.CreateContent(ctx, c)
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		list, err := store.ListContent(ctx, storage.ListFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Amelie", "Bad", "Best", "Kingdom", "Good", "Unrated"}, titles(list))
	})

	t.Run("type filter is exclusive", func(t *testing.T) {
		list, err := store.ListContent(ctx, storage.ListFilter{Type: content.TypeSeries})
		require.NoError(t, err)
		assert.Equal(t, []string{"Kingdom"}, titles(list))

		list, err = store.ListContent(ctx, storage.ListFilter{Type: content.TypeMovie})
		require.NoError(t, err)
		for _, c := range list {
			assert.Equal(t, content.TypeMovie, c.Type)
		}
		assert.Len(t, list, 5)
	})

	t.Run("filters are combined", func(t *testing.T) {
		list, err := store.ListContent(ctx, storage.ListFilter{Type: content.TypeMovie, Language: "French", Category: "Romance"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Amelie"}, titles(list))

		list, err = store.ListContent(ctx, storage.ListFilter{Language: "French", Category: "Action"})
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NotNil(t, list)
	})

	t.Run("rating sort puts unrated last", func(t *testing.T) {
		list, err := store.ListContent(ctx, storage.ListFilter{Sort: storage.SortRating})
		require.NoError(t, err)
		assert.Equal(t, []string{"Best", "Amelie", "Good", "Bad", "Kingdom", "Unrated"}, titles(list))
	})

	t.Run("limit applies after sort", func(t *testing.T) {
		list, err := store.ListContent(ctx, storage.ListFilter{Sort: storage.SortRating, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"Best", "Amelie"}, titles(list))
	})
}

func TestContentStorage_Replace(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	created, err := store.CreateContent(ctx, movie("Heat", content.Ptr(8.3)))
	require.NoError(t, err)
	require.NoError(t, store.IncrementDownloadCount(ctx, created.ID))

	update := movie("Heat (Director's Cut)", nil)
	update.Backdrop = nil
	update.Duration = content.Ptr("2h 50m")
	update.ID = storage.NewID()
	update.DownloadCount = 100

	replaced, err := store.ReplaceContent(ctx, created.ID, update)
	require.NoError(t, err)

	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt)
	assert.Equal(t, 1, replaced.DownloadCount)
	assert.False(t, replaced.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, "Heat (Director's Cut)", replaced.Title)
	assert.Nil(t, replaced.Backdrop, "omitted optional fields are cleared")
	assert.Nil(t, replaced.Rating)
	assert.Equal(t, "2h 50m", *replaced.Duration)

	_, err = store.ReplaceContent(ctx, storage.NewID(), update)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestContentStorage_Delete(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	created, err := store.CreateContent(ctx, movie("Heat", nil))
	require.NoError(t, err)

	err = store.DeleteContent(ctx, storage.NewID())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	list, err := store.ListContent(ctx, storage.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, store.DeleteContent(ctx, created.ID))

	_, err = store.GetContent(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestContentStorage_IncrementDownloadCount(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	created, err := store.CreateContent(ctx, series("Kingdom"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrementDownloadCount(ctx, created.ID))
	}

	got, err := store.GetContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.DownloadCount)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)

	err = store.IncrementDownloadCount(ctx, storage.NewID())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
