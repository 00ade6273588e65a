package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/metrics"
	"github.com/kasuboski/cineprime/pkg/storage"
	"github.com/kasuboski/cineprime/pkg/storage/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMovie() content.Content {
	return content.Content{
		Title:       "  Heat ",
		Description: "A group of professional bank robbers",
		Type:        content.TypeMovie,
		Poster:      "https://image.tmdb.org/t/p/w500/heat.jpg",
		Language:    "English",
		Category:    "Crime",
		Year:        1995,
		MovieData: &content.MovieData{
			DownloadLink: "https://example.com/heat.mkv",
		},
	}
}

func newSeries() content.Content {
	return content.Content{
		ID:          storage.NewID(),
		Title:       "Kingdom",
		Description: "Zombies in Joseon",
		Type:        content.TypeSeries,
		Poster:      "https://image.tmdb.org/t/p/w500/kingdom.jpg",
		Language:    "Korean",
		Category:    "Horror",
		Year:        2019,
		Seasons: []content.Season{
			{
				SeasonNumber: 2,
				Episodes: []content.Episode{
					{EpisodeNumber: 4, EpisodeTitle: "Four", DownloadLink: "https://example.com/s2e4", Quality: content.QualityHD},
					{EpisodeNumber: 1, EpisodeTitle: "One", DownloadLink: "https://example.com/s2e1", Quality: content.QualityHD},
				},
			},
			{
				SeasonNumber: 1,
				Episodes: []content.Episode{
					{EpisodeNumber: 1, EpisodeTitle: "Pilot", DownloadLink: "https://example.com/s1e1", Quality: content.QualitySD},
				},
			},
		},
	}
}

func TestCatalog_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		filter := storage.ListFilter{Type: content.TypeSeries, Sort: storage.SortRating, Limit: 5}
		store.EXPECT().ListContent(ctx, filter).Return([]content.Content{newSeries()}, nil)

		list, err := New(store).List(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		store.EXPECT().ListContent(ctx, gomock.Any()).Return(nil, nil)

		list, err := New(store).List(ctx, storage.ListFilter{Language: "Klingon"})
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		store.EXPECT().ListContent(ctx, gomock.Any()).Return(nil, errors.New("disk I/O error"))

		_, err := New(store).List(ctx, storage.ListFilter{})
		assert.ErrorIs(t, err, ErrStore)
	})
}

func TestCatalog_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		for _, id := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "6543a1b2c3d4e5f6a7b8c9d0e"} {
			_, err := New(store).Get(ctx, id)
			assert.ErrorIs(t, err, ErrInvalidID, id)
		}
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		id := storage.NewID()
		store.EXPECT().GetContent(ctx, id).Return(content.Content{}, storage.ErrNotFound)

		_, err := New(store).Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NotErrorIs(t, err, ErrStore)
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		want := newSeries()
		store.EXPECT().GetContent(ctx, want.ID).Return(want, nil)

		got, err := New(store).Get(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestCatalog_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		store.EXPECT().CreateContent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c content.Content) (content.Content, error) {
			assert.Equal(t, "Heat", c.Title)
			assert.NotNil(t, c.Seasons)
			c.ID = storage.NewID()
			c.CreatedAt = time.Now()
			c.UpdatedAt = c.CreatedAt
			return c, nil
		})

		created, err := New(store).Create(ctx, newMovie())
		require.NoError(t, err)
		assert.True(t, storage.ValidID(created.ID))
	})

	t.Run("first missing field wins and nothing is written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		doc := newMovie()
		doc.Poster = ""
		doc.Year = 0

		_, err := New(store).Create(ctx, doc)
		var verr *content.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Missing)
		assert.Equal(t, "Missing required field: poster", verr.Message)
	})

	t.Run("movie may be created with only an embed link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		store.EXPECT().CreateContent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c content.Content) (content.Content, error) {
			return c, nil
		})

		doc := newMovie()
		doc.MovieData = &content.MovieData{EmbedIframeLink: content.Ptr("https://player.example.com/heat")}

		_, err := New(store).Create(ctx, doc)
		assert.NoError(t, err)
	})

	t.Run("episode without a link is named", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		doc := newSeries()
		doc.Seasons[1].Episodes[0].DownloadLink = ""

		_, err := New(store).Create(ctx, doc)
		require.Error(t, err)
		assert.True(t, content.IsValidationError(err))
		assert.Equal(t, "Episode 1 in Season 1 is missing downloadLink", err.Error())
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		store.EXPECT().CreateContent(ctx, gomock.Any()).Return(content.Content{}, errors.New("database is locked"))

		_, err := New(store).Create(ctx, newMovie())
		assert.ErrorIs(t, err, ErrStore)
	})
}

func TestCatalog_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("movie update requires a download link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		id := storage.NewID()
		store.EXPECT().GetContent(ctx, id).Return(newMovie(), nil)

		doc := newMovie()
		doc.MovieData = &content.MovieData{EmbedIframeLink: content.Ptr("https://player.example.com/heat")}

		_, err := New(store).Update(ctx, id, doc)
		var verr *content.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.False(t, verr.Missing)
	})

	t.Run("lookup happens before validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		id := storage.NewID()
		store.EXPECT().GetContent(ctx, id).Return(content.Content{}, storage.ErrNotFound)

		_, err := New(store).Update(ctx, id, content.Content{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("replaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		id := storage.NewID()
		doc := newMovie()

		gomock.InOrder(
			store.EXPECT().GetContent(ctx, id).Return(doc, nil),
			store.EXPECT().ReplaceContent(ctx, id, gomock.Any()).DoAndReturn(func(_ context.Context, id string, c content.Content) (content.Content, error) {
				c.ID = id
				return c, nil
			}),
		)

		updated, err := New(store).Update(ctx, id, doc)
		require.NoError(t, err)
		assert.Equal(t, id, updated.ID)
		assert.Equal(t, "Heat", updated.Title)
	})

	t.Run("deleted between lookup and replace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		id := storage.NewID()

		store.EXPECT().GetContent(ctx, id).Return(newMovie(), nil)
		store.EXPECT().ReplaceContent(ctx, id, gomock.Any()).Return(content.Content{}, storage.ErrNotFound)

		_, err := New(store).Update(ctx, id, newMovie())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCatalog_Delete(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	c := New(store)

	assert.ErrorIs(t, c.Delete(ctx, "nope"), ErrInvalidID)

	missing := storage.NewID()
	store.EXPECT().DeleteContent(ctx, missing).Return(storage.ErrNotFound)
	assert.ErrorIs(t, c.Delete(ctx, missing), ErrNotFound)

	present := storage.NewID()
	store.EXPECT().DeleteContent(ctx, present).Return(nil)
	assert.NoError(t, c.Delete(ctx, present))
}

func TestCatalog_ResolveDownload(t *testing.T) {
	ctx := context.Background()

	series := newSeries()
	movie := newMovie()
	movie.ID = storage.NewID()
	movie.DownloadCount = 7

	tests := []struct {
		name string
		doc  content.Content
		req  DownloadRequest
		opts []Option
		want string
	}{
		{name: "movie", doc: movie, req: DownloadRequest{Kind: DownloadMovie}, want: "https://example.com/heat.mkv"},
		{name: "movie without data", doc: func() content.Content { m := movie; m.MovieData = nil; return m }(), req: DownloadRequest{Kind: DownloadMovie}, want: ""},
		{name: "positional", doc: series, req: DownloadRequest{Kind: DownloadEpisode, Season: 0, Episode: 1}, want: "https://example.com/s2e1"},
		{name: "positional second season", doc: series, req: DownloadRequest{Kind: DownloadEpisode, Season: 1, Episode: 0}, want: "https://example.com/s1e1"},
		{name: "positional out of range", doc: series, req: DownloadRequest{Kind: DownloadEpisode, Season: 0, Episode: 2}, want: ""},
		{name: "positional negative", doc: series, req: DownloadRequest{Kind: DownloadEpisode, Season: -1, Episode: 0}, want: ""},
		{name: "by number", doc: series, req: DownloadRequest{Kind: DownloadEpisode, Season: 2, Episode: 4, ByNumber: true}, want: "https://example.com/s2e4"},
		{name: "by number from config", doc: series, req: DownloadRequest{Kind: DownloadEpisode, Season: 1, Episode: 1}, opts: []Option{WithResolveByNumber(true)}, want: "https://example.com/s1e1"},
		{name: "by number missing", doc: series, req: DownloadRequest{Kind: DownloadEpisode, Season: 3, Episode: 1, ByNumber: true}, want: ""},
		{name: "unknown kind", doc: series, req: DownloadRequest{Kind: "trailer"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStorage(ctrl)

			store.EXPECT().GetContent(ctx, tt.doc.ID).Return(tt.doc, nil)
			store.EXPECT().IncrementDownloadCount(ctx, tt.doc.ID).Return(nil)

			got, err := New(store, tt.opts...).ResolveDownload(ctx, tt.doc.ID, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.DownloadLink)
			assert.Equal(t, tt.doc.DownloadCount+1, got.DownloadCount)
			assert.Equal(t, tt.doc.Title, got.Title)
		})
	}
}

func TestCatalog_ResolveDownloadIncrementFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)

	movie := newMovie()
	movie.ID = storage.NewID()
	movie.DownloadCount = 3

	store.EXPECT().GetContent(ctx, movie.ID).Return(movie, nil)
	store.EXPECT().IncrementDownloadCount(ctx, movie.ID).Return(errors.New("database is locked"))

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	got, err := New(store, WithMetrics(m)).ResolveDownload(ctx, movie.ID, DownloadRequest{Kind: DownloadMovie})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/heat.mkv", got.DownloadLink)
	assert.Equal(t, 3, got.DownloadCount)

	expected := `
# HELP cineprime_download_count_failures_total Download counter increments that failed and were skipped.
# TYPE cineprime_download_count_failures_total counter
cineprime_download_count_failures_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "cineprime_download_count_failures_total"))
}

func TestParseDownloadKind(t *testing.T) {
	assert.Equal(t, DownloadMovie, ParseDownloadKind(""))
	assert.Equal(t, DownloadEpisode, ParseDownloadKind("episode"))
	assert.Equal(t, DownloadKind("trailer"), ParseDownloadKind("trailer"))
}
