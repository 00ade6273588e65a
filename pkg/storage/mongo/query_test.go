package mongo

import (
	"testing"
	"time"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilterFor(t *testing.T) {
	tests := []struct {
		name   string
		filter storage.ListFilter
		want   bson.D
	}{
		{
			name:   "no filters",
			filter: storage.ListFilter{Sort: storage.SortRating, Limit: 3},
			want:   bson.D{},
		},
		{
			name:   "type only",
			filter: storage.ListFilter{Type: content.TypeSeries},
			want:   bson.D{{Key: "type", Value: "series"}},
		},
		{
			name:   "all filters",
			filter: storage.ListFilter{Type: content.TypeMovie, Language: "Hindi", Category: "Comedy"},
			want: bson.D{
				{Key: "type", Value: "movie"},
				{Key: "language", Value: "Hindi"},
				{Key: "category", Value: "Comedy"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterFor(tt.filter))
		})
	}
}

func TestFindOptionsFor(t *testing.T) {
	t.Run("recent", func(t *testing.T) {
		opts := findOptionsFor(storage.ListFilter{})
		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, opts.Sort)
		assert.Nil(t, opts.Limit)
	})

	t.Run("rating with limit", func(t *testing.T) {
		opts := findOptionsFor(storage.ListFilter{Sort: storage.SortRating, Limit: 5})
		assert.Equal(t, bson.D{
			{Key: "rating", Value: -1},
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}, opts.Sort)
		require.NotNil(t, opts.Limit)
		assert.Equal(t, int64(5), *opts.Limit)
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := content.Content{
		ID:          storage.NewID(),
		Title:       "Dark",
		Description: "Time travel",
		Type:        content.TypeSeries,
		Poster:      "https://image.tmdb.org/t/p/w500/dark.jpg",
		Language:    "German",
		Category:    "Drama",
		Year:        2017,
		Rating:      content.Ptr(8.7),
		Seasons: []content.Season{
			{SeasonNumber: 2, Episodes: []content.Episode{
				{EpisodeNumber: 5, EpisodeTitle: "Lost and Found", DownloadLink: "https://example.com/s2e5", Quality: content.QualityFHD},
			}},
			{SeasonNumber: 1, Episodes: []content.Episode{}},
		},
		DownloadCount: 7,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	doc := toDocument(c)
	assert.Equal(t, c.ID, doc.ID.Hex())
	assert.Nil(t, doc.MovieData)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded document
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, c, decoded.content())
}

func TestDocumentEditable(t *testing.T) {
	doc := toDocument(content.Content{
		Title:         "Heat",
		Type:          content.TypeMovie,
		DownloadCount: 12,
		MovieData:     &content.MovieData{DownloadLink: "https://example.com/heat"},
	})

	set := doc.editable().Map()
	assert.NotContains(t, set, "_id")
	assert.NotContains(t, set, "createdAt")
	assert.NotContains(t, set, "downloadCount")
	assert.Contains(t, set, "updatedAt")

	backdrop, ok := set["backdrop"]
	require.True(t, ok, "cleared optional fields are still written")
	assert.Nil(t, backdrop.(*string))
}
