package mongo

import (
	"time"

	"github.com/kasuboski/cineprime/pkg/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type document struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description"`
	Type          string             `bson:"type"`
	Poster        string             `bson:"poster"`
	Backdrop      *string            `bson:"backdrop"`
	Language      string             `bson:"language"`
	Category      string             `bson:"category"`
	Year          int                `bson:"year"`
	Rating        *float64           `bson:"rating"`
	Duration      *string            `bson:"duration"`
	MovieData     *movieData         `bson:"movieData"`
	Seasons       []season           `bson:"seasons"`
	DownloadCount int                `bson:"downloadCount"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

type movieData struct {
	EmbedIframeLink *string `bson:"embedIframeLink"`
	DownloadLink    string  `bson:"downloadLink"`
}

type season struct {
	SeasonNumber int       `bson:"seasonNumber"`
	Episodes     []episode `bson:"episodes"`
}

type episode struct {
	EpisodeNumber   int     `bson:"episodeNumber"`
	EpisodeTitle    string  `bson:"episodeTitle"`
	EmbedIframeLink *string `bson:"embedIframeLink"`
	DownloadLink    string  `bson:"downloadLink"`
	Quality         string  `bson:"quality"`
}

func toDocument(c content.Content) document {
	d := document{
		Title:         c.Title,
		Description:   c.Description,
		Type:          string(c.Type),
		Poster:        c.Poster,
		Backdrop:      c.Backdrop,
		Language:      c.Language,
		Category:      c.Category,
		Year:          c.Year,
		Rating:        c.Rating,
		Duration:      c.Duration,
		Seasons:       make([]season, 0, len(c.Seasons)),
		DownloadCount: c.DownloadCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}

	if id, err := primitive.ObjectIDFromHex(c.ID); err == nil {
		d.ID = id
	}

	if c.MovieData != nil {
		d.MovieData = &movieData{
			EmbedIframeLink: c.MovieData.EmbedIframeLink,
			DownloadLink:    c.MovieData.DownloadLink,
		}
	}

	for _, s := range c.Seasons {
		ds := season{SeasonNumber: s.SeasonNumber, Episodes: make([]episode, 0, len(s.Episodes))}
		for _, e := range s.Episodes {
			ds.Episodes = append(ds.Episodes, episode{
				EpisodeNumber:   e.EpisodeNumber,
				EpisodeTitle:    e.EpisodeTitle,
				EmbedIframeLink: e.EmbedIframeLink,
				DownloadLink:    e.DownloadLink,
				Quality:         string(e.Quality),
			})
		}
		d.Seasons = append(d.Seasons, ds)
	}

	return d
}

func (d document) content() content.Content {
	c := content.Content{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		Type:          content.Type(d.Type),
		Poster:        d.Poster,
		Backdrop:      d.Backdrop,
		Language:      d.Language,
		Category:      d.Category,
		Year:          d.Year,
		Rating:        d.Rating,
		Duration:      d.Duration,
		Seasons:       make([]content.Season, 0, len(d.Seasons)),
		DownloadCount: d.DownloadCount,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}

	if d.MovieData != nil {
		c.MovieData = &content.MovieData{
			EmbedIframeLink: d.MovieData.EmbedIframeLink,
			DownloadLink:    d.MovieData.DownloadLink,
		}
	}

	for _, s := range d.Seasons {
		cs := content.Season{SeasonNumber: s.SeasonNumber, Episodes: make([]content.Episode, 0, len(s.Episodes))}
		for _, e := range s.Episodes {
			cs.Episodes = append(cs.Episodes, content.Episode{
				EpisodeNumber:   e.EpisodeNumber,
				EpisodeTitle:    e.EpisodeTitle,
				EmbedIframeLink: e.EmbedIframeLink,
				DownloadLink:    e.DownloadLink,
				Quality:         content.Quality(e.Quality),
			})
		}
		c.Seasons = append(c.Seasons, cs)
	}

	return c
}

// editable is the $set document of a full replace. Store-managed fields are left out.
func (d document) editable() bson.D {
	return bson.D{
		{Key: "title", Value: d.Title},
		{Key: "description", Value: d.Description},
		{Key: "type", Value: d.Type},
		{Key: "poster", Value: d.Poster},
		{Key: "backdrop", Value: d.Backdrop},
		{Key: "language", Value: d.Language},
		{Key: "category", Value: d.Category},
		{Key: "year", Value: d.Year},
		{Key: "rating", Value: d.Rating},
		{Key: "duration", Value: d.Duration},
		{Key: "movieData", Value: d.MovieData},
		{Key: "seasons", Value: d.Seasons},
		{Key: "updatedAt", Value: d.UpdatedAt},
	}
}
