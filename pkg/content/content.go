package content

import (
	"time"
)

// Type is the kind of catalog entry a Content document describes
type Type string

const (
	TypeMovie  Type = "movie"
	TypeSeries Type = "series"
)

// Valid reports whether t is a known content type
func (t Type) Valid() bool {
	return t == TypeMovie || t == TypeSeries
}

// Quality is the advertised quality of an episode asset
type Quality string

const (
	QualitySD  Quality = "SD"
	QualityHD  Quality = "HD"
	QualityFHD Quality = "FHD"
	Quality4K  Quality = "4K"

	DefaultQuality = QualityHD
)

// Content is the root catalog document. A movie carries MovieData, a series carries Seasons.
// Which of the two is meaningful is gated by Type and only checked by the Validator.
type Content struct {
	ID            string     `json:"_id,omitempty" yaml:"id,omitempty"`
	Title         string     `json:"title" yaml:"title" validate:"required"`
	Description   string     `json:"description" yaml:"description" validate:"required"`
	Type          Type       `json:"type" yaml:"type" validate:"required"`
	Poster        string     `json:"poster" yaml:"poster" validate:"required"`
	Backdrop      *string    `json:"backdrop" yaml:"backdrop,omitempty"`
	Language      string     `json:"language" yaml:"language" validate:"required"`
	Category      string     `json:"category" yaml:"category" validate:"required"`
	Year          int        `json:"year" yaml:"year" validate:"required"`
	Rating        *float64   `json:"rating" yaml:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Duration      *string    `json:"duration" yaml:"duration,omitempty"`
	MovieData     *MovieData `json:"movieData" yaml:"movieData,omitempty"`
	Seasons       []Season   `json:"seasons" yaml:"seasons,omitempty" validate:"dive"`
	DownloadCount int        `json:"downloadCount" yaml:"-"`
	CreatedAt     time.Time  `json:"createdAt" yaml:"-"`
	UpdatedAt     time.Time  `json:"updatedAt" yaml:"-"`
}

// MovieData holds the single playable/downloadable asset of a movie
type MovieData struct {
	EmbedIframeLink *string `json:"embedIframeLink" yaml:"embedIframeLink,omitempty"`
	DownloadLink    string  `json:"downloadLink" yaml:"downloadLink"`
}

type Season struct {
	SeasonNumber int       `json:"seasonNumber" yaml:"seasonNumber"`
	Episodes     []Episode `json:"episodes" yaml:"episodes" validate:"dive"`
}

type Episode struct {
	EpisodeNumber   int     `json:"episodeNumber" yaml:"episodeNumber"`
	EpisodeTitle    string  `json:"episodeTitle" yaml:"episodeTitle"`
	EmbedIframeLink *string `json:"embedIframeLink" yaml:"embedIframeLink,omitempty"`
	DownloadLink    string  `json:"downloadLink" yaml:"downloadLink"`
	Quality         Quality `json:"quality" yaml:"quality" validate:"omitempty,oneof=SD HD FHD 4K"`
}

// Normalize applies the write-time defaults: the title is trimmed, seasons are never nil and
// episodes without a quality get the default one.
func (c *Content) Normalize() {
	c.Title = trim(c.Title)
	if c.Seasons == nil {
		c.Seasons = []Season{}
	}
	for i := range c.Seasons {
		if c.Seasons[i].Episodes == nil {
			c.Seasons[i].Episodes = []Episode{}
		}
		for j := range c.Seasons[i].Episodes {
			if c.Seasons[i].Episodes[j].Quality == "" {
				c.Seasons[i].Episodes[j].Quality = DefaultQuality
			}
		}
	}
}

// Clone returns a deep copy of c
func (c Content) Clone() Content {
	out := c
	out.Backdrop = clonePtr(c.Backdrop)
	out.Rating = clonePtr(c.Rating)
	out.Duration = clonePtr(c.Duration)
	if c.MovieData != nil {
		md := *c.MovieData
		md.EmbedIframeLink = clonePtr(c.MovieData.EmbedIframeLink)
		out.MovieData = &md
	}
	out.Seasons = cloneSeasons(c.Seasons)
	return out
}

func cloneSeasons(seasons []Season) []Season {
	if seasons == nil {
		return nil
	}

	out := make([]Season, len(seasons))
	for i, s := range seasons {
		out[i] = Season{SeasonNumber: s.SeasonNumber}
		if s.Episodes == nil {
			continue
		}
		out[i].Episodes = make([]Episode, len(s.Episodes))
		for j, e := range s.Episodes {
			e.EmbedIframeLink = clonePtr(e.EmbedIframeLink)
			out[i].Episodes[j] = e
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
