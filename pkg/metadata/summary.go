package metadata

import (
	"strconv"
	"time"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/tmdb"
	"github.com/oapi-codegen/nullable"
)

const (
	posterSize   = "w500"
	backdropSize = "original"
)

// Summary is a provider result normalized for the admin editor
type Summary struct {
	ExternalID  int                       `json:"externalId"`
	Title       string                    `json:"title"`
	Overview    string                    `json:"overview"`
	Poster      nullable.Nullable[string] `json:"poster"`
	Backdrop    nullable.Nullable[string] `json:"backdrop"`
	Rating      *float64                  `json:"rating"`
	ReleaseDate string                    `json:"releaseDate"`
}

// Detail is a single-item lookup
type Detail struct {
	Summary
	Genres []string `json:"genres"`
}

func summarize(m tmdb.Media) Summary {
	s := Summary{
		ExternalID:  m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		Poster:      imageURL(posterSize, m.PosterPath),
		Backdrop:    imageURL(backdropSize, m.BackdropPath),
		Rating:      m.VoteAverage,
		ReleaseDate: m.ReleaseDate,
	}

	if s.Title == "" {
		s.Title = m.Name
	}
	if s.ReleaseDate == "" {
		s.ReleaseDate = m.FirstAirDate
	}

	return s
}

func detail(d tmdb.MediaDetails) Detail {
	out := Detail{
		Summary: summarize(d.Media),
		Genres:  make([]string, 0, len(d.Genres)),
	}
	for _, g := range d.Genres {
		out.Genres = append(out.Genres, g.Name)
	}
	return out
}

func summarizeAll(results []tmdb.Media, max int) []Summary {
	if len(results) > max {
		results = results[:max]
	}

	out := make([]Summary, 0, len(results))
	for _, m := range results {
		out = append(out, summarize(m))
	}
	return out
}

// imageURL joins the image base, a size and a relative path. A missing path is null.
func imageURL(size string, path *string) nullable.Nullable[string] {
	if path == nil || *path == "" {
		return nullable.NewNullNullable[string]()
	}
	return nullable.NewNullableWithValue(tmdb.ImageBaseURL + "/" + size + *path)
}

// Year is the year of the release date, or zero when it has none
func (s Summary) Year() int {
	if len(s.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

// Apply autofills a draft document the way the admin upload forms do: title, description,
// poster, backdrop, year and rating are overwritten. Without a release date the current year
// is used.
func (s Summary) Apply(c *content.Content) {
	c.Title = s.Title
	c.Description = s.Overview

	c.Poster = ""
	if poster, err := s.Poster.Get(); err == nil {
		c.Poster = poster
	}

	c.Backdrop = nil
	if backdrop, err := s.Backdrop.Get(); err == nil {
		c.Backdrop = content.Ptr(backdrop)
	}

	c.Year = s.Year()
	if c.Year == 0 {
		c.Year = time.Now().Year()
	}

	c.Rating = nil
	if s.Rating != nil {
		c.Rating = content.Ptr(*s.Rating)
	}
}
