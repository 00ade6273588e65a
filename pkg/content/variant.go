package content

import "fmt"

// Variant is the type-gated view of a Content document: either a Movie or a Series.
type Variant interface {
	Base() Content
	isVariant()
}

type Movie struct {
	Content
	Data MovieData
}

type Series struct {
	Content
	Seasons []Season
}

func (m Movie) Base() Content  { return m.Content }
func (s Series) Base() Content { return s.Content }

func (Movie) isVariant()  {}
func (Series) isVariant() {}

// Variant returns the tagged view of c selected by its Type. A movie without MovieData gets
// an empty MovieData; the payload shape is not checked here, that is the Validator's job.
func (c Content) Variant() (Variant, error) {
	switch c.Type {
	case TypeMovie:
		m := Movie{Content: c}
		if c.MovieData != nil {
			m.Data = *c.MovieData
		}
		return m, nil
	case TypeSeries:
		return Series{Content: c, Seasons: c.Seasons}, nil
	default:
		return nil, fmt.Errorf("unknown content type %q", c.Type)
	}
}

// EpisodeCount is the total number of episodes across all seasons
func (s Series) EpisodeCount() int {
	var n int
	for _, season := range s.Seasons {
		n += len(season.Episodes)
	}
	return n
}

// Playable reports whether the movie has an inline embed
func (m Movie) Playable() bool {
	return m.Data.EmbedIframeLink != nil && *m.Data.EmbedIframeLink != ""
}
