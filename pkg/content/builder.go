package content

import (
	"fmt"
)

// Builder edits the season/episode tree of a series draft in memory. Seasons and episodes keep
// their insertion order and are addressed by their numbers, never by position. Nothing is
// persisted until Seasons() is submitted as part of a whole document.
type Builder struct {
	seasons []Season
}

// EpisodeUpdate carries the fields to merge into an existing episode. Nil fields are left untouched.
type EpisodeUpdate struct {
	EpisodeNumber   *int
	EpisodeTitle    *string
	EmbedIframeLink *string
	DownloadLink    *string
	Quality         *Quality
}

// NewBuilder starts a builder from an existing tree. The input is copied.
func NewBuilder(seasons []Season) *Builder {
	b := &Builder{seasons: cloneSeasons(seasons)}
	if b.seasons == nil {
		b.seasons = []Season{}
	}
	return b
}

// Seasons returns a copy of the current tree
func (b *Builder) Seasons() []Season {
	return cloneSeasons(b.seasons)
}

// AddSeason appends an empty season numbered one above the current highest season number
func (b *Builder) AddSeason() int {
	n := 1
	for i, s := range b.seasons {
		if i == 0 || s.SeasonNumber >= n {
			n = s.SeasonNumber + 1
		}
	}

	b.seasons = append(b.seasons, Season{SeasonNumber: n, Episodes: []Episode{}})
	return n
}

// RemoveSeason drops the season with the given number. Remaining seasons keep their numbers.
func (b *Builder) RemoveSeason(seasonNumber int) error {
	i := b.seasonIndex(seasonNumber)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrSeasonNotFound, seasonNumber)
	}

	b.seasons = append(b.seasons[:i], b.seasons[i+1:]...)
	return nil
}

// RenumberSeason changes a season's number in place
func (b *Builder) RenumberSeason(from, to int) error {
	i := b.seasonIndex(from)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrSeasonNotFound, from)
	}
	if from != to && b.seasonIndex(to) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateSeason, to)
	}

	b.seasons[i].SeasonNumber = to
	return nil
}

// AddEpisode appends an episode to the season, numbered one above the season's highest
// episode number, titled "Episode {n}" with the default quality and no links.
func (b *Builder) AddEpisode(seasonNumber int) (int, error) {
	i := b.seasonIndex(seasonNumber)
	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ErrSeasonNotFound, seasonNumber)
	}

	n := 1
	for k, e := range b.seasons[i].Episodes {
		if k == 0 || e.EpisodeNumber >= n {
			n = e.EpisodeNumber + 1
		}
	}

	b.seasons[i].Episodes = append(b.seasons[i].Episodes, Episode{
		EpisodeNumber: n,
		EpisodeTitle:  fmt.Sprintf("Episode %d", n),
		Quality:       DefaultQuality,
	})
	return n, nil
}

// RemoveEpisode drops one episode from one season. Remaining episodes keep their numbers.
func (b *Builder) RemoveEpisode(seasonNumber, episodeNumber int) error {
	i, j, err := b.episodeIndex(seasonNumber, episodeNumber)
	if err != nil {
		return err
	}

	episodes := b.seasons[i].Episodes
	b.seasons[i].Episodes = append(episodes[:j], episodes[j+1:]...)
	return nil
}

// UpdateEpisode merges the non-nil fields of u into the matching episode
func (b *Builder) UpdateEpisode(seasonNumber, episodeNumber int, u EpisodeUpdate) error {
	i, j, err := b.episodeIndex(seasonNumber, episodeNumber)
	if err != nil {
		return err
	}

	if u.EpisodeNumber != nil && *u.EpisodeNumber != episodeNumber {
		for _, e := range b.seasons[i].Episodes {
			if e.EpisodeNumber == *u.EpisodeNumber {
				return fmt.Errorf("%w: %d in season %d", ErrDuplicateEpisode, *u.EpisodeNumber, seasonNumber)
			}
		}
	}

	e := &b.seasons[i].Episodes[j]
	if u.EpisodeNumber != nil {
		e.EpisodeNumber = *u.EpisodeNumber
	}
	if u.EpisodeTitle != nil {
		e.EpisodeTitle = *u.EpisodeTitle
	}
	if u.EmbedIframeLink != nil {
		e.EmbedIframeLink = clonePtr(u.EmbedIframeLink)
	}
	if u.DownloadLink != nil {
		e.DownloadLink = *u.DownloadLink
	}
	if u.Quality != nil {
		e.Quality = *u.Quality
	}

	return nil
}

// Validate applies the submission rules of the admin editor, which are stricter than the
// API's: every season needs an episode and every episode needs a title and a download link.
func (b *Builder) Validate() error {
	return checkDraft(b.seasons)
}

func (b *Builder) seasonIndex(seasonNumber int) int {
	for i, s := range b.seasons {
		if s.SeasonNumber == seasonNumber {
			return i
		}
	}
	return -1
}

func (b *Builder) episodeIndex(seasonNumber, episodeNumber int) (int, int, error) {
	i := b.seasonIndex(seasonNumber)
	if i < 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrSeasonNotFound, seasonNumber)
	}

	for j, e := range b.seasons[i].Episodes {
		if e.EpisodeNumber == episodeNumber {
			return i, j, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: %d in season %d", ErrEpisodeNotFound, episodeNumber, seasonNumber)
}
