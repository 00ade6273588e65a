package catalog

import (
	"context"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/logger"
	"go.uber.org/zap"
)

// DownloadKind selects which link of a document is resolved
type DownloadKind string

const (
	DownloadMovie   DownloadKind = "movie"
	DownloadEpisode DownloadKind = "episode"
)

// ParseDownloadKind defaults to a movie. Unknown kinds are kept and resolve to an empty link.
func ParseDownloadKind(s string) DownloadKind {
	if s == "" {
		return DownloadMovie
	}
	return DownloadKind(s)
}

// DownloadRequest picks an episode either by its zero-based position in storage order or, when
// ByNumber is set, by season and episode number
type DownloadRequest struct {
	Kind     DownloadKind
	Season   int
	Episode  int
	ByNumber bool
}

type Download struct {
	DownloadLink  string `json:"downloadLink"`
	DownloadCount int    `json:"downloadCount"`
	Title         string `json:"title"`
}

// ResolveDownload returns the requested link and counts the download. The count is bumped even
// when no link matched. A failed increment is logged and the previous count is reported.
func (c *Catalog) ResolveDownload(ctx context.Context, id string, req DownloadRequest) (Download, error) {
	doc, err := c.Get(ctx, id)
	if err != nil {
		return Download{}, err
	}

	log := logger.FromCtx(ctx, "id", id, "kind", req.Kind)

	byNumber := req.ByNumber || c.resolveByNumber
	link := resolveLink(doc, req, byNumber)

	count := doc.DownloadCount
	if err := c.store.IncrementDownloadCount(ctx, id); err != nil {
		log.Warn("failed to increment download count", zap.Error(err))
		c.metrics.DownloadCountFailed()
	} else {
		count++
	}

	c.metrics.DownloadResolved(string(req.Kind), link != "")
	if link == "" {
		log.Debugw("no download link", "season", req.Season, "episode", req.Episode, "byNumber", byNumber)
	}

	return Download{
		DownloadLink:  link,
		DownloadCount: count,
		Title:         doc.Title,
	}, nil
}

func resolveLink(doc content.Content, req DownloadRequest, byNumber bool) string {
	switch req.Kind {
	case DownloadMovie:
		if doc.MovieData == nil {
			return ""
		}
		return doc.MovieData.DownloadLink
	case DownloadEpisode:
		var (
			ep *content.Episode
			ok bool
		)
		if byNumber {
			ep, ok = episodeByNumber(doc.Seasons, req.Season, req.Episode)
		} else {
			ep, ok = episodeAt(doc.Seasons, req.Season, req.Episode)
		}
		if !ok {
			return ""
		}
		return ep.DownloadLink
	default:
		return ""
	}
}

func episodeAt(seasons []content.Season, season, episode int) (*content.Episode, bool) {
	if season < 0 || season >= len(seasons) {
		return nil, false
	}
	episodes := seasons[season].Episodes
	if episode < 0 || episode >= len(episodes) {
		return nil, false
	}
	return &episodes[episode], true
}

func episodeByNumber(seasons []content.Season, season, episode int) (*content.Episode, bool) {
	for i := range seasons {
		if seasons[i].SeasonNumber != season {
			continue
		}
		for j := range seasons[i].Episodes {
			if seasons[i].Episodes[j].EpisodeNumber == episode {
				return &seasons[i].Episodes[j], true
			}
		}
	}
	return nil, false
}
