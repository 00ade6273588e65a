package metadata

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/tmdb"
	"go.uber.org/zap"
)

const (
	MaxSearchResults = 8
	MaxListResults   = 20
)

// Lookup searches the metadata provider and normalizes what it returns
type Lookup struct {
	client tmdb.ClientInterface
	lists  ListCache
}

// New creates a Lookup. A nil client means no API key is configured and every call fails with
// ErrNotConfigured. A nil cache disables list caching.
func New(client tmdb.ClientInterface, lists ListCache) *Lookup {
	return &Lookup{client: client, lists: lists}
}

// Configured reports whether lookups can reach the provider
func (l *Lookup) Configured() bool {
	return l.client != nil
}

// Search returns at most MaxSearchResults summaries for query
func (l *Lookup) Search(ctx context.Context, query string, kind tmdb.Kind) ([]Summary, error) {
	if !l.Configured() {
		return nil, ErrNotConfigured
	}

	log := logger.FromCtx(ctx, "query", query, "kind", kind)

	res, err := l.client.SearchMedia(ctx, kind, query)
	if err != nil {
		log.Debug("metadata search failed", zap.Error(err))
		return nil, upstream(err)
	}

	return summarizeAll(res.Results, MaxSearchResults), nil
}

// Detail returns one item by its provider id, including genre names
func (l *Lookup) Detail(ctx context.Context, externalID string, kind tmdb.Kind) (Detail, error) {
	if !l.Configured() {
		return Detail{}, ErrNotConfigured
	}

	id, err := strconv.Atoi(externalID)
	if err != nil || id <= 0 {
		return Detail{}, fmt.Errorf("%w: %q", ErrInvalidExternalID, externalID)
	}

	res, err := l.client.MediaDetails(ctx, kind, id)
	if err != nil {
		logger.FromCtx(ctx).Debugw("metadata detail failed", "id", id, "kind", kind, zap.Error(err))
		return Detail{}, upstream(err)
	}

	return detail(*res), nil
}

// List returns at most MaxListResults summaries of a curated list, served from the cache when
// a fresh copy is held
func (l *Lookup) List(ctx context.Context, list tmdb.ListName, kind tmdb.Kind) ([]Summary, error) {
	if !l.Configured() {
		return nil, ErrNotConfigured
	}

	log := logger.FromCtx(ctx, "list", list, "kind", kind)
	key := string(list) + ":" + string(kind)

	if l.lists != nil {
		if cached, ok := l.lists.Get(ctx, key); ok {
			log.Debug("serving cached list")
			return cached, nil
		}
	}

	res, err := l.client.MediaList(ctx, kind, list)
	if err != nil {
		if errors.Is(err, tmdb.ErrInvalidList) {
			return nil, err
		}
		log.Debug("metadata list failed", zap.Error(err))
		return nil, upstream(err)
	}

	summaries := summarizeAll(res.Results, MaxListResults)
	if l.lists != nil {
		l.lists.Set(ctx, key, summaries)
	}

	return summaries, nil
}

func upstream(err error) error {
	var statusErr *tmdb.StatusError
	if errors.As(err, &statusErr) {
		return &UpstreamError{StatusCode: statusErr.StatusCode, Message: statusErr.Message, Err: err}
	}
	return &UpstreamError{Message: err.Error(), Err: err}
}
