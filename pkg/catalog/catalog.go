package catalog

import (
	"errors"
	"fmt"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/metrics"
	"github.com/kasuboski/cineprime/pkg/storage"
)

var (
	ErrInvalidID = errors.New("invalid content id")
	ErrNotFound  = fmt.Errorf("content %w", storage.ErrNotFound)
	ErrStore     = errors.New("content store failure")
)

// Catalog is the query and mutation surface over a content store. Every write is validated
// before it reaches the store.
type Catalog struct {
	store     storage.ContentStorage
	validator *content.Validator
	metrics   *metrics.Metrics

	resolveByNumber bool
}

type Option func(*Catalog)

// WithResolveByNumber makes every download resolution match season and episode numbers instead
// of list positions
func WithResolveByNumber(byNumber bool) Option {
	return func(c *Catalog) {
		c.resolveByNumber = byNumber
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Catalog) {
		c.metrics = m
	}
}

func New(store storage.ContentStorage, opts ...Option) *Catalog {
	c := &Catalog{
		store:     store,
		validator: content.NewValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
