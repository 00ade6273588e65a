package catalog

import (
	"context"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/storage"
	"go.uber.org/zap"
)

// List returns the documents matching filter. No match is an empty list.
func (c *Catalog) List(ctx context.Context, filter storage.ListFilter) ([]content.Content, error) {
	list, err := c.store.ListContent(ctx, filter)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list content", zap.Error(err))
		return nil, storeError(err)
	}

	if list == nil {
		list = []content.Content{}
	}
	return list, nil
}

// Get returns one document. A malformed id fails with ErrInvalidID without touching the store.
func (c *Catalog) Get(ctx context.Context, id string) (content.Content, error) {
	if !storage.ValidID(id) {
		return content.Content{}, ErrInvalidID
	}

	doc, err := c.store.GetContent(ctx, id)
	if err != nil {
		return content.Content{}, storeError(err)
	}

	return doc, nil
}
