package catalog

import (
	"context"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/storage"
	"go.uber.org/zap"
)

// Create validates and stores a new document. The store assigns the id and timestamps and the
// download count starts at zero.
func (c *Catalog) Create(ctx context.Context, doc content.Content) (content.Content, error) {
	log := logger.FromCtx(ctx, "title", doc.Title, "type", doc.Type)

	doc.Normalize()
	if err := c.validator.Validate(doc, content.ModeCreate); err != nil {
		log.Debug("rejected new content", zap.Error(err))
		return content.Content{}, err
	}

	created, err := c.store.CreateContent(ctx, doc)
	if err != nil {
		log.Error("failed to create content", zap.Error(err))
		return content.Content{}, storeError(err)
	}

	log.Infow("created content", "id", created.ID)
	return created, nil
}

// Update replaces every editable field of an existing document with doc. Optional fields doc
// leaves empty are cleared. The id, createdAt and download count are kept.
func (c *Catalog) Update(ctx context.Context, id string, doc content.Content) (content.Content, error) {
	if _, err := c.Get(ctx, id); err != nil {
		return content.Content{}, err
	}

	log := logger.FromCtx(ctx, "id", id)

	doc.Normalize()
	if err := c.validator.Validate(doc, content.ModeUpdate); err != nil {
		log.Debug("rejected content update", zap.Error(err))
		return content.Content{}, err
	}

	updated, err := c.store.ReplaceContent(ctx, id, doc)
	if err != nil {
		log.Error("failed to update content", zap.Error(err))
		return content.Content{}, storeError(err)
	}

	log.Info("updated content")
	return updated, nil
}

// Delete removes a document
func (c *Catalog) Delete(ctx context.Context, id string) error {
	if !storage.ValidID(id) {
		return ErrInvalidID
	}

	if err := c.store.DeleteContent(ctx, id); err != nil {
		return storeError(err)
	}

	logger.FromCtx(ctx).Infow("deleted content", "id", id)
	return nil
}
