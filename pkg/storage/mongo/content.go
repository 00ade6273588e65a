package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateContent inserts a new document
func (m *Mongo) CreateContent(ctx context.Context, c content.Content) (content.Content, error) {
	now := timestamp()
	c.ID = storage.NewID()
	c.DownloadCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	doc := toDocument(c)
	_, err := m.contents.InsertOne(ctx, doc)
	if err != nil {
		return content.Content{}, fmt.Errorf("failed to create content: %w", err)
	}

	return doc.content(), nil
}

// GetContent gets a document by id
func (m *Mongo) GetContent(ctx context.Context, id string) (content.Content, error) {
	oid, err := objectID(id)
	if err != nil {
		return content.Content{}, err
	}

	var doc document
	err = m.contents.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return content.Content{}, storage.ErrNotFound
		}
		return content.Content{}, fmt.Errorf("failed to get content: %w", err)
	}

	return doc.content(), nil
}

// ListContent lists documents matching the filter
func (m *Mongo) ListContent(ctx context.Context, filter storage.ListFilter) ([]content.Content, error) {
	cur, err := m.contents.Find(ctx, filterFor(filter), findOptionsFor(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	docs := make([]document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	result := make([]content.Content, 0, len(docs))
	for _, d := range docs {
		result = append(result, d.content())
	}
	return result, nil
}

// ReplaceContent sets every editable field and returns the updated document
func (m *Mongo) ReplaceContent(ctx context.Context, id string, c content.Content) (content.Content, error) {
	oid, err := objectID(id)
	if err != nil {
		return content.Content{}, err
	}

	c.UpdatedAt = timestamp()
	update := bson.D{{Key: "$set", Value: toDocument(c).editable()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc document
	err = m.contents.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return content.Content{}, storage.ErrNotFound
		}
		return content.Content{}, fmt.Errorf("failed to replace content: %w", err)
	}

	return doc.content(), nil
}

// DeleteContent removes a document
func (m *Mongo) DeleteContent(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := m.contents.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// IncrementDownloadCount adds one to downloadCount with $inc
func (m *Mongo) IncrementDownloadCount(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "downloadCount", Value: 1}}}}
	res, err := m.contents.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("failed to increment download count: %w", err)
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// objectID parses id. A malformed id cannot name a stored document.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, storage.ErrNotFound
	}
	return oid, nil
}

// BSON dates hold milliseconds
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
