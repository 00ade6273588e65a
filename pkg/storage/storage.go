package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/kasuboski/cineprime/pkg/content"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("not found in storage")

// Storage is a content store. Implementations enforce field presence and types but not the
// movie/series payload invariant, which is the validator's concern.
type Storage interface {
	Init(ctx context.Context) error
	Close(ctx context.Context) error
	ContentStorage
}

type ContentStorage interface {
	// CreateContent assigns an id, timestamps and a zero download count and returns the stored document
	CreateContent(ctx context.Context, c content.Content) (content.Content, error)
	GetContent(ctx context.Context, id string) (content.Content, error)
	ListContent(ctx context.Context, filter ListFilter) ([]content.Content, error)
	// ReplaceContent overwrites every editable field of the document and refreshes updatedAt.
	// The id, createdAt and downloadCount are kept.
	ReplaceContent(ctx context.Context, id string, c content.Content) (content.Content, error)
	DeleteContent(ctx context.Context, id string) error
	IncrementDownloadCount(ctx context.Context, id string) error
}

type Sort string

const (
	SortRecent Sort = "recent"
	SortRating Sort = "rating"
)

// ListFilter narrows a listing. Zero values impose no constraint; a non-positive Limit means no limit.
type ListFilter struct {
	Type     content.Type
	Language string
	Category string
	Sort     Sort
	Limit    int
}

// ParseSort maps a query value to a Sort, defaulting to SortRecent
func ParseSort(s string) Sort {
	if Sort(s) == SortRating {
		return SortRating
	}
	return SortRecent
}

// ParseLimit reads a limit query value. Anything that is not a positive integer means no limit.
func ParseLimit(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NewID returns a new content identifier
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidID reports whether id is a well-formed content identifier
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
