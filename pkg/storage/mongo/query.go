package mongo

import (
	"github.com/kasuboski/cineprime/pkg/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func filterFor(filter storage.ListFilter) bson.D {
	f := bson.D{}
	if filter.Type != "" {
		f = append(f, bson.E{Key: "type", Value: string(filter.Type)})
	}
	if filter.Language != "" {
		f = append(f, bson.E{Key: "language", Value: filter.Language})
	}
	if filter.Category != "" {
		f = append(f, bson.E{Key: "category", Value: filter.Category})
	}
	return f
}

// findOptionsFor builds the sort and limit of a listing. Null sorts below every number,
// so a descending rating sort already puts unrated documents last.
func findOptionsFor(filter storage.ListFilter) *options.FindOptions {
	sort := bson.D{}
	if filter.Sort == storage.SortRating {
		sort = append(sort, bson.E{Key: "rating", Value: -1})
	}
	sort = append(sort,
		bson.E{Key: "createdAt", Value: -1},
		bson.E{Key: "_id", Value: -1},
	)

	opts := options.Find().SetSort(sort)
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return opts
}
