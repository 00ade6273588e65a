package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/storage"
	"github.com/kasuboski/cineprime/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/cineprime/pkg/storage/sqlite/schema/gen/table"
)

// CreateContent stores a new content document with a fresh id
func (s *SQLite) CreateContent(ctx context.Context, c content.Content) (content.Content, error) {
	now := timestamp()
	c.ID = storage.NewID()
	c.DownloadCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	row, err := toModel(c)
	if err != nil {
		return content.Content{}, err
	}

	stmt := table.Content.
		INSERT(table.Content.AllColumns).
		MODEL(row)

	_, err = s.handleStatement(ctx, stmt)
	if err != nil {
		return content.Content{}, fmt.Errorf("failed to create content: %w", err)
	}

	return s.GetContent(ctx, c.ID)
}

// GetContent gets a content document by id
func (s *SQLite) GetContent(ctx context.Context, id string) (content.Content, error) {
	stmt := table.Content.
		SELECT(table.Content.AllColumns).
		FROM(table.Content).
		WHERE(table.Content.ID.EQ(sqlite.String(id)))

	var row model.Content
	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return content.Content{}, storage.ErrNotFound
		}
		return content.Content{}, fmt.Errorf("failed to get content: %w", err)
	}

	return fromModel(row)
}

// ListContent lists content matching the filter, sorted and limited as requested
func (s *SQLite) ListContent(ctx context.Context, filter storage.ListFilter) ([]content.Content, error) {
	stmt := table.Content.
		SELECT(table.Content.AllColumns).
		FROM(table.Content).
		WHERE(listCondition(filter)).
		ORDER_BY(listOrder(filter.Sort)...)

	if filter.Limit > 0 {
		stmt = stmt.LIMIT(int64(filter.Limit))
	}

	rows := make([]model.Content, 0)
	err := stmt.QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	result := make([]content.Content, 0, len(rows))
	for _, row := range rows {
		c, err := fromModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	return result, nil
}

func listCondition(filter storage.ListFilter) sqlite.BoolExpression {
	where := sqlite.Bool(true)
	if filter.Type != "" {
		where = where.AND(table.Content.Type.EQ(sqlite.String(string(filter.Type))))
	}
	if filter.Language != "" {
		where = where.AND(table.Content.Language.EQ(sqlite.String(filter.Language)))
	}
	if filter.Category != "" {
		where = where.AND(table.Content.Category.EQ(sqlite.String(filter.Category)))
	}
	return where
}

func listOrder(sort storage.Sort) []sqlite.OrderByClause {
	recent := []sqlite.OrderByClause{
		table.Content.CreatedAt.DESC(),
		table.Content.ID.DESC(),
	}

	if sort != storage.SortRating {
		return recent
	}

	return append([]sqlite.OrderByClause{
		table.Content.Rating.IS_NULL().ASC(),
		table.Content.Rating.DESC(),
	}, recent...)
}

// ReplaceContent overwrites the editable fields of an existing document
func (s *SQLite) ReplaceContent(ctx context.Context, id string, c content.Content) (content.Content, error) {
	c.ID = id
	c.UpdatedAt = timestamp()

	row, err := toModel(c)
	if err != nil {
		return content.Content{}, err
	}

	stmt := table.Content.
		UPDATE(table.Content.MutableColumns.Except(table.Content.DownloadCount, table.Content.CreatedAt)).
		MODEL(row).
		WHERE(table.Content.ID.EQ(sqlite.String(id)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return content.Content{}, fmt.Errorf("failed to replace content: %w", err)
	}

	if err := requireAffected(result); err != nil {
		return content.Content{}, err
	}

	return s.GetContent(ctx, id)
}

// DeleteContent removes a document by id
func (s *SQLite) DeleteContent(ctx context.Context, id string) error {
	stmt := table.Content.
		DELETE().
		WHERE(table.Content.ID.EQ(sqlite.String(id)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	return requireAffected(result)
}

// IncrementDownloadCount atomically adds one to the download count
func (s *SQLite) IncrementDownloadCount(ctx context.Context, id string) error {
	stmt := table.Content.
		UPDATE(table.Content.DownloadCount).
		SET(table.Content.DownloadCount.ADD(sqlite.Int(1))).
		WHERE(table.Content.ID.EQ(sqlite.String(id)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to increment download count: %w", err)
	}

	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func toModel(c content.Content) (model.Content, error) {
	seasons := c.Seasons
	if seasons == nil {
		seasons = []content.Season{}
	}

	seasonsJSON, err := json.Marshal(seasons)
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to encode seasons: %w", err)
	}

	var movieData *string
	if c.MovieData != nil {
		b, err := json.Marshal(c.MovieData)
		if err != nil {
			return model.Content{}, fmt.Errorf("failed to encode movie data: %w", err)
		}
		s := string(b)
		movieData = &s
	}

	return model.Content{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Type:          string(c.Type),
		Poster:        c.Poster,
		Backdrop:      c.Backdrop,
		Language:      c.Language,
		Category:      c.Category,
		Year:          int32(c.Year),
		Rating:        c.Rating,
		Duration:      c.Duration,
		MovieData:     movieData,
		Seasons:       string(seasonsJSON),
		DownloadCount: int32(c.DownloadCount),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}

func fromModel(row model.Content) (content.Content, error) {
	c := content.Content{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Type:          content.Type(row.Type),
		Poster:        row.Poster,
		Backdrop:      row.Backdrop,
		Language:      row.Language,
		Category:      row.Category,
		Year:          int(row.Year),
		Rating:        row.Rating,
		Duration:      row.Duration,
		DownloadCount: int(row.DownloadCount),
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
		Seasons:       []content.Season{},
	}

	if row.MovieData != nil {
		c.MovieData = new(content.MovieData)
		if err := json.Unmarshal([]byte(*row.MovieData), c.MovieData); err != nil {
			return content.Content{}, fmt.Errorf("failed to decode movie data for %s: %w", row.ID, err)
		}
	}

	if row.Seasons != "" {
		if err := json.Unmarshal([]byte(row.Seasons), &c.Seasons); err != nil {
			return content.Content{}, fmt.Errorf("failed to decode seasons for %s: %w", row.ID, err)
		}
	}

	return c, nil
}
