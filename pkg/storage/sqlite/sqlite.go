package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens the sqlite database at filePath. Call Init to apply migrations before use.
func New(ctx context.Context, filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// sqlite only supports one writer; a single connection also keeps :memory: databases shared
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	_, err = db.ExecContext(ctx, "PRAGMA journal_mode=WAL;")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	return &SQLite{
		db: db,
	}, nil
}

var _ storage.Storage = (*SQLite)(nil)

// Init runs any pending migrations
func (s *SQLite) Init(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := runMigrations(s.db); err != nil {
		log.Errorw("failed to migrate database", zap.Error(err))
		return err
	}

	return nil
}

// Close closes the underlying database
func (s *SQLite) Close(ctx context.Context) error {
	return s.db.Close()
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}
