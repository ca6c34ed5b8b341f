// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pdfplace Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/pdfplace/pdfplace/internal/logger"
)

// sqliteKV is the SQLite-backed KeyValue implementation: a single kv table
// keyed by entry name, holding JSON-encoded values. It enforces a hard
// per-value size limit before touching the database; callers see the
// rejection as ErrValueTooLarge and fall back to a smaller value.
type sqliteKV struct {
	db            *DB
	maxValueBytes int64
	logger        *logger.Logger
}

// NewKeyValue constructs the SQLite-backed KeyValue repository.
// maxValueBytes is the hard per-value limit; Set rejects larger values with
// ErrValueTooLarge without writing.
func NewKeyValue(db *DB, maxValueBytes int64, log *logger.Logger) KeyValue {
	return &sqliteKV{
		db:            db,
		maxValueBytes: maxValueBytes,
		logger:        log,
	}
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	row := s.db.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&value); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		s.logger.Err(scanErr).
			Str("func", "sqliteKV.Get").
			Str("key", key).
			Msg("failed to scan kv row")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, scanErr)
	}

	return value, nil
}

func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	if int64(len(value)) > s.maxValueBytes {
		return fmt.Errorf("%w: key=%s size=%d limit=%d", ErrValueTooLarge, key, len(value), s.maxValueBytes)
	}

	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Set").
			Str("key", key).
			Int("size", len(value)).
			Msg("failed to execute upsert for kv entry")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Delete").
			Str("key", key).
			Msg("failed to execute delete for kv entry")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
