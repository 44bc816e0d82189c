// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/cryptfile/internal/logger"
	"github.com/MKhiriev/cryptfile/models"
)

// journalRepository is the SQLite-backed implementation of
// [JournalRepository].
type journalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] over the given
// journal database.
func NewJournalRepository(db *DB, log *logger.Logger) JournalRepository {
	return &journalRepository{
		db:     db,
		logger: log,
	}
}

// RecordOperation implements [JournalRepository].
func (r *journalRepository) RecordOperation(ctx context.Context, record models.OperationRecord) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := sq.Insert("operations").
		Columns("mode", "target_path", "output_path", "directory", "compressed", "removed", "duration_ms", "created_at").
		Values(
			record.Mode,
			record.TargetPath,
			record.OutputPath,
			record.Directory,
			record.Compressed,
			record.Removed,
			record.Duration.Milliseconds(),
			createdAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build journal insert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "RecordOperation").Msg("error inserting journal record")
		return fmt.Errorf("insert journal record: %w", err)
	}

	return nil
}

// ListOperations implements [JournalRepository].
func (r *journalRepository) ListOperations(ctx context.Context, limit uint64) ([]models.OperationRecord, error) {
	query, args, err := sq.Select("id", "mode", "target_path", "output_path", "directory", "compressed", "removed", "duration_ms", "created_at").
		From("operations").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "ListOperations").Msg("error querying journal")
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var records []models.OperationRecord
	for rows.Next() {
		var rec models.OperationRecord
		var durationMS int64
		if err = rows.Scan(
			&rec.ID,
			&rec.Mode,
			&rec.TargetPath,
			&rec.OutputPath,
			&rec.Directory,
			&rec.Compressed,
			&rec.Removed,
			&durationMS,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan journal record: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal records: %w", err)
	}

	return records, nil
}
