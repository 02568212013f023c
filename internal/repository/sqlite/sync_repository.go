package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/repository"
)

const defaultRecentLimit = 20

type syncRepository struct {
	db *sql.DB
}

// NewSyncRepository creates a new SyncRepository implementation
func NewSyncRepository(db *sql.DB) repository.SyncRepository {
	return &syncRepository{db: db}
}

func (r *syncRepository) Record(ctx context.Context, rec models.SyncRecord) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("sync_repo")
	log.Debug("recording sync attempt: problem_id=%s, outcome=%s", rec.ProblemID, rec.Outcome)

	if rec.AttemptedAt.IsZero() {
		rec.AttemptedAt = time.Now().UTC()
	}

	query, args, err := sqlBuilder.
		Insert("progress_sync").
		Columns("identity_id", "problem_id", "status", "outcome", "error", "attempted_at").
		Values(rec.IdentityID, rec.ProblemID, rec.Status, rec.Outcome, rec.Error, rec.AttemptedAt).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to record sync attempt: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns the newest attempts first. limit <= 0 uses a default of 20.
func (r *syncRepository) Recent(ctx context.Context, identityID string, limit int) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("sync_repo")
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	query, args, err := sqlBuilder.
		Select("id", "identity_id", "problem_id", "status", "outcome", "error", "attempted_at").
		From("progress_sync").
		Where(squirrel.Eq{"identity_id": identityID}).
		OrderBy("attempted_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query sync log: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.SyncRecord
	for rows.Next() {
		var rec models.SyncRecord
		if err := rows.Scan(&rec.ID, &rec.IdentityID, &rec.ProblemID, &rec.Status, &rec.Outcome, &rec.Error, &rec.AttemptedAt); err != nil {
			log.Error("failed to scan sync row: %v", err)
			return nil, err
		}
		out = append(out, rec)
	}
	log.Debug("found %d sync records", len(out))
	return out, rows.Err()
}

func (r *syncRepository) CountFailed(ctx context.Context, identityID string) (int, error) {
	query, args, err := sqlBuilder.
		Select("COUNT(*)").
		From("progress_sync").
		Where(squirrel.Eq{"identity_id": identityID, "outcome": models.SyncFailed}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).WithPrefix("sync_repo").Error("failed to count failed syncs: %v", err)
		return 0, err
	}
	return count, nil
}
