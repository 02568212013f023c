package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/repository"
)

// The table holds at most one row, pinned to this id.
const tokenRowID = 1

type tokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new TokenRepository implementation
func NewTokenRepository(db *sql.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Load(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("token_repo")

	query, args, err := sqlBuilder.
		Select("token").
		From("session_tokens").
		Where(squirrel.Eq{"id": tokenRowID}).
		ToSql()
	if err != nil {
		return "", err
	}

	var token string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no stored token")
		return "", nil
	}
	if err != nil {
		log.Error("failed to load token: %v", err)
		return "", err
	}
	return token, nil
}

func (r *tokenRepository) Save(ctx context.Context, token string) error {
	log := logger.FromContext(ctx).WithPrefix("token_repo")
	log.Debug("saving token")

	query, args, err := sqlBuilder.
		Insert("session_tokens").
		Columns("id", "token").
		Values(tokenRowID, token).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, saved_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to save token: %v", err)
		return err
	}
	return nil
}

func (r *tokenRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("token_repo")
	log.Debug("deleting token")

	query, args, err := sqlBuilder.
		Delete("session_tokens").
		Where(squirrel.Eq{"id": tokenRowID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete token: %v", err)
	}
	return err
}
