// Package profiles provides PostgreSQL-backed profile lookups.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/dbx"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
)

const selectProfile = `SELECT id, user_id, username, display_name, avatar_url, diary_visibility, created_at
		 FROM profiles
		 `

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	return r.getOne(ctx, selectProfile+`WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	return r.getOne(ctx, selectProfile+`WHERE username = $1`, username)
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return r.getOne(ctx, selectProfile+`WHERE user_id = $1`, userID)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.Profile, error) {
	var (
		p           models.Profile
		displayName sql.NullString
		avatarURL   sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.Username, &displayName, &avatarURL, &p.DiaryVisibility, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	p.DisplayName = displayName.String
	p.AvatarURL = avatarURL.String
	return &p, nil
}
