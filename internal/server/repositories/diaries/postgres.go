// Package diaries provides PostgreSQL-backed diary queries, including the
// visibility-filtered feed.
package diaries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/dbx"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
	"github.com/lib/pq"
)

const diaryColumns = `id, profile_id, title, content, visibility, created_at, updated_at`

const feedColumns = `d.id, d.profile_id, d.title, d.content, d.visibility, d.created_at, d.updated_at,
		p.id, p.user_id, p.username, p.display_name, p.avatar_url, p.diary_visibility, p.created_at`

const feedFrom = `FROM diaries d
		JOIN profiles p ON p.id = d.profile_id`

const feedOrder = `ORDER BY d.created_at DESC, d.id DESC`

const publicPredicate = `(d.visibility = 'public' AND p.diary_visibility = 'public')`

// personalPredicate mirrors visibility.FeedFilter.Admits.
// $1 is the viewer's friend ids, $2 the viewer's profile id.
const personalPredicate = `(d.visibility = 'public' AND p.diary_visibility = 'public')
		OR (d.visibility = 'friends-only' AND d.profile_id = ANY($1::bigint[]) AND p.diary_visibility = 'public')
		OR (d.visibility = 'friends-only' AND d.profile_id = $2)
		OR (d.visibility = 'private' AND d.profile_id = $2)`

// PostgresRepository implements diary reads over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the entry or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Diary, error) {
	query := `SELECT ` + diaryColumns + ` FROM diaries WHERE id = $1`

	var (
		d         models.Diary
		updatedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.ProfileID, &d.Title, &d.Content, &d.Visibility, &d.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	d.UpdatedAt = nullTime(updatedAt)
	return &d, nil
}

// ListByProfile returns every entry of a profile, newest first, unfiltered.
func (r *PostgresRepository) ListByProfile(ctx context.Context, profileID int64) ([]models.Diary, error) {
	query := `SELECT ` + diaryColumns + ` FROM diaries
		WHERE profile_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to select diaries: %w", err)
	}
	defer rows.Close()

	var result []models.Diary
	for rows.Next() {
		var (
			d         models.Diary
			updatedAt sql.NullTime
		)
		if err := rows.Scan(&d.ID, &d.ProfileID, &d.Title, &d.Content, &d.Visibility, &d.CreatedAt, &updatedAt); err != nil {
			return nil, err
		}
		d.UpdatedAt = nullTime(updatedAt)
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListFeed returns one page of the feed described by filter together with
// each entry's owner.
func (r *PostgresRepository) ListFeed(ctx context.Context, filter visibility.FeedFilter, limit, offset int) ([]models.DiaryWithOwner, error) {
	where, args := feedPredicate(filter)
	query := fmt.Sprintf(`SELECT %s
		%s
		WHERE %s
		%s
		LIMIT $%d OFFSET $%d`, feedColumns, feedFrom, where, feedOrder, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select feed: %w", err)
	}
	defer rows.Close()

	result := make([]models.DiaryWithOwner, 0, limit)
	for rows.Next() {
		row, err := scanFeedRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountFeed counts the rows ListFeed would page through.
func (r *PostgresRepository) CountFeed(ctx context.Context, filter visibility.FeedFilter) (int64, error) {
	where, args := feedPredicate(filter)
	query := fmt.Sprintf(`SELECT COUNT(*)
		%s
		WHERE %s`, feedFrom, where)

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count feed: %w", err)
	}
	return n, nil
}

func feedPredicate(filter visibility.FeedFilter) (string, []any) {
	viewerID, ok := filter.Viewer.ProfileID()
	if !ok {
		return publicPredicate, nil
	}
	return "(" + personalPredicate + ")", []any{pq.Array(filter.Friends.IDs()), viewerID}
}

func scanFeedRow(rows *sql.Rows) (models.DiaryWithOwner, error) {
	var (
		row         models.DiaryWithOwner
		updatedAt   sql.NullTime
		displayName sql.NullString
		avatarURL   sql.NullString
	)
	err := rows.Scan(
		&row.Diary.ID, &row.Diary.ProfileID, &row.Diary.Title, &row.Diary.Content,
		&row.Diary.Visibility, &row.Diary.CreatedAt, &updatedAt,
		&row.Owner.ID, &row.Owner.UserID, &row.Owner.Username, &displayName, &avatarURL,
		&row.Owner.DiaryVisibility, &row.Owner.CreatedAt,
	)
	if err != nil {
		return row, err
	}
	row.Diary.UpdatedAt = nullTime(updatedAt)
	row.Owner.DisplayName = displayName.String
	row.Owner.AvatarURL = avatarURL.String
	return row, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
