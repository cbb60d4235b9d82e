// Package friends provides PostgreSQL-backed friendship lookups. Edges are
// stored once per unordered pair with profile_a_id < profile_b_id.
package friends

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/diaryfeed/internal/dbx"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FriendIDsOf(ctx context.Context, profileID int64) ([]int64, error) {
	query := `SELECT CASE WHEN profile_a_id = $1 THEN profile_b_id ELSE profile_a_id END
		FROM friends
		WHERE profile_a_id = $1 OR profile_b_id = $1`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to select friends: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	if a == b {
		return false, nil
	}
	lo, hi := models.CanonicalPair(a, b)

	query := `SELECT EXISTS (
		SELECT 1 FROM friends WHERE profile_a_id = $1 AND profile_b_id = $2
	)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, lo, hi).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}
