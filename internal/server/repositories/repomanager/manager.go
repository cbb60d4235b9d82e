//go:generate mockgen -source=manager.go -destination=../mocks/manager.go -package=mocks -mock_names=RepositoryManager=MockRepositoryManager

package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/diaryfeed/internal/dbx"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/diaries"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/friends"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/profiles"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// runs against a pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Profiles(db dbx.DBTX) profiles.Repository
	Diaries(db dbx.DBTX) diaries.Repository
	Friends(db dbx.DBTX) friends.Repository
}
