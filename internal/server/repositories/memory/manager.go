package memory

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/diaryfeed/internal/dbx"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/diaries"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/friends"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/profiles"
)

// Manager vends repositories over a Store. The DBTX argument is ignored, so
// it pairs with dbx.NoTx.
type Manager struct {
	store *Store
}

func NewManager(s *Store) *Manager {
	return &Manager{store: s}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Profiles(dbx.DBTX) profiles.Repository { return m.store.Profiles() }

func (m *Manager) Diaries(dbx.DBTX) diaries.Repository { return m.store.Diaries() }

func (m *Manager) Friends(dbx.DBTX) friends.Repository { return m.store.Friends() }
