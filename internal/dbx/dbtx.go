// Package dbx provides the small DB abstractions shared by repositories:
// DBTX (implemented by both *sql.DB and *sql.Tx), a transaction helper, and
// Transactor, which lets services scope a unit of reads without knowing
// whether a SQL database backs them.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ReadSnapshot is used for feed reads: the friend set, the page and the total
// count of one request must come from the same snapshot.
var ReadSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// Typical use:
//
//	err := dbx.WithTx(ctx, db, dbx.ReadSnapshot, func(ctx context.Context, tx dbx.DBTX) error {
//	    rows, err := tx.QueryContext(ctx, "SELECT ...")
//	    ...
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// Transactor runs fn against a handle scoped to one read-only unit of work.
type Transactor interface {
	ReadTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLTransactor opens a read-only repeatable-read transaction per call.
type SQLTransactor struct {
	db *sql.DB
}

func NewSQLTransactor(db *sql.DB) *SQLTransactor {
	return &SQLTransactor{db: db}
}

func (t *SQLTransactor) ReadTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return WithTx(ctx, t.db, ReadSnapshot, fn)
}

// NoTx calls fn directly with a nil handle. It is meant for repositories that
// ignore the handle, such as the in-memory store.
type NoTx struct{}

func (NoTx) ReadTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return fn(ctx, nil)
}
