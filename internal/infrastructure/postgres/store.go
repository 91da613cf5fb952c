// Package postgres implements the repositories on PostgreSQL through pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

// DBTX is the subset of pgx used by the repositories.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is what the Store needs from a connection pool.
type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// Store hands out repositories bound either to the pool or, inside WithTx, to
// one transaction.
type Store struct {
	pool Pool
	db   DBTX
	inTx bool
}

func NewStore(pool Pool) *Store {
	return &Store{pool: pool, db: pool}
}

func (s *Store) Users() repository.UserRepository {
	return &UserRepository{db: s.db}
}

func (s *Store) BucketLists() repository.BucketListRepository {
	return &BucketListRepository{db: s.db}
}

func (s *Store) Items() repository.ItemRepository {
	return &ItemRepository{db: s.db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// WithTx begins a transaction, runs fn with a Store bound to it, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
// Calls nested inside fn join the outer transaction.
func (s *Store) WithTx(ctx context.Context, fn func(repository.Store) error) (err error) {
	if s.inTx {
		return fn(s)
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rbErr)
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	err = fn(&Store{pool: s.pool, db: tx, inTx: true})
	return err
}

var _ repository.Store = (*Store)(nil)
