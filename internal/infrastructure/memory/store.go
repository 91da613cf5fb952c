// Package memory implements the repositories in process memory. It backs
// STORAGE_DRIVER=memory and the service tests, and enforces the same
// uniqueness and cascade rules as the Postgres schema.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

type tables struct {
	users map[int64]entity.User
	lists map[int64]entity.BucketList
	items map[int64]entity.Item

	nextUser int64
	nextList int64
	nextItem int64
}

func newTables() *tables {
	return &tables{
		users: make(map[int64]entity.User),
		lists: make(map[int64]entity.BucketList),
		items: make(map[int64]entity.Item),
	}
}

func (t *tables) clone() *tables {
	c := &tables{
		users:    make(map[int64]entity.User, len(t.users)),
		lists:    make(map[int64]entity.BucketList, len(t.lists)),
		items:    make(map[int64]entity.Item, len(t.items)),
		nextUser: t.nextUser,
		nextList: t.nextList,
		nextItem: t.nextItem,
	}
	for k, v := range t.users {
		c.users[k] = v
	}
	for k, v := range t.lists {
		c.lists[k] = v
	}
	for k, v := range t.items {
		c.items[k] = v
	}
	return c
}

type database struct {
	mu   sync.RWMutex
	txMu sync.Mutex // one transaction at a time
	t    *tables
	now  func() time.Time
}

// Store is an in-memory repository.Store. It is safe for concurrent use.
type Store struct {
	db   *database
	inTx bool
}

func NewStore() *Store {
	return &Store{db: &database{t: newTables(), now: func() time.Time { return time.Now().UTC() }}}
}

func (s *Store) Users() repository.UserRepository             { return &userRepo{db: s.db} }
func (s *Store) BucketLists() repository.BucketListRepository { return &bucketListRepo{db: s.db} }
func (s *Store) Items() repository.ItemRepository             { return &itemRepo{db: s.db} }

// Ping always reports success for the in-memory store.
func (s *Store) Ping(context.Context) error { return nil }

// WithTx serializes transactions and restores the state captured at the start
// when fn fails or panics.
func (s *Store) WithTx(ctx context.Context, fn func(repository.Store) error) (err error) {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.db.txMu.Lock()
	defer s.db.txMu.Unlock()

	s.db.mu.RLock()
	snapshot := s.db.t.clone()
	s.db.mu.RUnlock()

	rollback := func() {
		s.db.mu.Lock()
		s.db.t = snapshot
		s.db.mu.Unlock()
	}
	defer func() {
		if p := recover(); p != nil {
			rollback()
			panic(p)
		}
		if err != nil {
			rollback()
		}
	}()

	return fn(&Store{db: s.db, inTx: true})
}

func matches(name, term string) bool {
	return term == "" || strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

func sortedIDs[V any](m map[int64]V, keep func(V) bool) []int64 {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

var _ repository.Store = (*Store)(nil)
