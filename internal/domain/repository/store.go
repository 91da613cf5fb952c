package repository

import "context"

// Store groups the repositories behind one storage backend. WithTx runs fn
// against a Store bound to a single transaction: fn's error rolls back,
// a nil return commits.
type Store interface {
	Users() UserRepository
	BucketLists() BucketListRepository
	Items() ItemRepository
	WithTx(ctx context.Context, fn func(Store) error) error
	Ping(ctx context.Context) error
}
