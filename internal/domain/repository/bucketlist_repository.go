package repository

import (
	"context"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
)

// BucketListRepository reads and writes bucket lists. Every method is scoped
// to owner: a list held by someone else behaves exactly like a missing one.
type BucketListRepository interface {
	Create(ctx context.Context, bl *entity.BucketList) error
	// ExistsByName reports whether owner already has a list called name,
	// ignoring the list with id excludeID (0 ignores nothing).
	ExistsByName(ctx context.Context, owner int64, name string, excludeID int64) (bool, error)
	GetByID(ctx context.Context, owner, id int64) (*entity.BucketList, error)
	UpdateName(ctx context.Context, owner, id int64, name string) (*entity.BucketList, error)
	Delete(ctx context.Context, owner, id int64) error
	// Count and List apply the same case-insensitive substring filter on name; an
	// empty term matches everything. List orders by id ascending.
	Count(ctx context.Context, owner int64, term string) (int, error)
	List(ctx context.Context, owner int64, term string, limit, offset int) ([]entity.BucketList, error)
}
