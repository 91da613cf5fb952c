package repository

import (
	"context"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
)

// ItemRepository reads and writes items within one parent bucket list. Callers
// check list ownership before reaching it.
type ItemRepository interface {
	Create(ctx context.Context, it *entity.Item) error
	ExistsByName(ctx context.Context, bucketListID int64, name string, excludeID int64) (bool, error)
	GetByID(ctx context.Context, bucketListID, id int64) (*entity.Item, error)
	ListByBucketList(ctx context.Context, bucketListID int64) ([]entity.Item, error)
	// ListByBucketLists returns the items of every given list keyed by list id.
	ListByBucketLists(ctx context.Context, bucketListIDs []int64) (map[int64][]entity.Item, error)
	Update(ctx context.Context, it *entity.Item) error
	Delete(ctx context.Context, bucketListID, id int64) error
}
