package memory

import (
	"context"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

type itemRepo struct {
	db *database
}

func (t *tables) itemNameTaken(bucketListID int64, name string, excludeID int64) bool {
	for _, it := range t.items {
		if it.BucketListID == bucketListID && it.Name == name && it.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *itemRepo) Create(_ context.Context, it *entity.Item) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.t.lists[it.BucketListID]; !ok {
		return repository.ErrNotFound
	}
	if r.db.t.itemNameTaken(it.BucketListID, it.Name, 0) {
		return repository.ErrDuplicateName
	}
	r.db.t.nextItem++
	now := r.db.now()
	it.ID = r.db.t.nextItem
	it.CreatedAt, it.UpdatedAt = now, now
	r.db.t.items[it.ID] = *it
	return nil
}

func (r *itemRepo) ExistsByName(_ context.Context, bucketListID int64, name string, excludeID int64) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.t.itemNameTaken(bucketListID, name, excludeID), nil
}

func (r *itemRepo) GetByID(_ context.Context, bucketListID, id int64) (*entity.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	it, ok := r.db.t.items[id]
	if !ok || it.BucketListID != bucketListID {
		return nil, repository.ErrNotFound
	}
	return &it, nil
}

func (r *itemRepo) ListByBucketList(_ context.Context, bucketListID int64) ([]entity.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	ids := sortedIDs(r.db.t.items, func(it entity.Item) bool { return it.BucketListID == bucketListID })
	out := make([]entity.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.db.t.items[id])
	}
	return out, nil
}

func (r *itemRepo) ListByBucketLists(_ context.Context, bucketListIDs []int64) (map[int64][]entity.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	wanted := make(map[int64]bool, len(bucketListIDs))
	for _, id := range bucketListIDs {
		wanted[id] = true
	}
	grouped := make(map[int64][]entity.Item, len(bucketListIDs))
	ids := sortedIDs(r.db.t.items, func(it entity.Item) bool { return wanted[it.BucketListID] })
	for _, id := range ids {
		it := r.db.t.items[id]
		grouped[it.BucketListID] = append(grouped[it.BucketListID], it)
	}
	return grouped, nil
}

func (r *itemRepo) Update(_ context.Context, it *entity.Item) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.t.items[it.ID]
	if !ok || stored.BucketListID != it.BucketListID {
		return repository.ErrNotFound
	}
	if r.db.t.itemNameTaken(it.BucketListID, it.Name, it.ID) {
		return repository.ErrDuplicateName
	}
	stored.Name = it.Name
	stored.Done = it.Done
	stored.UpdatedAt = r.db.now()
	r.db.t.items[it.ID] = stored
	*it = stored
	return nil
}

func (r *itemRepo) Delete(_ context.Context, bucketListID, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	it, ok := r.db.t.items[id]
	if !ok || it.BucketListID != bucketListID {
		return repository.ErrNotFound
	}
	delete(r.db.t.items, id)
	return nil
}
