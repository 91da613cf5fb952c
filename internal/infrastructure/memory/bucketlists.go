package memory

import (
	"context"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

type bucketListRepo struct {
	db *database
}

// listNameTaken checks the (owner, name) uniqueness rule. Callers hold the lock.
func (t *tables) listNameTaken(owner int64, name string, excludeID int64) bool {
	for _, bl := range t.lists {
		if bl.CreatedBy == owner && bl.Name == name && bl.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *bucketListRepo) Create(_ context.Context, bl *entity.BucketList) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.t.users[bl.CreatedBy]; !ok {
		return repository.ErrNotFound
	}
	if r.db.t.listNameTaken(bl.CreatedBy, bl.Name, 0) {
		return repository.ErrDuplicateName
	}
	r.db.t.nextList++
	now := r.db.now()
	bl.ID = r.db.t.nextList
	bl.CreatedAt, bl.UpdatedAt = now, now
	stored := *bl
	stored.Items = nil
	r.db.t.lists[bl.ID] = stored
	return nil
}

func (r *bucketListRepo) ExistsByName(_ context.Context, owner int64, name string, excludeID int64) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.t.listNameTaken(owner, name, excludeID), nil
}

func (r *bucketListRepo) GetByID(_ context.Context, owner, id int64) (*entity.BucketList, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	bl, ok := r.db.t.lists[id]
	if !ok || bl.CreatedBy != owner {
		return nil, repository.ErrNotFound
	}
	return &bl, nil
}

func (r *bucketListRepo) UpdateName(_ context.Context, owner, id int64, name string) (*entity.BucketList, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	bl, ok := r.db.t.lists[id]
	if !ok || bl.CreatedBy != owner {
		return nil, repository.ErrNotFound
	}
	if r.db.t.listNameTaken(owner, name, id) {
		return nil, repository.ErrDuplicateName
	}
	bl.Name = name
	bl.UpdatedAt = r.db.now()
	r.db.t.lists[id] = bl
	return &bl, nil
}

func (r *bucketListRepo) Delete(_ context.Context, owner, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	bl, ok := r.db.t.lists[id]
	if !ok || bl.CreatedBy != owner {
		return repository.ErrNotFound
	}
	r.db.t.deleteList(id)
	return nil
}

func (r *bucketListRepo) scoped(owner int64, term string) []int64 {
	return sortedIDs(r.db.t.lists, func(bl entity.BucketList) bool {
		return bl.CreatedBy == owner && matches(bl.Name, term)
	})
}

func (r *bucketListRepo) Count(_ context.Context, owner int64, term string) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return len(r.scoped(owner, term)), nil
}

func (r *bucketListRepo) List(_ context.Context, owner int64, term string, limit, offset int) ([]entity.BucketList, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	ids := r.scoped(owner, term)
	if offset >= len(ids) {
		return []entity.BucketList{}, nil
	}
	ids = ids[offset:]
	if limit < len(ids) {
		ids = ids[:limit]
	}
	out := make([]entity.BucketList, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.db.t.lists[id])
	}
	return out, nil
}
