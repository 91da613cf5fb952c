package memory

import (
	"context"
	"strings"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

type userRepo struct {
	db *database
}

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.t.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	r.db.t.nextUser++
	now := r.db.now()
	u.ID = r.db.t.nextUser
	u.CreatedAt, u.UpdatedAt = now, now
	r.db.t.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.t.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.t.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.t.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.t.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.t.users, id)
	for listID, bl := range r.db.t.lists {
		if bl.CreatedBy == id {
			r.db.t.deleteList(listID)
		}
	}
	return nil
}

// deleteList removes a list and its items. Callers hold the write lock.
func (t *tables) deleteList(id int64) {
	delete(t.lists, id)
	for itemID, it := range t.items {
		if it.BucketListID == id {
			delete(t.items, itemID)
		}
	}
}
