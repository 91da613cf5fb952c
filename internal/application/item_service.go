package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	repo "github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
)

// ItemService manages items. Every call first resolves the parent list within
// the owner's scope, so items under someone else's list are never reachable.
type ItemService struct {
	Store  repo.Store
	Logger *logrus.Logger
}

func NewItemService(store repo.Store, logger *logrus.Logger) *ItemService {
	return &ItemService{Store: store, Logger: logger}
}

// ItemUpdate carries the fields of a partial update; nil fields are left untouched.
type ItemUpdate struct {
	Name *string
	Done *bool
}

func requireList(ctx context.Context, store repo.Store, owner, listID int64) error {
	_, err := store.BucketLists().GetByID(ctx, owner, listID)
	return translate(err, ErrBucketListNotFound, err)
}

func (s *ItemService) Create(ctx context.Context, owner, listID int64, name string) (*entity.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	it := &entity.Item{Name: name, BucketListID: listID}
	err := s.Store.WithTx(ctx, func(tx repo.Store) error {
		if err := requireList(ctx, tx, owner, listID); err != nil {
			return err
		}
		taken, err := tx.Items().ExistsByName(ctx, listID, name, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateItem
		}
		return translate(tx.Items().Create(ctx, it), ErrBucketListNotFound, ErrDuplicateItem)
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *ItemService) List(ctx context.Context, owner, listID int64) ([]entity.Item, error) {
	if err := requireList(ctx, s.Store, owner, listID); err != nil {
		return nil, err
	}
	return s.Store.Items().ListByBucketList(ctx, listID)
}

func (s *ItemService) Get(ctx context.Context, owner, listID, itemID int64) (*entity.Item, error) {
	if err := requireList(ctx, s.Store, owner, listID); err != nil {
		return nil, err
	}
	it, err := s.Store.Items().GetByID(ctx, listID, itemID)
	if err != nil {
		return nil, translate(err, ErrItemNotFound, err)
	}
	return it, nil
}

// Update applies a partial update. Only the fields present in in change.
func (s *ItemService) Update(ctx context.Context, owner, listID, itemID int64, in ItemUpdate) (*entity.Item, error) {
	if in.Name == nil && in.Done == nil {
		return nil, ErrNothingToUpdate
	}
	var name string
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
	}

	var updated *entity.Item
	err := s.Store.WithTx(ctx, func(tx repo.Store) error {
		if err := requireList(ctx, tx, owner, listID); err != nil {
			return err
		}
		it, err := tx.Items().GetByID(ctx, listID, itemID)
		if err != nil {
			return translate(err, ErrItemNotFound, err)
		}
		if in.Name != nil && name != it.Name {
			taken, err := tx.Items().ExistsByName(ctx, listID, name, itemID)
			if err != nil {
				return err
			}
			if taken {
				return ErrDuplicateItem
			}
			it.Name = name
		}
		if in.Done != nil {
			it.Done = *in.Done
		}
		if err := tx.Items().Update(ctx, it); err != nil {
			return translate(err, ErrItemNotFound, ErrDuplicateItem)
		}
		updated = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an item and returns what was removed.
func (s *ItemService) Delete(ctx context.Context, owner, listID, itemID int64) (*entity.Item, error) {
	var deleted *entity.Item
	err := s.Store.WithTx(ctx, func(tx repo.Store) error {
		if err := requireList(ctx, tx, owner, listID); err != nil {
			return err
		}
		it, err := tx.Items().GetByID(ctx, listID, itemID)
		if err != nil {
			return translate(err, ErrItemNotFound, err)
		}
		if err := tx.Items().Delete(ctx, listID, itemID); err != nil {
			return translate(err, ErrItemNotFound, err)
		}
		deleted = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	helpers.LogInfo(s.Logger, "item deleted", logrus.Fields{"item_id": itemID, "bucketlist_id": listID, "user_id": owner})
	return deleted, nil
}
