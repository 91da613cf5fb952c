package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/pagination"
	repo "github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
)

// BucketListService manages the bucket lists of one acting user at a time.
// The owner argument of every method is the identity resolved by the auth guard.
type BucketListService struct {
	Store  repo.Store
	Logger *logrus.Logger
}

func NewBucketListService(store repo.Store, logger *logrus.Logger) *BucketListService {
	return &BucketListService{Store: store, Logger: logger}
}

// BucketListPage is one page of a listing with the window used to build links.
type BucketListPage struct {
	Window      pagination.Window
	BucketLists []entity.BucketList
}

func (s *BucketListService) Create(ctx context.Context, owner int64, name string) (*entity.BucketList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	bl := &entity.BucketList{Name: name, CreatedBy: owner}
	err := s.Store.WithTx(ctx, func(tx repo.Store) error {
		taken, err := tx.BucketLists().ExistsByName(ctx, owner, name, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateBucketList
		}
		return translate(tx.BucketLists().Create(ctx, bl), ErrUserNotFound, ErrDuplicateBucketList)
	})
	if err != nil {
		return nil, err
	}
	bl.Items = []entity.Item{}
	return bl, nil
}

// List returns one page of the owner's lists, optionally filtered by a
// case-insensitive substring of the name. A search that matches nothing is
// reported as ErrBucketListNotFound; a plain listing of nothing is an empty page.
func (s *BucketListService) List(ctx context.Context, owner int64, p pagination.Params) (*BucketListPage, error) {
	p = p.Normalize()
	total, err := s.Store.BucketLists().Count(ctx, owner, p.Search)
	if err != nil {
		return nil, err
	}
	if p.Search != "" && total == 0 {
		return nil, ErrBucketListNotFound
	}
	lists, err := s.Store.BucketLists().List(ctx, owner, p.Search, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, s.Store, lists); err != nil {
		return nil, err
	}
	return &BucketListPage{Window: pagination.NewWindow(p, total), BucketLists: lists}, nil
}

func (s *BucketListService) attachItems(ctx context.Context, store repo.Store, lists []entity.BucketList) error {
	if len(lists) == 0 {
		return nil
	}
	ids := make([]int64, len(lists))
	for i := range lists {
		ids[i] = lists[i].ID
	}
	grouped, err := store.Items().ListByBucketLists(ctx, ids)
	if err != nil {
		return err
	}
	for i := range lists {
		lists[i].Items = grouped[lists[i].ID]
		if lists[i].Items == nil {
			lists[i].Items = []entity.Item{}
		}
	}
	return nil
}

func (s *BucketListService) Get(ctx context.Context, owner, id int64) (*entity.BucketList, error) {
	bl, err := s.Store.BucketLists().GetByID(ctx, owner, id)
	if err != nil {
		return nil, translate(err, ErrBucketListNotFound, err)
	}
	one := []entity.BucketList{*bl}
	if err := s.attachItems(ctx, s.Store, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Update renames a list. Renaming a list to its current name is allowed.
func (s *BucketListService) Update(ctx context.Context, owner, id int64, name string) (*entity.BucketList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	var updated []entity.BucketList
	err := s.Store.WithTx(ctx, func(tx repo.Store) error {
		if _, err := tx.BucketLists().GetByID(ctx, owner, id); err != nil {
			return translate(err, ErrBucketListNotFound, err)
		}
		taken, err := tx.BucketLists().ExistsByName(ctx, owner, name, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateBucketList
		}
		bl, err := tx.BucketLists().UpdateName(ctx, owner, id, name)
		if err != nil {
			return translate(err, ErrBucketListNotFound, ErrDuplicateBucketList)
		}
		updated = []entity.BucketList{*bl}
		return s.attachItems(ctx, tx, updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated[0], nil
}

// Delete removes a list with all of its items and returns what was removed.
func (s *BucketListService) Delete(ctx context.Context, owner, id int64) (*entity.BucketList, error) {
	var deleted *entity.BucketList
	err := s.Store.WithTx(ctx, func(tx repo.Store) error {
		bl, err := tx.BucketLists().GetByID(ctx, owner, id)
		if err != nil {
			return translate(err, ErrBucketListNotFound, err)
		}
		if err := tx.BucketLists().Delete(ctx, owner, id); err != nil {
			return translate(err, ErrBucketListNotFound, err)
		}
		deleted = bl
		return nil
	})
	if err != nil {
		return nil, err
	}
	helpers.LogInfo(s.Logger, "bucketlist deleted", logrus.Fields{"bucketlist_id": id, "user_id": owner})
	return deleted, nil
}
