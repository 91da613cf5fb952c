package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

func seedUser(t *testing.T, s *Store, name string) *entity.User {
	t.Helper()
	u := &entity.User{Username: name, Email: name + "@gori.com", Password: "hash"}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func seedList(t *testing.T, s *Store, owner int64, name string) *entity.BucketList {
	t.Helper()
	bl := &entity.BucketList{Name: name, CreatedBy: owner}
	require.NoError(t, s.BucketLists().Create(context.Background(), bl))
	return bl
}

func TestUsers_Uniqueness(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedUser(t, s, "robley")

	err := s.Users().Create(ctx, &entity.User{Username: "robley", Email: "other@gori.com"})
	require.ErrorIs(t, err, repository.ErrDuplicateUsername)

	err = s.Users().Create(ctx, &entity.User{Username: "other", Email: "robley@gori.com"})
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)

	err = s.Users().Create(ctx, &entity.User{Username: "other", Email: "Robley@Gori.com"})
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)

	ok, err := s.Users().ExistsByEmail(ctx, "ROBLEY@gori.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBucketLists_ScopedToOwner(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := seedUser(t, s, "alice")
	b := seedUser(t, s, "bob")
	bl := seedList(t, s, a.ID, "Go to Dar")

	_, err := s.BucketLists().GetByID(ctx, b.ID, bl.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	_, err = s.BucketLists().UpdateName(ctx, b.ID, bl.ID, "Mine now")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, s.BucketLists().Delete(ctx, b.ID, bl.ID), repository.ErrNotFound)

	got, err := s.BucketLists().GetByID(ctx, a.ID, bl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go to Dar", got.Name)
}

func TestBucketLists_NameUniquePerOwner(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := seedUser(t, s, "alice")
	b := seedUser(t, s, "bob")
	seedList(t, s, a.ID, "Go to Dar")

	err := s.BucketLists().Create(ctx, &entity.BucketList{Name: "Go to Dar", CreatedBy: a.ID})
	require.ErrorIs(t, err, repository.ErrDuplicateName)

	seedList(t, s, b.ID, "Go to Dar")
}

func TestBucketLists_UpdateNameKeepsCreatedAt(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := seedUser(t, s, "alice")
	bl := seedList(t, s, a.ID, "Go to Dar")

	updated, err := s.BucketLists().UpdateName(ctx, a.ID, bl.ID, "Go to Mombasa")
	require.NoError(t, err)
	assert.Equal(t, bl.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	// renaming to its own name is not a duplicate
	_, err = s.BucketLists().UpdateName(ctx, a.ID, bl.ID, "Go to Mombasa")
	require.NoError(t, err)
}

func TestBucketLists_CountAndList(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := seedUser(t, s, "alice")
	b := seedUser(t, s, "bob")
	for i := 1; i <= 15; i++ {
		seedList(t, s, a.ID, fmt.Sprintf("list %02d", i))
	}
	seedList(t, s, a.ID, "Go to Dar")
	seedList(t, s, b.ID, "Go to Dar too")

	n, err := s.BucketLists().Count(ctx, a.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	page, err := s.BucketLists().List(ctx, a.ID, "", 10, 10)
	require.NoError(t, err)
	require.Len(t, page, 6)
	assert.Equal(t, "list 11", page[0].Name)

	n, err = s.BucketLists().Count(ctx, a.ID, "DAR")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	page, err = s.BucketLists().List(ctx, a.ID, "", 10, 100)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestItems_ScopedToParent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := seedUser(t, s, "alice")
	first := seedList(t, s, a.ID, "first")
	second := seedList(t, s, a.ID, "second")

	it := &entity.Item{Name: "I need to go soon", BucketListID: first.ID}
	require.NoError(t, s.Items().Create(ctx, it))
	assert.False(t, it.Done)

	_, err := s.Items().GetByID(ctx, second.ID, it.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = s.Items().Create(ctx, &entity.Item{Name: "I need to go soon", BucketListID: first.ID})
	require.ErrorIs(t, err, repository.ErrDuplicateName)
	require.NoError(t, s.Items().Create(ctx, &entity.Item{Name: "I need to go soon", BucketListID: second.ID}))

	err = s.Items().Create(ctx, &entity.Item{Name: "orphan", BucketListID: 999})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteCascades(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := seedUser(t, s, "alice")
	bl := seedList(t, s, a.ID, "Go to Dar")
	it := &entity.Item{Name: "I need to go soon", BucketListID: bl.ID}
	require.NoError(t, s.Items().Create(ctx, it))

	require.NoError(t, s.BucketLists().Delete(ctx, a.ID, bl.ID))
	_, err := s.Items().GetByID(ctx, bl.ID, it.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	other := seedList(t, s, a.ID, "Climb")
	require.NoError(t, s.Items().Create(ctx, &entity.Item{Name: "Boots", BucketListID: other.ID}))
	require.NoError(t, s.Users().Delete(ctx, a.ID))

	n, err := s.BucketLists().Count(ctx, a.ID, "")
	require.NoError(t, err)
	assert.Zero(t, n)
	items, err := s.Items().ListByBucketList(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWithTx_RollsBack(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := seedUser(t, s, "alice")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx repository.Store) error {
		require.NoError(t, tx.BucketLists().Create(ctx, &entity.BucketList{Name: "temp", CreatedBy: a.ID}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := s.BucketLists().Count(ctx, a.ID, "")
	require.NoError(t, err)
	assert.Zero(t, n)

	err = s.WithTx(ctx, func(tx repository.Store) error {
		return tx.BucketLists().Create(ctx, &entity.BucketList{Name: "kept", CreatedBy: a.ID})
	})
	require.NoError(t, err)
	n, err = s.BucketLists().Count(ctx, a.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWithTx_CanceledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WithTx(ctx, func(repository.Store) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
