package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

var (
	ts          = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	listColumns = []string{"id", "name", "created_by", "created_at", "updated_at"}
	itemCols    = []string{"id", "name", "bucketlist_id", "done", "created_at", "updated_at"}
)

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bucketlists").
		WithArgs("Go to Dar", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), ts, ts))
	mock.ExpectCommit()

	bl := &entity.BucketList{Name: "Go to Dar", CreatedBy: 1}
	err := store.WithTx(context.Background(), func(tx repository.Store) error {
		return tx.BucketLists().Create(context.Background(), bl)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), bl.ID)
	assert.Equal(t, ts, bl.CreatedAt)
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := store.WithTx(context.Background(), func(tx repository.Store) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = store.WithTx(context.Background(), func(tx repository.Store) error {
			panic("kaput")
		})
	})
}

func TestWithTx_BeginError(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

	called := false
	err := store.WithTx(context.Background(), func(tx repository.Store) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}

func TestWithTx_NestedJoinsOuter(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := store.WithTx(context.Background(), func(tx repository.Store) error {
		return tx.WithTx(context.Background(), func(inner repository.Store) error { return nil })
	})
	require.NoError(t, err)
}

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_username"}), repository.ErrDuplicateUsername)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}), repository.ErrDuplicateEmail)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_bucketlists_owner_name"}), repository.ErrDuplicateName)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_items_bucketlist_name"}), repository.ErrDuplicateName)

	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23503", ConstraintName: "bucketlists_created_by_fkey"}), repository.ErrNotFound)

	other := &pgconn.PgError{Code: "40001"}
	assert.Same(t, other, mapError(other))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%dar%", likePattern("dar"))
	assert.Equal(t, `%100\%\_sure\\%`, likePattern(`100%_sure\`))
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("robley", "robley@gori.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_username"})

	err := repo.Create(context.Background(), &entity.User{Username: "robley", Email: "robley@gori.com", Password: "hash"})
	require.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("robley").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(int64(1), "robley", "robley@gori.com", "hash", ts, ts))
	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByUsername(context.Background(), "robley")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "hash", u.Password)

	_, err = repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec("DELETE FROM users").WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM users").WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), 1))
	require.ErrorIs(t, repo.Delete(context.Background(), 1), repository.ErrNotFound)
}

func TestBucketListRepository_GetByIDScopedToOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewBucketListRepository(mock)

	q := regexp.QuoteMeta("WHERE id = $1 AND created_by = $2")
	mock.ExpectQuery(q).WithArgs(int64(5), int64(1)).
		WillReturnRows(pgxmock.NewRows(listColumns).AddRow(int64(5), "Go to Dar", int64(1), ts, ts))
	mock.ExpectQuery(q).WithArgs(int64(5), int64(2)).
		WillReturnError(pgx.ErrNoRows)

	bl, err := repo.GetByID(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, "Go to Dar", bl.Name)

	_, err = repo.GetByID(context.Background(), 2, 5)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBucketListRepository_ExistsByName(t *testing.T) {
	mock := newMock(t)
	repo := NewBucketListRepository(mock)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(1), "Go to Dar", int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsByName(context.Background(), 1, "Go to Dar", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBucketListRepository_UpdateNameDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewBucketListRepository(mock)

	mock.ExpectQuery("UPDATE bucketlists").WithArgs("Climb", int64(5), int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_bucketlists_owner_name"})

	_, err := repo.UpdateName(context.Background(), 1, 5, "Climb")
	require.ErrorIs(t, err, repository.ErrDuplicateName)
}

func TestBucketListRepository_DeleteMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewBucketListRepository(mock)

	mock.ExpectExec("DELETE FROM bucketlists").WithArgs(int64(9), int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 1, 9), repository.ErrNotFound)
}

func TestBucketListRepository_CountAndListWithSearch(t *testing.T) {
	mock := newMock(t)
	repo := NewBucketListRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM bucketlists WHERE created_by = $1 AND name ILIKE $2")).
		WithArgs(int64(1), "%dar%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE created_by = $1 AND name ILIKE $2 ORDER BY id LIMIT $3 OFFSET $4")).
		WithArgs(int64(1), "%dar%", 10, 0).
		WillReturnRows(pgxmock.NewRows(listColumns).AddRow(int64(5), "Go to Dar", int64(1), ts, ts))

	n, err := repo.Count(context.Background(), 1, "dar")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lists, err := repo.List(context.Background(), 1, "dar", 10, 0)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, int64(5), lists[0].ID)
}

func TestBucketListRepository_ListWithoutSearch(t *testing.T) {
	mock := newMock(t)
	repo := NewBucketListRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE created_by = $1 ORDER BY id LIMIT $2 OFFSET $3")).
		WithArgs(int64(1), 10, 10).
		WillReturnRows(pgxmock.NewRows(listColumns))

	lists, err := repo.List(context.Background(), 1, "", 10, 10)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestItemRepository_ListByBucketLists(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE bucketlist_id = ANY($1)")).
		WithArgs([]int64{5, 6}).
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow(int64(1), "I need to go soon", int64(5), false, ts, ts).
			AddRow(int64(2), "Book flights", int64(5), true, ts, ts).
			AddRow(int64(3), "Pack", int64(6), false, ts, ts))

	grouped, err := repo.ListByBucketLists(context.Background(), []int64{5, 6})
	require.NoError(t, err)
	assert.Len(t, grouped[5], 2)
	assert.Len(t, grouped[6], 1)
	assert.True(t, grouped[5][1].Done)
}

func TestItemRepository_ListByBucketListsEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	grouped, err := repo.ListByBucketLists(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, grouped)
}

func TestItemRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	later := ts.Add(time.Minute)
	mock.ExpectQuery("UPDATE items").
		WithArgs("I need to go soon", true, int64(1), int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(later))
	mock.ExpectQuery("UPDATE items").
		WithArgs("x", false, int64(2), int64(5)).
		WillReturnError(pgx.ErrNoRows)

	it := &entity.Item{ID: 1, BucketListID: 5, Name: "I need to go soon", Done: true, CreatedAt: ts}
	require.NoError(t, repo.Update(context.Background(), it))
	assert.Equal(t, later, it.UpdatedAt)

	err := repo.Update(context.Background(), &entity.Item{ID: 2, BucketListID: 5, Name: "x"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItemRepository_CreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery("INSERT INTO items").
		WithArgs("Pack", int64(5), false).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_items_bucketlist_name"})

	err := repo.Create(context.Background(), &entity.Item{Name: "Pack", BucketListID: 5})
	require.ErrorIs(t, err, repository.ErrDuplicateName)
}

func TestBucketListRepository_CreateForDeletedOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewBucketListRepository(mock)

	mock.ExpectQuery("INSERT INTO bucketlists").
		WithArgs("Go to Dar", int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "bucketlists_created_by_fkey"})

	err := repo.Create(context.Background(), &entity.BucketList{Name: "Go to Dar", CreatedBy: 1})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItemRepository_CreateUnderDeletedList(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery("INSERT INTO items").
		WithArgs("Pack", int64(5), false).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "items_bucketlist_id_fkey"})

	err := repo.Create(context.Background(), &entity.Item{Name: "Pack", BucketListID: 5})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_CreateDuplicateEmailIgnoresCase(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("other", "Robley@Gori.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})

	err := repo.Create(context.Background(), &entity.User{Username: "other", Email: "Robley@Gori.com", Password: "hash"})
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)
}
