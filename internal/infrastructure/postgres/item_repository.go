package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

type ItemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, name, bucketlist_id, done, created_at, updated_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	it := &entity.Item{}
	if err := row.Scan(&it.ID, &it.Name, &it.BucketListID, &it.Done, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return it, nil
}

func (r *ItemRepository) Create(ctx context.Context, it *entity.Item) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO items (name, bucketlist_id, done)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, it.Name, it.BucketListID, it.Done)

	return mapError(row.Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt))
}

func (r *ItemRepository) ExistsByName(ctx context.Context, bucketListID int64, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM items
			WHERE bucketlist_id = $1 AND name = $2 AND id <> $3
		)
	`, bucketListID, name, excludeID).Scan(&exists)
	return exists, mapError(err)
}

func (r *ItemRepository) GetByID(ctx context.Context, bucketListID, id int64) (*entity.Item, error) {
	return scanItem(r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE id = $1 AND bucketlist_id = $2
	`, id, bucketListID))
}

func (r *ItemRepository) collect(rows pgx.Rows) ([]entity.Item, error) {
	defer rows.Close()
	out := []entity.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, mapError(rows.Err())
}

func (r *ItemRepository) ListByBucketList(ctx context.Context, bucketListID int64) ([]entity.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE bucketlist_id = $1
		ORDER BY id
	`, bucketListID)
	if err != nil {
		return nil, mapError(err)
	}
	return r.collect(rows)
}

func (r *ItemRepository) ListByBucketLists(ctx context.Context, bucketListIDs []int64) (map[int64][]entity.Item, error) {
	grouped := make(map[int64][]entity.Item, len(bucketListIDs))
	if len(bucketListIDs) == 0 {
		return grouped, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE bucketlist_id = ANY($1)
		ORDER BY bucketlist_id, id
	`, bucketListIDs)
	if err != nil {
		return nil, mapError(err)
	}
	items, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		grouped[it.BucketListID] = append(grouped[it.BucketListID], it)
	}
	return grouped, nil
}

// Update writes name and done as given and refreshes updated_at.
func (r *ItemRepository) Update(ctx context.Context, it *entity.Item) error {
	row := r.db.QueryRow(ctx, `
		UPDATE items
		SET name = $1, done = $2, updated_at = now()
		WHERE id = $3 AND bucketlist_id = $4
		RETURNING updated_at
	`, it.Name, it.Done, it.ID, it.BucketListID)

	return mapError(row.Scan(&it.UpdatedAt))
}

func (r *ItemRepository) Delete(ctx context.Context, bucketListID, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1 AND bucketlist_id = $2`, id, bucketListID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
