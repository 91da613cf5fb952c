package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

// BucketListRepository filters every statement by created_by so that lists of
// other users are never read or written.
type BucketListRepository struct {
	db DBTX
}

func NewBucketListRepository(db DBTX) *BucketListRepository {
	return &BucketListRepository{db: db}
}

const bucketListColumns = `id, name, created_by, created_at, updated_at`

func scanBucketList(row pgx.Row) (*entity.BucketList, error) {
	bl := &entity.BucketList{}
	if err := row.Scan(&bl.ID, &bl.Name, &bl.CreatedBy, &bl.CreatedAt, &bl.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return bl, nil
}

func (r *BucketListRepository) Create(ctx context.Context, bl *entity.BucketList) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO bucketlists (name, created_by)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, bl.Name, bl.CreatedBy)

	return mapError(row.Scan(&bl.ID, &bl.CreatedAt, &bl.UpdatedAt))
}

func (r *BucketListRepository) ExistsByName(ctx context.Context, owner int64, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bucketlists
			WHERE created_by = $1 AND name = $2 AND id <> $3
		)
	`, owner, name, excludeID).Scan(&exists)
	return exists, mapError(err)
}

func (r *BucketListRepository) GetByID(ctx context.Context, owner, id int64) (*entity.BucketList, error) {
	return scanBucketList(r.db.QueryRow(ctx, `
		SELECT `+bucketListColumns+`
		FROM bucketlists
		WHERE id = $1 AND created_by = $2
	`, id, owner))
}

func (r *BucketListRepository) UpdateName(ctx context.Context, owner, id int64, name string) (*entity.BucketList, error) {
	return scanBucketList(r.db.QueryRow(ctx, `
		UPDATE bucketlists
		SET name = $1, updated_at = now()
		WHERE id = $2 AND created_by = $3
		RETURNING `+bucketListColumns, name, id, owner))
}

func (r *BucketListRepository) Delete(ctx context.Context, owner, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM bucketlists WHERE id = $1 AND created_by = $2`, id, owner)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// scopeFilter builds the WHERE clause shared by Count and List.
func scopeFilter(owner int64, term string) (string, []any) {
	where := ` WHERE created_by = $1`
	args := []any{owner}
	if term != "" {
		args = append(args, likePattern(term))
		where += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}
	return where, args
}

func (r *BucketListRepository) Count(ctx context.Context, owner int64, term string) (int, error) {
	where, args := scopeFilter(owner, term)
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM bucketlists`+where, args...).Scan(&n); err != nil {
		return 0, mapError(err)
	}
	return int(n), nil
}

func (r *BucketListRepository) List(ctx context.Context, owner int64, term string, limit, offset int) ([]entity.BucketList, error) {
	where, args := scopeFilter(owner, term)
	args = append(args, limit, offset)
	q := `SELECT ` + bucketListColumns + ` FROM bucketlists` + where +
		` ORDER BY id LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.BucketList, 0, limit)
	for rows.Next() {
		bl, err := scanBucketList(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *bl)
	}
	return out, mapError(rows.Err())
}

var _ repository.BucketListRepository = (*BucketListRepository)(nil)
