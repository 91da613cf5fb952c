package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Constraint and unique index names from db/migrations.
const (
	constraintUsersUsername   = "uq_users_username"
	constraintUsersEmail      = "uq_users_email"
	constraintBucketListOwner = "uq_bucketlists_owner_name"
	constraintItemBucketList  = "uq_items_bucketlist_name"
)

// mapError converts pgx errors into repository errors. Unique violations are
// told apart by the constraint that fired. A foreign key violation means the
// parent row (owner or bucket list) is gone.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case foreignKeyViolation:
		return repository.ErrNotFound
	case uniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsersUsername:
			return repository.ErrDuplicateUsername
		case constraintUsersEmail:
			return repository.ErrDuplicateEmail
		case constraintBucketListOwner, constraintItemBucketList:
			return repository.ErrDuplicateName
		}
	}
	return err
}

// likePattern escapes LIKE metacharacters so term is matched literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
