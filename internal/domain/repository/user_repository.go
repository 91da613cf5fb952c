package repository

import (
	"context"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Delete removes the user together with every bucket list and item it owns.
	Delete(ctx context.Context, id int64) error
}
