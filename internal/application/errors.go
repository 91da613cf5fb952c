package application

import (
	"errors"

	repo "github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
)

// Error classes. Every error returned by the services either unwraps to one
// of these or is an internal failure.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a message meant for API clients.
type Error struct {
	class error
	msg   string
}

func newError(class error, msg string) *Error { return &Error{class: class, msg: msg} }

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.class }

var (
	ErrMissingFields      = newError(ErrValidation, "Error. The username or password cannot be empty")
	ErrInvalidEmail       = newError(ErrValidation, "Invalid email address. Please provide a valid email")
	ErrWeakPassword       = newError(ErrValidation, "Password must be at least 6 characters long")
	ErrEmptyName          = newError(ErrValidation, "Name cannot be empty")
	ErrNothingToUpdate    = newError(ErrValidation, "Provide a name or a done status to update")
	ErrInvalidCredentials = newError(ErrUnauthorized, "Invalid username or password. Please try again.")

	ErrUserNotFound       = newError(ErrNotFound, "User not found")
	ErrBucketListNotFound = newError(ErrNotFound, "Bucketlist not found")
	ErrItemNotFound       = newError(ErrNotFound, "Item not found")

	ErrDuplicateUser       = newError(ErrConflict, "User already exists. Please login")
	ErrDuplicateEmail      = newError(ErrConflict, "Email already registered. Please login")
	ErrDuplicateBucketList = newError(ErrConflict, "Bucketlist with that name already exists")
	ErrDuplicateItem       = newError(ErrConflict, "Item with that name already exists in this bucketlist")
)

// translate maps repository errors onto the service errors for one resource.
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return notFound
	case errors.Is(err, repo.ErrDuplicateName):
		return duplicate
	default:
		return err
	}
}
