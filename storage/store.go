package storage

import (
	"context"
	"errors"

	"github.com/jobmatch/backend/models"
)

var (
	// ErrUserExists is returned when an account with the same email exists
	ErrUserExists = errors.New("user with this email already exists")
	// ErrUserNotFound is returned when no account matches
	ErrUserNotFound = errors.New("user not found")
)

// UserStore persists user accounts
type UserStore interface {
	// CreateUser stores user and sets its ID and timestamps
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Close() error
}
