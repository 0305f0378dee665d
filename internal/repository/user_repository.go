package repository

import (
	"context"

	"github.com/nima/farsiflash/internal/models"
)

// UserRepository handles learner accounts
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpsertByEmail creates the account on first login and returns the
	// existing row afterwards.
	UpsertByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user models.User) error
}
