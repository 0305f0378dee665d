package repository

import (
	"context"
	"time"

	"github.com/nima/farsiflash/internal/models"
)

// AuthRepository handles magic-link tokens and browser sessions
type AuthRepository interface {
	InsertToken(ctx context.Context, token models.AuthToken) error
	// ConsumeToken marks the token used and returns its email. Returns nil
	// when the token is unknown, expired, or already consumed.
	ConsumeToken(ctx context.Context, token string, now time.Time) (*models.AuthToken, error)
	InsertSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, token string, now time.Time) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) error
}
