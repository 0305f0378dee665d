package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new AuthRepository implementation
func NewAuthRepository(db *sql.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) InsertToken(ctx context.Context, token models.AuthToken) error {
	log := logger.FromContext(ctx).WithPrefix("auth_repo")
	log.Debug("inserting magic-link token for %s", token.Email)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO auth_tokens (token, email, expires_at) VALUES (?, ?, ?)
`, token.Token, token.Email, token.ExpiresAt)
	if err != nil {
		log.Error("failed to insert auth token: %v", err)
	}
	return err
}

func (r *authRepository) ConsumeToken(ctx context.Context, token string, now time.Time) (*models.AuthToken, error) {
	log := logger.FromContext(ctx).WithPrefix("auth_repo")

	// The UPDATE guard makes consumption single-use even under concurrent
	// verification attempts.
	res, err := r.db.ExecContext(ctx, `
UPDATE auth_tokens
SET consumed_at = ?
WHERE token = ? AND consumed_at IS NULL AND expires_at > ?
`, now, token, now)
	if err != nil {
		log.Error("failed to consume auth token: %v", err)
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		log.Debug("auth token unknown, expired, or already consumed")
		return nil, nil
	}

	var t models.AuthToken
	err = r.db.QueryRowContext(ctx, `
SELECT token, email, expires_at, consumed_at, created_at FROM auth_tokens WHERE token = ?
`, token).Scan(&t.Token, &t.Email, &t.ExpiresAt, &t.ConsumedAt, &t.CreatedAt)
	if err != nil {
		log.Error("failed to load consumed token: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *authRepository) InsertSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx).WithPrefix("auth_repo")
	log.Debug("inserting session for user=%d", session.UserID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)
`, session.Token, session.UserID, session.ExpiresAt)
	if err != nil {
		log.Error("failed to insert session: %v", err)
	}
	return err
}

func (r *authRepository) GetSession(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	log := logger.FromContext(ctx).WithPrefix("auth_repo")

	var s models.Session
	err := r.db.QueryRowContext(ctx, `
SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = ? AND expires_at > ?
`, token, now).Scan(&s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *authRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (r *authRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("auth_repo")

	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now); err != nil {
		log.Error("failed to delete expired sessions: %v", err)
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE expires_at <= ?`, now); err != nil {
		log.Error("failed to delete expired tokens: %v", err)
		return err
	}
	return nil
}
