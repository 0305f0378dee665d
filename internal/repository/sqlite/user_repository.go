package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = "id, email, display_name, total_xp, current_level, streak_days, longest_streak, last_practice_date, created_at"

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.TotalXP, &u.CurrentLevel,
		&u.StreakDays, &u.LongestStreak, &u.LastPracticeDate, &u.CreatedAt,
	)
	return u, err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user id=%d: %v", id, err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, normalizeEmail(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user by email: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpsertByEmail(ctx context.Context, email string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	email = normalizeEmail(email)

	_, err := r.db.ExecContext(ctx, `INSERT INTO users (email) VALUES (?) ON CONFLICT (email) DO NOTHING`, email)
	if err != nil {
		log.Error("failed to upsert user: %v", err)
		return nil, err
	}
	return r.GetByEmail(ctx, email)
}

func (r *userRepository) Update(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("updating user id=%d xp=%d streak=%d", user.ID, user.TotalXP, user.StreakDays)

	_, err := r.db.ExecContext(ctx, `
UPDATE users
SET display_name = ?, total_xp = ?, current_level = ?, streak_days = ?, longest_streak = ?, last_practice_date = ?
WHERE id = ?
`, user.DisplayName, user.TotalXP, user.CurrentLevel, user.StreakDays, user.LongestStreak, user.LastPracticeDate, user.ID)
	if err != nil {
		log.Error("failed to update user id=%d: %v", user.ID, err)
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
