package repository

import (
	"context"
	"time"

	"github.com/nima/farsiflash/internal/models"
)

// DueReminder pairs a learner with their count of overdue items, used by
// the daily reminder digest.
type DueReminder struct {
	UserID   int64
	Email    string
	DueCount int
}

// ProgressRepository handles per-(user, item) review scheduling state
type ProgressRepository interface {
	// Get returns nil (not an error) when the item has never been reviewed.
	Get(ctx context.Context, userID, vocabularyID int64) (*models.ReviewProgress, error)
	// Upsert writes the whole row keyed by (user_id, vocabulary_id). The
	// single-row write is what serializes concurrent reviews of one item.
	Upsert(ctx context.Context, p models.ReviewProgress) error
	ForUser(ctx context.Context, userID int64) (map[int64]models.ReviewProgress, error)
	Stats(ctx context.Context, userID int64, now time.Time) (models.ProgressStats, error)
	UsersWithDueItems(ctx context.Context, now time.Time) ([]DueReminder, error)
}
