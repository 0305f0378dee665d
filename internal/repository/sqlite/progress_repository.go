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

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

const progressColumns = `user_id, vocabulary_id, repetitions, ease_factor, next_review_date, confidence_level,
last_assessment, is_learned, review_count, total_correct, total_wrong,
consecutive_correct, consecutive_wrong, accuracy, last_reviewed_at, updated_at`

func scanProgress(row interface{ Scan(...any) error }) (models.ReviewProgress, error) {
	var p models.ReviewProgress
	err := row.Scan(
		&p.UserID, &p.VocabularyID, &p.Repetitions, &p.EaseFactor, &p.NextReviewDate, &p.ConfidenceLevel,
		&p.LastAssessment, &p.IsLearned, &p.ReviewCount, &p.TotalCorrect, &p.TotalWrong,
		&p.ConsecutiveCorrect, &p.ConsecutiveWrong, &p.Accuracy, &p.LastReviewedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *progressRepository) Get(ctx context.Context, userID, vocabularyID int64) (*models.ReviewProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	row := r.db.QueryRowContext(ctx, `SELECT `+progressColumns+` FROM review_progress WHERE user_id = ? AND vocabulary_id = ?`, userID, vocabularyID)
	p, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		// Never reviewed: the caller gets nil, not an error.
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress user=%d vocab=%d: %v", userID, vocabularyID, err)
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) Upsert(ctx context.Context, p models.ReviewProgress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: user=%d vocab=%d reps=%d ease=%.2f", p.UserID, p.VocabularyID, p.Repetitions, p.EaseFactor)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_progress (`+progressColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, vocabulary_id) DO UPDATE SET
    repetitions = excluded.repetitions,
    ease_factor = excluded.ease_factor,
    next_review_date = excluded.next_review_date,
    confidence_level = excluded.confidence_level,
    last_assessment = excluded.last_assessment,
    is_learned = excluded.is_learned,
    review_count = excluded.review_count,
    total_correct = excluded.total_correct,
    total_wrong = excluded.total_wrong,
    consecutive_correct = excluded.consecutive_correct,
    consecutive_wrong = excluded.consecutive_wrong,
    accuracy = excluded.accuracy,
    last_reviewed_at = excluded.last_reviewed_at,
    updated_at = excluded.updated_at
`,
		p.UserID, p.VocabularyID, p.Repetitions, p.EaseFactor, p.NextReviewDate, p.ConfidenceLevel,
		p.LastAssessment, p.IsLearned, p.ReviewCount, p.TotalCorrect, p.TotalWrong,
		p.ConsecutiveCorrect, p.ConsecutiveWrong, p.Accuracy, p.LastReviewedAt, p.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert progress: %v", err)
	}
	return err
}

func (r *progressRepository) ForUser(ctx context.Context, userID int64) (map[int64]models.ReviewProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT `+progressColumns+` FROM review_progress WHERE user_id = ?`, userID)
	if err != nil {
		log.Error("failed to load progress for user=%d: %v", userID, err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]models.ReviewProgress)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		out[p.VocabularyID] = p
	}
	log.Debug("loaded %d progress rows for user=%d", len(out), userID)
	return out, rows.Err()
}

func (r *progressRepository) Stats(ctx context.Context, userID int64, now time.Time) (models.ProgressStats, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	var stats models.ProgressStats
	err := r.db.QueryRowContext(ctx, `
SELECT
    (SELECT COUNT(*) FROM vocabulary),
    COUNT(*),
    COALESCE(SUM(is_learned), 0),
    COALESCE(SUM(CASE WHEN next_review_date <= ? THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(review_count), 0),
    COALESCE(SUM(total_correct), 0),
    COALESCE(SUM(total_wrong), 0),
    COALESCE(AVG(ease_factor), 0)
FROM review_progress
WHERE user_id = ?
`, now, userID).Scan(
		&stats.TotalItems, &stats.Started, &stats.Learned, &stats.DueToday,
		&stats.TotalReviews, &stats.TotalCorrect, &stats.TotalWrong, &stats.AvgEaseFactor,
	)
	if err != nil {
		log.Error("failed to load stats for user=%d: %v", userID, err)
		return models.ProgressStats{}, err
	}
	if total := stats.TotalCorrect + stats.TotalWrong; total > 0 {
		stats.AccuracyPct = 100 * stats.TotalCorrect / total
	}
	return stats, nil
}

func (r *progressRepository) UsersWithDueItems(ctx context.Context, now time.Time) ([]repository.DueReminder, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT u.id, u.email, COUNT(*)
FROM review_progress rp
JOIN users u ON u.id = rp.user_id
WHERE rp.next_review_date <= ?
GROUP BY u.id, u.email
ORDER BY u.id
`, now)
	if err != nil {
		log.Error("failed to list users with due items: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []repository.DueReminder
	for rows.Next() {
		var d repository.DueReminder
		if err := rows.Scan(&d.UserID, &d.Email, &d.DueCount); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
