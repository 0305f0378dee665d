package models

import "time"

// ReviewProgress is one learner's scheduling state for one vocabulary
// item. A missing row means the item has never been reviewed; the
// learning package treats a nil *ReviewProgress as that default state.
type ReviewProgress struct {
	UserID             int64     `json:"user_id"`
	VocabularyID       int64     `json:"vocabulary_id"`
	Repetitions        int       `json:"repetitions"`
	EaseFactor         float64   `json:"ease_factor"`
	NextReviewDate     time.Time `json:"next_review_date"`
	ConfidenceLevel    int       `json:"confidence_level"`
	LastAssessment     string    `json:"last_assessment"`
	IsLearned          bool      `json:"is_learned"`
	ReviewCount        int       `json:"review_count"`
	TotalCorrect       int       `json:"total_correct"`
	TotalWrong         int       `json:"total_wrong"`
	ConsecutiveCorrect int       `json:"consecutive_correct"`
	ConsecutiveWrong   int       `json:"consecutive_wrong"`
	Accuracy           int       `json:"accuracy"`
	LastReviewedAt     time.Time `json:"last_reviewed_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProgressStats summarizes a learner's review history for the progress page.
type ProgressStats struct {
	TotalItems    int `json:"total_items"`
	Started       int `json:"started"`
	Learned       int `json:"learned"`
	DueToday      int `json:"due_today"`
	TotalReviews  int `json:"total_reviews"`
	TotalCorrect  int `json:"total_correct"`
	TotalWrong    int `json:"total_wrong"`
	AccuracyPct   int `json:"accuracy_pct"`
	AvgEaseFactor float64 `json:"avg_ease_factor"`
}
