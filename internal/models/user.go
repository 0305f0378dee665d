package models

import "time"

type User struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	DisplayName      string     `json:"display_name"`
	TotalXP          int        `json:"total_xp"`
	CurrentLevel     int        `json:"current_level"`
	StreakDays       int        `json:"streak_days"`
	LongestStreak    int        `json:"longest_streak"`
	LastPracticeDate *time.Time `json:"last_practice_date"`
	CreatedAt        time.Time  `json:"created_at"`
}

// AuthToken is a single-use magic-link token mailed to a learner.
type AuthToken struct {
	Token      string     `json:"token"`
	Email      string     `json:"email"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Session is a logged-in browser session backing the auth cookie.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
