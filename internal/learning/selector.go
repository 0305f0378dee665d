package learning

import (
	"math/rand"
	"sort"
	"time"

	"github.com/nima/farsiflash/internal/models"
)

// SessionRequest is the ephemeral input to session building.
type SessionRequest struct {
	SessionSize  int
	CurrentLevel int
}

// levelAllowance lets a session introduce vocabulary one level above the
// learner's current level so new content keeps arriving. Policy knob,
// not a hard law.
const levelAllowance = 1

// BuildSession picks the vocabulary items for one practice session.
//
// Priority, filling up to SessionSize with no duplicates:
//  1. items whose review is due, most overdue first
//  2. items never reviewed at level <= CurrentLevel+levelAllowance,
//     shuffled with rng (stable within this session only)
//  3. not-yet-due items, soonest due first, so a session is only ever
//     short when the eligible pool itself is smaller than requested
//
// progress is keyed by vocabulary ID; items without an entry are treated
// as never reviewed. All state is explicit, so the function is pure up to
// the supplied rng.
func BuildSession(req SessionRequest, items []models.VocabularyItem, progress map[int64]models.ReviewProgress, now time.Time, rng *rand.Rand) []models.VocabularyItem {
	size := req.SessionSize
	if size <= 0 {
		return nil
	}
	level := req.CurrentLevel
	if level < 1 {
		level = 1
	}

	var overdue, fresh, upcoming []models.VocabularyItem
	for _, item := range items {
		p, reviewed := progress[item.ID]
		switch {
		case reviewed && !p.NextReviewDate.After(now):
			overdue = append(overdue, item)
		case reviewed:
			upcoming = append(upcoming, item)
		case item.Level <= level+levelAllowance:
			fresh = append(fresh, item)
		}
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return progress[overdue[i].ID].NextReviewDate.Before(progress[overdue[j].ID].NextReviewDate)
	})
	if rng != nil {
		rng.Shuffle(len(fresh), func(i, j int) {
			fresh[i], fresh[j] = fresh[j], fresh[i]
		})
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return progress[upcoming[i].ID].NextReviewDate.Before(progress[upcoming[j].ID].NextReviewDate)
	})

	session := make([]models.VocabularyItem, 0, size)
	seen := make(map[int64]bool, size)
	for _, group := range [][]models.VocabularyItem{overdue, fresh, upcoming} {
		for _, item := range group {
			if len(session) == size {
				return session
			}
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			session = append(session, item)
		}
	}
	return session
}
