package learning

import (
	"math"
	"time"

	"github.com/nima/farsiflash/internal/models"
)

// Assessment is the learner's self-reported recall difficulty.
type Assessment string

const (
	AssessmentAgain Assessment = "again"
	AssessmentHard  Assessment = "hard"
	AssessmentGood  Assessment = "good"
	AssessmentEasy  Assessment = "easy"
)

// ParseAssessment maps a form value to an Assessment, defaulting to
// "good" for anything unrecognized so a bad client can never fail a review.
func ParseAssessment(s string) Assessment {
	switch Assessment(s) {
	case AssessmentAgain, AssessmentHard, AssessmentGood, AssessmentEasy:
		return Assessment(s)
	default:
		return AssessmentGood
	}
}

const (
	minEaseFactor     = 1.3
	maxEaseFactor     = 2.5
	defaultEaseFactor = 2.5
)

// defaultProgress is the state of an item that has never been reviewed.
func defaultProgress() models.ReviewProgress {
	return models.ReviewProgress{EaseFactor: defaultEaseFactor}
}

// ScheduleNext computes the next scheduling state for one vocabulary item.
// It is a pure function: prior is read-only (nil means never reviewed) and
// now is passed in explicitly. The caller persists the result.
//
// An incorrect answer forces the effective assessment to "again" no matter
// what the learner self-reported; correctness is ground truth, the
// self-assessment only modulates interval growth on correct answers.
func ScheduleNext(assessment Assessment, isCorrect bool, prior *models.ReviewProgress, now time.Time) models.ReviewProgress {
	p := defaultProgress()
	if prior != nil {
		p = *prior
	}
	p.EaseFactor = clampEase(p.EaseFactor)

	effective := assessment
	if !isCorrect {
		effective = AssessmentAgain
	}

	p.ReviewCount++
	if isCorrect {
		p.TotalCorrect++
		p.ConsecutiveCorrect++
		p.ConsecutiveWrong = 0
	} else {
		p.TotalWrong++
		p.ConsecutiveWrong++
		p.ConsecutiveCorrect = 0
	}
	p.Accuracy = accuracyPct(p.TotalCorrect, p.TotalWrong)

	// The base interval resets to 1 on every call. For repetitions > 2 the
	// "good" interval is round(easeFactor); intervals never compound the
	// way classic SM-2 intervals do.
	const base = 1.0
	interval := 1

	switch effective {
	case AssessmentAgain:
		p.Repetitions = 0
		interval = 1
		p.EaseFactor = clampEase(p.EaseFactor - 0.2)
	case AssessmentHard:
		interval = int(math.Max(1, math.Round(base*1.2)))
		p.EaseFactor = clampEase(p.EaseFactor - 0.15)
	case AssessmentGood:
		p.Repetitions++
		switch p.Repetitions {
		case 1:
			interval = 1
		case 2:
			interval = 6
		default:
			interval = int(math.Round(base * p.EaseFactor))
		}
	case AssessmentEasy:
		p.Repetitions++
		if p.Repetitions == 1 {
			interval = 4
		} else {
			interval = int(math.Round(base * p.EaseFactor * 1.3))
		}
		p.EaseFactor = clampEase(p.EaseFactor + 0.15)
	}

	switch effective {
	case AssessmentAgain:
		p.ConfidenceLevel = 1
	case AssessmentHard:
		p.ConfidenceLevel = minInt(2, p.Repetitions)
	case AssessmentGood:
		p.ConfidenceLevel = minInt(3, p.Repetitions+1)
	case AssessmentEasy:
		p.ConfidenceLevel = minInt(5, p.Repetitions+2)
	}

	// Recomputed on every call: a later non-easy review can flip this back
	// to false. Review never terminates, even for learned items.
	p.IsLearned = p.Repetitions >= 5 && effective == AssessmentEasy && p.ConfidenceLevel == 5

	p.LastAssessment = string(effective)
	p.NextReviewDate = now.AddDate(0, 0, interval)
	p.LastReviewedAt = now
	p.UpdatedAt = now
	return p
}

func accuracyPct(correct, wrong int) int {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

func clampEase(ef float64) float64 {
	if ef < minEaseFactor {
		return minEaseFactor
	}
	if ef > maxEaseFactor {
		return maxEaseFactor
	}
	return ef
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
