package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/learning"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

// XP awarded per answered item. An incorrect attempt still earns a
// little so a hard session is never worth zero.
const (
	xpCorrectAnswer = 10
	xpWrongAnswer   = 2
)

// AnswerResult is everything the practice page needs after one answer.
type AnswerResult struct {
	Validation learning.ValidationResult `json:"validation"`
	Progress   models.ReviewProgress     `json:"progress"`
	XPAwarded  int                       `json:"xp_awarded"`
	TotalXP    int                       `json:"total_xp"`
	StreakDays int                       `json:"streak_days"`
}

// PracticeService runs the spaced-repetition practice flow
type PracticeService interface {
	StartSession(ctx context.Context, userID int64) ([]models.VocabularyItem, error)
	SubmitAnswer(ctx context.Context, userID, vocabularyID int64, answer, selfAssessment string) (*AnswerResult, error)
}

type practiceService struct {
	vocabRepo    repository.VocabularyRepository
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
	sessionSize  int
}

// NewPracticeService creates a new PracticeService
func NewPracticeService(vocabRepo repository.VocabularyRepository, progressRepo repository.ProgressRepository, userRepo repository.UserRepository, sessionSize int) PracticeService {
	if sessionSize <= 0 {
		sessionSize = 10
	}
	return &practiceService{
		vocabRepo:    vocabRepo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
		sessionSize:  sessionSize,
	}
}

func (s *practiceService) StartSession(ctx context.Context, userID int64) ([]models.VocabularyItem, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting practice session: user_id=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", userID)
	}

	items, err := s.vocabRepo.List(ctx, models.VocabularyFilter{})
	if err != nil {
		log.Error("failed to load vocabulary: %v", err)
		return nil, errors.NewInternalError(err)
	}

	progress, err := s.progressRepo.ForUser(ctx, userID)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := learning.BuildSession(learning.SessionRequest{
		SessionSize:  s.sessionSize,
		CurrentLevel: user.CurrentLevel,
	}, items, progress, time.Now().UTC(), rng)

	log.Debug("built session of %d items for user_id=%d level=%d", len(session), userID, user.CurrentLevel)
	return session, nil
}

func (s *practiceService) SubmitAnswer(ctx context.Context, userID, vocabularyID int64, answer, selfAssessment string) (*AnswerResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: user_id=%d vocabulary_id=%d", userID, vocabularyID)

	item, err := s.vocabRepo.GetByID(ctx, vocabularyID)
	if err != nil {
		log.Error("failed to load vocabulary item: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("vocabulary", vocabularyID)
	}

	now := time.Now().UTC()
	validation := learning.ValidateAnswer(answer, item.Translation)
	assessment := learning.ParseAssessment(selfAssessment)

	prior, err := s.progressRepo.Get(ctx, userID, vocabularyID)
	if err != nil {
		log.Error("failed to load prior progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	updated := learning.ScheduleNext(assessment, validation.IsCorrect, prior, now)
	updated.UserID = userID
	updated.VocabularyID = vocabularyID

	if err := s.progressRepo.Upsert(ctx, updated); err != nil {
		log.Error("failed to persist progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// XP and streak updates are best effort: a failure here must not take
	// down an otherwise completed review.
	xp := xpWrongAnswer
	if validation.IsCorrect {
		xp = xpCorrectAnswer
	}
	user, err := s.awardPractice(ctx, userID, xp, now)
	if err != nil {
		log.Warn("failed to update xp/streak for user_id=%d: %v", userID, err)
	}

	result := &AnswerResult{
		Validation: validation,
		Progress:   updated,
		XPAwarded:  xp,
	}
	if user != nil {
		result.TotalXP = user.TotalXP
		result.StreakDays = user.StreakDays
	}
	return result, nil
}

// awardPractice adds XP, recomputes the display level, and advances the
// daily streak: same day keeps it, a consecutive day extends it, and any
// gap restarts at one.
func (s *practiceService) awardPractice(ctx context.Context, userID int64, xp int, now time.Time) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	user.TotalXP += xp
	user.CurrentLevel = learning.LevelFor(user.TotalXP).Level

	today := now.Truncate(24 * time.Hour)
	switch {
	case user.LastPracticeDate == nil:
		user.StreakDays = 1
	case user.LastPracticeDate.Truncate(24 * time.Hour).Equal(today):
		// Already practiced today.
	case user.LastPracticeDate.Truncate(24 * time.Hour).Equal(today.AddDate(0, 0, -1)):
		user.StreakDays++
	default:
		user.StreakDays = 1
	}
	if user.StreakDays > user.LongestStreak {
		user.LongestStreak = user.StreakDays
	}
	user.LastPracticeDate = &now

	if err := s.userRepo.Update(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}
