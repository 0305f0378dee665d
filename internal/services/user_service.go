package services

import (
	"context"
	"time"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/learning"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

// Profile is the progress page view: account, stats, and level standing.
type Profile struct {
	User           models.User          `json:"user"`
	Stats          models.ProgressStats `json:"stats"`
	Level          learning.Level       `json:"level"`
	ProgressToNext int                  `json:"progress_to_next"`
}

// UserService handles learner accounts and the progress page
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateDisplayName(ctx context.Context, userID int64, name string) error
}

type userService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository) UserService {
	return &userService{userRepo: userRepo, progressRepo: progressRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading profile: user_id=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", userID)
	}

	stats, err := s.progressRepo.Stats(ctx, userID, time.Now().UTC())
	if err != nil {
		log.Error("failed to load stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &Profile{
		User:           *user,
		Stats:          stats,
		Level:          learning.LevelFor(user.TotalXP),
		ProgressToNext: learning.ProgressToNext(user.TotalXP),
	}, nil
}

func (s *userService) UpdateDisplayName(ctx context.Context, userID int64, name string) error {
	log := logger.FromContext(ctx)

	if len(name) > 60 {
		return errors.NewValidationError("display_name", "must be at most 60 characters")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return errors.NewInternalError(err)
	}
	if user == nil {
		return errors.NewNotFoundError("user", userID)
	}

	user.DisplayName = name
	if err := s.userRepo.Update(ctx, *user); err != nil {
		log.Error("failed to update user: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
