package services

import (
	"context"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

// VocabularyService handles lesson content browsing
type VocabularyService interface {
	Categories(ctx context.Context) ([]models.CategorySummary, error)
	Lesson(ctx context.Context, category string) ([]models.VocabularyItem, error)
	Get(ctx context.Context, id int64) (*models.VocabularyItem, error)
}

type vocabularyService struct {
	vocabRepo repository.VocabularyRepository
}

// NewVocabularyService creates a new VocabularyService
func NewVocabularyService(vocabRepo repository.VocabularyRepository) VocabularyService {
	return &vocabularyService{vocabRepo: vocabRepo}
}

func (s *vocabularyService) Categories(ctx context.Context) ([]models.CategorySummary, error) {
	categories, err := s.vocabRepo.Categories(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list categories: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return categories, nil
}

func (s *vocabularyService) Lesson(ctx context.Context, category string) ([]models.VocabularyItem, error) {
	log := logger.FromContext(ctx)

	if category == "" {
		return nil, errors.NewBadRequestError("category required")
	}
	items, err := s.vocabRepo.List(ctx, models.VocabularyFilter{Category: category})
	if err != nil {
		log.Error("failed to load lesson %s: %v", category, err)
		return nil, errors.NewInternalError(err)
	}
	if len(items) == 0 {
		return nil, errors.NewNotFoundError("lesson", category)
	}
	return items, nil
}

func (s *vocabularyService) Get(ctx context.Context, id int64) (*models.VocabularyItem, error) {
	item, err := s.vocabRepo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get vocabulary %d: %v", id, err)
		return nil, errors.NewInternalError(err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("vocabulary", id)
	}
	return item, nil
}
