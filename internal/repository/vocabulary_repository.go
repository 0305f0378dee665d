package repository

import (
	"context"

	"github.com/nima/farsiflash/internal/models"
)

// VocabularyRepository handles vocabulary content access
type VocabularyRepository interface {
	Insert(ctx context.Context, item models.VocabularyItem) (int64, error)
	// Upsert inserts the item or, when (word, translation) already exists,
	// updates the mutable content columns. Returns true when a new row was
	// created.
	Upsert(ctx context.Context, item models.VocabularyItem) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.VocabularyItem, error)
	List(ctx context.Context, filter models.VocabularyFilter) ([]models.VocabularyItem, error)
	Categories(ctx context.Context) ([]models.CategorySummary, error)
	Count(ctx context.Context) (int, error)
}
