package repository

import (
	"context"

	"github.com/nima/farsiflash/internal/models"
)

// BlogRepository handles blog content access
type BlogRepository interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Upsert(ctx context.Context, post models.BlogPost) error
}
