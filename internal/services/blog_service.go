package services

import (
	"bytes"
	"context"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

// BlogService handles blog content rendering
type BlogService interface {
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*models.RenderedPost, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
	markdown goldmark.Markdown
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
		),
	}
}

func (s *blogService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.blogRepo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list posts: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return posts, nil
}

func (s *blogService) GetPost(ctx context.Context, slug string) (*models.RenderedPost, error) {
	log := logger.FromContext(ctx)

	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		log.Error("failed to load post %s: %v", slug, err)
		return nil, errors.NewInternalError(err)
	}
	if post == nil {
		return nil, errors.NewNotFoundError("post", slug)
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(post.BodyMarkdown), &buf); err != nil {
		log.Error("failed to render post %s: %v", slug, err)
		return nil, errors.NewInternalError(err)
	}

	return &models.RenderedPost{
		BlogPost: *post,
		BodyHTML: template.HTML(buf.String()),
	}, nil
}
