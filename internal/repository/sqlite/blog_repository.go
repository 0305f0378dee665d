package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new BlogRepository implementation
func NewBlogRepository(db *sql.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx).WithPrefix("blog_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, slug, title, summary, body_markdown, published_at
FROM blog_posts
ORDER BY published_at DESC
`)
	if err != nil {
		log.Error("failed to list blog posts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Summary, &p.BodyMarkdown, &p.PublishedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	log := logger.FromContext(ctx).WithPrefix("blog_repo")

	var p models.BlogPost
	err := r.db.QueryRowContext(ctx, `
SELECT id, slug, title, summary, body_markdown, published_at FROM blog_posts WHERE slug = ?
`, slug).Scan(&p.ID, &p.Slug, &p.Title, &p.Summary, &p.BodyMarkdown, &p.PublishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get blog post slug=%s: %v", slug, err)
		return nil, err
	}
	return &p, nil
}

func (r *blogRepository) Upsert(ctx context.Context, post models.BlogPost) error {
	log := logger.FromContext(ctx).WithPrefix("blog_repo")
	log.Debug("upserting blog post slug=%s", post.Slug)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO blog_posts (slug, title, summary, body_markdown, published_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (slug) DO UPDATE SET
    title = excluded.title,
    summary = excluded.summary,
    body_markdown = excluded.body_markdown,
    published_at = excluded.published_at
`, post.Slug, post.Title, post.Summary, post.BodyMarkdown, post.PublishedAt)
	if err != nil {
		log.Error("failed to upsert blog post: %v", err)
	}
	return err
}
