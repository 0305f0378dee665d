package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nima/farsiflash/internal/errors"
)

func (s *Server) handleBlogIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := s.BlogService.ListPosts(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/blog.html", pageData{
		"posts": posts,
	})
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		handleError(w, r, errors.NewBadRequestError("missing post slug"))
		return
	}

	post, err := s.BlogService.GetPost(r.Context(), slug)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/blog_post.html", pageData{
		"post": post,
	})
}
