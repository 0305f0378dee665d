package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nima/farsiflash/internal/errors"
)

func (s *Server) handleLessons(w http.ResponseWriter, r *http.Request) {
	categories, err := s.VocabularyService.Categories(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/lessons.html", pageData{
		"categories": categories,
	})
}

func (s *Server) handleLesson(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		handleError(w, r, errors.NewBadRequestError("missing lesson category"))
		return
	}

	items, err := s.VocabularyService.Lesson(r.Context(), category)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if len(items) == 0 {
		handleError(w, r, errors.NewNotFoundError("lesson", category))
		return
	}

	s.render(w, r, "pages/lesson.html", pageData{
		"category": category,
		"items":    items,
	})
}
