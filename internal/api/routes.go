package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(s.userMiddleware)

	// Public pages
	r.Get("/", s.handleHome)
	r.Get("/alphabet", s.handleAlphabet)
	r.Get("/lessons", s.handleLessons)
	r.Get("/lessons/{category}", s.handleLesson)
	r.Get("/blog", s.handleBlogIndex)
	r.Get("/blog/{slug}", s.handleBlogPost)

	// Auth flow
	r.Get("/login", s.handleLoginPage)
	r.Post("/auth/login", s.handleRequestMagicLink)
	r.Get("/auth/verify", s.handleVerifyMagicLink)
	r.Post("/auth/logout", s.handleLogout)

	// Learner-only pages and API
	r.Group(func(r chi.Router) {
		r.Use(s.requireUser)
		r.Get("/practice", s.handlePracticePage)
		r.Get("/progress", s.handleProgressPage)
		r.Post("/profile/display-name", s.handleUpdateDisplayName)
		r.Get("/api/practice/session", s.handleStartSession)
		r.Post("/api/practice/answer", s.handleSubmitAnswer)
	})

	// Admin content management
	r.Group(func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Post("/admin/vocabulary/import", s.handleImportVocabulary)
		r.Post("/admin/seed", s.handleSeed)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	return r
}
