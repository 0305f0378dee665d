package api

import (
	"html/template"
	"net/http"

	"github.com/nima/farsiflash/internal/content"
	"github.com/nima/farsiflash/internal/learning"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/services"
)

type Server struct {
	AuthService       services.AuthService
	UserService       services.UserService
	PracticeService   services.PracticeService
	VocabularyService services.VocabularyService
	BlogService       services.BlogService
	ImportService     services.ImportService
	Templates         *template.Template
	AdminToken        string
}

type pageData map[string]any

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering home page")

	categories, err := s.VocabularyService.Categories(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	posts, err := s.BlogService.ListPosts(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}

	s.render(w, r, "pages/home.html", pageData{
		"categories": categories,
		"posts":      posts,
	})
}

func (s *Server) handleAlphabet(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "pages/alphabet.html", pageData{
		"letters": content.Alphabet,
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["user"]; !ok {
		user := userFromContext(r.Context())
		data["user"] = user
		if user != nil {
			data["userLevel"] = learning.LevelFor(user.TotalXP)
		}
	}

	log := logger.FromContext(r.Context())
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
