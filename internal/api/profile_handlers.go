package api

import (
	"net/http"
	"strings"

	"github.com/nima/farsiflash/internal/errors"
)

func (s *Server) handleProgressPage(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	profile, err := s.UserService.GetProfile(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/progress.html", pageData{
		"profile": profile,
	})
}

func (s *Server) handleUpdateDisplayName(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		handleError(w, r, errors.NewBadRequestError("malformed form body"))
		return
	}

	name := strings.TrimSpace(r.FormValue("display_name"))
	if err := s.UserService.UpdateDisplayName(r.Context(), user.ID, name); err != nil {
		handleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/progress", http.StatusSeeOther)
}
