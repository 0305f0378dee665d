package api

import (
	"net/http"
	"strings"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/logger"
)

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if userFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/practice", http.StatusSeeOther)
		return
	}

	s.render(w, r, "pages/login.html", pageData{
		"sent": r.URL.Query().Get("sent") == "1",
	})
}

func (s *Server) handleRequestMagicLink(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handleError(w, r, errors.NewBadRequestError("malformed form body"))
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	if email == "" || !strings.Contains(email, "@") {
		handleError(w, r, errors.NewValidationError("email", "must be a valid email address"))
		return
	}

	if err := s.AuthService.RequestMagicLink(r.Context(), email); err != nil {
		handleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/login?sent=1", http.StatusSeeOther)
}

func (s *Server) handleVerifyMagicLink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	token := r.URL.Query().Get("token")
	if token == "" {
		handleError(w, r, errors.NewBadRequestError("missing token"))
		return
	}

	session, err := s.AuthService.VerifyToken(r.Context(), token)
	if err != nil {
		log.Warn("magic link verification failed: %v", err)
		handleError(w, r, err)
		return
	}

	setSessionCookie(w, session)
	http.Redirect(w, r, "/practice", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := s.AuthService.Logout(r.Context(), cookie.Value); err != nil {
			logger.FromContext(r.Context()).Error("failed to delete session: %v", err)
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
