package api

import (
	"encoding/json"
	"net/http"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/logger"
)

func (s *Server) handlePracticePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering practice page")

	user := userFromContext(r.Context())
	session, err := s.PracticeService.StartSession(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/practice.html", pageData{
		"session": session,
	})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	session, err := s.PracticeService.StartSession(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": session,
	})
}

type answerRequest struct {
	VocabularyID int64  `json:"vocabulary_id"`
	Answer       string `json:"answer"`
	Assessment   string `json:"assessment"`
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	user := userFromContext(r.Context())

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("malformed answer payload: %v", err)
		handleError(w, r, errors.NewBadRequestError("malformed JSON body"))
		return
	}
	if req.VocabularyID <= 0 {
		handleError(w, r, errors.NewValidationError("vocabulary_id", "must be a positive id"))
		return
	}

	result, err := s.PracticeService.SubmitAnswer(r.Context(), user.ID, req.VocabularyID, req.Answer, req.Assessment)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
