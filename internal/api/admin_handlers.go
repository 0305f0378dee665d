package api

import (
	"net/http"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/logger"
)

// maxImportSize caps uploaded spreadsheets at 10 MiB.
const maxImportSize = 10 << 20

func (s *Server) handleImportVocabulary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		handleError(w, r, errors.NewBadRequestError("expected multipart form with a file field"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("missing file field"))
		return
	}
	defer file.Close()

	log.Info("importing vocabulary from %s (%d bytes)", header.Filename, header.Size)

	result, err := s.ImportService.ImportXLSX(r.Context(), file)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("import finished: %d created, %d updated, %d skipped", result.Created, result.Updated, result.Skipped)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	result, err := s.ImportService.Seed(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
