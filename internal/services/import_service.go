package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

// ImportResult summarizes one vocabulary import run.
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Updated        int      `json:"updated"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors,omitempty"`
}

// ImportService loads vocabulary content from spreadsheets and the
// built-in seed set
type ImportService interface {
	// ImportXLSX reads rows of (word, phonetic, translation, example
	// farsi, example phonetic, example english, category, level) from the
	// first sheet, skipping the header row.
	ImportXLSX(ctx context.Context, r io.Reader) (*ImportResult, error)
	Seed(ctx context.Context) (*ImportResult, error)
}

type importService struct {
	vocabRepo repository.VocabularyRepository
	blogRepo  repository.BlogRepository
}

// NewImportService creates a new ImportService
func NewImportService(vocabRepo repository.VocabularyRepository, blogRepo repository.BlogRepository) ImportService {
	return &importService{vocabRepo: vocabRepo, blogRepo: blogRepo}
}

func (s *importService) ImportXLSX(ctx context.Context, r io.Reader) (*ImportResult, error) {
	log := logger.FromContext(ctx)

	f, err := excelize.OpenReader(r)
	if err != nil {
		log.Warn("failed to open spreadsheet: %v", err)
		return nil, errors.NewBadRequestError("file is not a readable .xlsx spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewBadRequestError("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		log.Error("failed to read sheet %s: %v", sheets[0], err)
		return nil, errors.NewInternalError(err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		item, err := rowToItem(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.TotalProcessed++

		created, err := s.vocabRepo.Upsert(ctx, item)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	log.Info("vocabulary import finished: processed=%d created=%d updated=%d skipped=%d",
		result.TotalProcessed, result.Created, result.Updated, result.Skipped)
	return result, nil
}

func rowToItem(row []string) (models.VocabularyItem, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	item := models.VocabularyItem{
		Word:            cell(0),
		Phonetic:        cell(1),
		Translation:     cell(2),
		ExampleFarsi:    cell(3),
		ExamplePhonetic: cell(4),
		ExampleEnglish:  cell(5),
		Category:        cell(6),
		Level:           1,
	}
	if item.Word == "" || item.Translation == "" {
		return item, fmt.Errorf("word and translation are required")
	}
	if item.Category == "" {
		item.Category = "general"
	}
	if lvl := cell(7); lvl != "" {
		n, err := strconv.Atoi(lvl)
		if err != nil || n < 1 || n > 5 {
			return item, fmt.Errorf("level must be 1-5, got %q", lvl)
		}
		item.Level = n
	}
	return item, nil
}

func (s *importService) Seed(ctx context.Context) (*ImportResult, error) {
	log := logger.FromContext(ctx)

	result := &ImportResult{}
	for _, item := range seedVocabulary {
		result.TotalProcessed++
		created, err := s.vocabRepo.Upsert(ctx, item)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.Word, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	for _, post := range seedPosts {
		if err := s.blogRepo.Upsert(ctx, post); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("post %s: %v", post.Slug, err))
		}
	}

	log.Info("seed finished: processed=%d created=%d updated=%d", result.TotalProcessed, result.Created, result.Updated)
	return result, nil
}
