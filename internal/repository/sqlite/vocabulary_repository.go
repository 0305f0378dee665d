package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type vocabularyRepository struct {
	db *sql.DB
}

// NewVocabularyRepository creates a new VocabularyRepository implementation
func NewVocabularyRepository(db *sql.DB) repository.VocabularyRepository {
	return &vocabularyRepository{db: db}
}

const vocabularyColumns = "id, word, phonetic, translation, example_farsi, example_phonetic, example_english, category, level, created_at"

func (r *vocabularyRepository) Insert(ctx context.Context, item models.VocabularyItem) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("vocabulary_repo")
	log.Debug("inserting vocabulary: word=%s", item.Word)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO vocabulary (word, phonetic, translation, example_farsi, example_phonetic, example_english, category, level)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, item.Word, item.Phonetic, item.Translation, item.ExampleFarsi, item.ExamplePhonetic, item.ExampleEnglish, item.Category, item.Level)
	if err != nil {
		log.Error("failed to insert vocabulary: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get vocabulary id: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *vocabularyRepository) Upsert(ctx context.Context, item models.VocabularyItem) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("vocabulary_repo")

	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM vocabulary WHERE word = ? AND translation = ?`, item.Word, item.Translation).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		_, err := r.Insert(ctx, item)
		return true, err
	}
	if err != nil {
		log.Error("failed to look up vocabulary word=%s: %v", item.Word, err)
		return false, err
	}

	_, err = r.db.ExecContext(ctx, `
UPDATE vocabulary
SET phonetic = ?, example_farsi = ?, example_phonetic = ?, example_english = ?, category = ?, level = ?
WHERE id = ?
`, item.Phonetic, item.ExampleFarsi, item.ExamplePhonetic, item.ExampleEnglish, item.Category, item.Level, id)
	if err != nil {
		log.Error("failed to update vocabulary id=%d: %v", id, err)
	}
	return false, err
}

func (r *vocabularyRepository) GetByID(ctx context.Context, id int64) (*models.VocabularyItem, error) {
	log := logger.FromContext(ctx).WithPrefix("vocabulary_repo")

	var item models.VocabularyItem
	err := r.db.QueryRowContext(ctx, `SELECT `+vocabularyColumns+` FROM vocabulary WHERE id = ?`, id).Scan(
		&item.ID, &item.Word, &item.Phonetic, &item.Translation,
		&item.ExampleFarsi, &item.ExamplePhonetic, &item.ExampleEnglish,
		&item.Category, &item.Level, &item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("vocabulary not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get vocabulary: %v", err)
		return nil, err
	}
	return &item, nil
}

func (r *vocabularyRepository) List(ctx context.Context, filter models.VocabularyFilter) ([]models.VocabularyItem, error) {
	log := logger.FromContext(ctx).WithPrefix("vocabulary_repo")

	query := sqlBuilder.Select(vocabularyColumns).From("vocabulary").OrderBy("level", "category", "id")
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Level > 0 {
		query = query.Where(squirrel.Eq{"level": filter.Level})
	}
	if filter.MaxLevel > 0 {
		query = query.Where(squirrel.LtOrEq{"level": filter.MaxLevel})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list vocabulary: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.VocabularyItem
	for rows.Next() {
		var item models.VocabularyItem
		if err := rows.Scan(
			&item.ID, &item.Word, &item.Phonetic, &item.Translation,
			&item.ExampleFarsi, &item.ExamplePhonetic, &item.ExampleEnglish,
			&item.Category, &item.Level, &item.CreatedAt,
		); err != nil {
			log.Error("failed to scan vocabulary row: %v", err)
			return nil, err
		}
		items = append(items, item)
	}
	log.Debug("listed %d vocabulary items", len(items))
	return items, rows.Err()
}

func (r *vocabularyRepository) Categories(ctx context.Context) ([]models.CategorySummary, error) {
	log := logger.FromContext(ctx).WithPrefix("vocabulary_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT category, COUNT(*), MIN(level), MAX(level)
FROM vocabulary
GROUP BY category
ORDER BY MIN(level), category
`)
	if err != nil {
		log.Error("failed to list categories: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.CategorySummary
	for rows.Next() {
		var c models.CategorySummary
		if err := rows.Scan(&c.Category, &c.Count, &c.MinLevel, &c.MaxLevel); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *vocabularyRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocabulary`).Scan(&n)
	return n, err
}
