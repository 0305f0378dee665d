package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
	"github.com/nima/farsiflash/internal/repository/sqlite"
	"github.com/nima/farsiflash/internal/testutil"
)

type VocabularyRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.VocabularyRepository
}

func (s *VocabularyRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewVocabularyRepository(s.db)
}

func (s *VocabularyRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func wordFixture(word, phonetic, translation, category string, level int) models.VocabularyItem {
	return models.VocabularyItem{
		Word:        word,
		Phonetic:    phonetic,
		Translation: translation,
		Category:    category,
		Level:       level,
	}
}

func (s *VocabularyRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	item := wordFixture("سلام", "salām", "hello", "greetings", 1)
	item.ExampleFarsi = "سلام، حال شما چطور است؟"
	item.ExamplePhonetic = "salām, hāl-e shomā chetor ast?"
	item.ExampleEnglish = "Hello, how are you?"

	id, err := s.repo.Insert(ctx, item)
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	got, err := s.repo.GetByID(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("سلام", got.Word)
	s.Assert().Equal("salām", got.Phonetic)
	s.Assert().Equal("hello", got.Translation)
	s.Assert().Equal("Hello, how are you?", got.ExampleEnglish)
	s.Assert().Equal(1, got.Level)
}

func (s *VocabularyRepositorySuite) TestGetMissing() {
	got, err := s.repo.GetByID(context.Background(), 999)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *VocabularyRepositorySuite) TestUpsert() {
	ctx := context.Background()

	created, err := s.repo.Upsert(ctx, wordFixture("کتاب", "ketāb", "book", "objects", 1))
	s.Require().NoError(err)
	s.Assert().True(created)

	// Same (word, translation) updates in place.
	updated := wordFixture("کتاب", "ketâb", "book", "school", 2)
	created, err = s.repo.Upsert(ctx, updated)
	s.Require().NoError(err)
	s.Assert().False(created)

	count, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)

	items, err := s.repo.List(ctx, models.VocabularyFilter{})
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Assert().Equal("school", items[0].Category)
	s.Assert().Equal(2, items[0].Level)
}

func (s *VocabularyRepositorySuite) TestListFilters() {
	ctx := context.Background()

	fixtures := []models.VocabularyItem{
		wordFixture("آب", "āb", "water", "basics", 1),
		wordFixture("نان", "nān", "bread", "food", 1),
		wordFixture("دریا", "daryā", "sea", "nature", 3),
		wordFixture("کوه", "kuh", "mountain", "nature", 4),
	}
	for _, f := range fixtures {
		_, err := s.repo.Insert(ctx, f)
		s.Require().NoError(err)
	}

	nature, err := s.repo.List(ctx, models.VocabularyFilter{Category: "nature"})
	s.Require().NoError(err)
	s.Assert().Len(nature, 2)

	easy, err := s.repo.List(ctx, models.VocabularyFilter{MaxLevel: 2})
	s.Require().NoError(err)
	s.Assert().Len(easy, 2)

	levelThreeNature, err := s.repo.List(ctx, models.VocabularyFilter{Category: "nature", Level: 3})
	s.Require().NoError(err)
	s.Require().Len(levelThreeNature, 1)
	s.Assert().Equal("sea", levelThreeNature[0].Translation)
}

func (s *VocabularyRepositorySuite) TestCategories() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, wordFixture("آب", "āb", "water", "basics", 1))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, wordFixture("نان", "nān", "bread", "basics", 2))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, wordFixture("دریا", "daryā", "sea", "nature", 3))
	s.Require().NoError(err)

	categories, err := s.repo.Categories(ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, 2)
	s.Assert().Equal("basics", categories[0].Category)
	s.Assert().Equal(2, categories[0].Count)
	s.Assert().Equal(1, categories[0].MinLevel)
	s.Assert().Equal(2, categories[0].MaxLevel)
	s.Assert().Equal("nature", categories[1].Category)
}

func TestVocabularyRepositorySuite(t *testing.T) {
	suite.Run(t, new(VocabularyRepositorySuite))
}
