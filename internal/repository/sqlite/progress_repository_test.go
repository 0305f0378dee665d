package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
	"github.com/nima/farsiflash/internal/repository/sqlite"
	"github.com/nima/farsiflash/internal/testutil"
)

type ProgressRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProgressRepository
}

func (s *ProgressRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProgressRepository(s.db)
}

func (s *ProgressRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProgressRepositorySuite) setupUserAndWord() (int64, int64) {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO users (email) VALUES (?)`, "learner@example.com")
	s.Require().NoError(err)
	var userID int64
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, "learner@example.com").Scan(&userID))

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vocabulary (word, phonetic, translation, category, level) VALUES (?, ?, ?, ?, ?)
	`, "آب", "āb", "water", "basics", 1)
	s.Require().NoError(err)
	var vocabID int64
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT id FROM vocabulary WHERE word = ?`, "آب").Scan(&vocabID))

	return userID, vocabID
}

func progressFixture(userID, vocabID int64, due time.Time) models.ReviewProgress {
	return models.ReviewProgress{
		UserID:             userID,
		VocabularyID:       vocabID,
		Repetitions:        1,
		EaseFactor:         2.5,
		NextReviewDate:     due,
		ConfidenceLevel:    2,
		LastAssessment:     "good",
		ReviewCount:        1,
		TotalCorrect:       1,
		ConsecutiveCorrect: 1,
		Accuracy:           100,
		LastReviewedAt:     due.AddDate(0, 0, -1),
		UpdatedAt:          due.AddDate(0, 0, -1),
	}
}

func (s *ProgressRepositorySuite) TestGetMissingReturnsNil() {
	userID, vocabID := s.setupUserAndWord()

	p, err := s.repo.Get(context.Background(), userID, vocabID)
	s.Require().NoError(err)
	s.Assert().Nil(p, "never-reviewed items have no row and no error")
}

func (s *ProgressRepositorySuite) TestUpsertRoundTrip() {
	ctx := context.Background()
	userID, vocabID := s.setupUserAndWord()
	now := time.Now().UTC().Truncate(time.Second)

	p := progressFixture(userID, vocabID, now.AddDate(0, 0, 1))
	s.Require().NoError(s.repo.Upsert(ctx, p))

	got, err := s.repo.Get(ctx, userID, vocabID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(1, got.Repetitions)
	s.Assert().Equal(2.5, got.EaseFactor)
	s.Assert().Equal("good", got.LastAssessment)
	s.Assert().Equal(100, got.Accuracy)

	// Second upsert replaces the row in place.
	p.Repetitions = 2
	p.EaseFactor = 2.35
	p.ReviewCount = 2
	s.Require().NoError(s.repo.Upsert(ctx, p))

	got, err = s.repo.Get(ctx, userID, vocabID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(2, got.Repetitions)
	s.Assert().InDelta(2.35, got.EaseFactor, 1e-9)

	var count int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_progress`).Scan(&count))
	s.Assert().Equal(1, count, "upsert must not create a second row for the same key")
}

func (s *ProgressRepositorySuite) TestForUser() {
	ctx := context.Background()
	userID, vocabID := s.setupUserAndWord()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vocabulary (word, phonetic, translation, category, level) VALUES (?, ?, ?, ?, ?)
	`, "نان", "nān", "bread", "basics", 1)
	s.Require().NoError(err)
	var secondID int64
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT id FROM vocabulary WHERE word = ?`, "نان").Scan(&secondID))

	now := time.Now().UTC()
	s.Require().NoError(s.repo.Upsert(ctx, progressFixture(userID, vocabID, now)))
	s.Require().NoError(s.repo.Upsert(ctx, progressFixture(userID, secondID, now.AddDate(0, 0, 3))))

	byVocab, err := s.repo.ForUser(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(byVocab, 2)
	s.Assert().Contains(byVocab, vocabID)
	s.Assert().Contains(byVocab, secondID)
}

func (s *ProgressRepositorySuite) TestStats() {
	ctx := context.Background()
	userID, vocabID := s.setupUserAndWord()
	now := time.Now().UTC()

	p := progressFixture(userID, vocabID, now.AddDate(0, 0, -1))
	p.IsLearned = true
	p.TotalCorrect = 8
	p.TotalWrong = 2
	p.ReviewCount = 10
	s.Require().NoError(s.repo.Upsert(ctx, p))

	stats, err := s.repo.Stats(ctx, userID, now)
	s.Require().NoError(err)
	s.Assert().Equal(1, stats.TotalItems)
	s.Assert().Equal(1, stats.Started)
	s.Assert().Equal(1, stats.Learned)
	s.Assert().Equal(1, stats.DueToday)
	s.Assert().Equal(10, stats.TotalReviews)
	s.Assert().Equal(80, stats.AccuracyPct)
}

func (s *ProgressRepositorySuite) TestUsersWithDueItems() {
	ctx := context.Background()
	userID, vocabID := s.setupUserAndWord()
	now := time.Now().UTC()

	s.Require().NoError(s.repo.Upsert(ctx, progressFixture(userID, vocabID, now.AddDate(0, 0, -2))))

	reminders, err := s.repo.UsersWithDueItems(ctx, now)
	s.Require().NoError(err)
	s.Require().Len(reminders, 1)
	s.Assert().Equal(userID, reminders[0].UserID)
	s.Assert().Equal("learner@example.com", reminders[0].Email)
	s.Assert().Equal(1, reminders[0].DueCount)

	// Nothing due in the future.
	reminders, err = s.repo.UsersWithDueItems(ctx, now.AddDate(0, 0, -5))
	s.Require().NoError(err)
	s.Assert().Empty(reminders)
}

func TestProgressRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProgressRepositorySuite))
}
