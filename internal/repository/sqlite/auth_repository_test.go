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

type AuthRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.AuthRepository
}

func (s *AuthRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewAuthRepository(s.db)
}

func (s *AuthRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *AuthRepositorySuite) TestConsumeToken() {
	ctx := context.Background()
	now := time.Now().UTC()

	token := models.AuthToken{
		Token:     "tok-1",
		Email:     "learner@example.com",
		ExpiresAt: now.Add(15 * time.Minute),
	}
	s.Require().NoError(s.repo.InsertToken(ctx, token))

	got, err := s.repo.ConsumeToken(ctx, "tok-1", now)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("learner@example.com", got.Email)

	// Single use: a second consumption fails quietly.
	got, err = s.repo.ConsumeToken(ctx, "tok-1", now)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *AuthRepositorySuite) TestConsumeExpiredToken() {
	ctx := context.Background()
	now := time.Now().UTC()

	token := models.AuthToken{
		Token:     "tok-old",
		Email:     "learner@example.com",
		ExpiresAt: now.Add(-time.Minute),
	}
	s.Require().NoError(s.repo.InsertToken(ctx, token))

	got, err := s.repo.ConsumeToken(ctx, "tok-old", now)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *AuthRepositorySuite) TestConsumeUnknownToken() {
	got, err := s.repo.ConsumeToken(context.Background(), "no-such-token", time.Now().UTC())
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *AuthRepositorySuite) TestSessionLifecycle() {
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `INSERT INTO users (email) VALUES (?)`, "learner@example.com")
	s.Require().NoError(err)
	var userID int64
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, "learner@example.com").Scan(&userID))

	session := models.Session{
		Token:     "sess-1",
		UserID:    userID,
		ExpiresAt: now.Add(24 * time.Hour),
	}
	s.Require().NoError(s.repo.InsertSession(ctx, session))

	got, err := s.repo.GetSession(ctx, "sess-1", now)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(userID, got.UserID)

	// Expired lookups miss.
	got, err = s.repo.GetSession(ctx, "sess-1", now.Add(48*time.Hour))
	s.Require().NoError(err)
	s.Assert().Nil(got)

	s.Require().NoError(s.repo.DeleteSession(ctx, "sess-1"))
	got, err = s.repo.GetSession(ctx, "sess-1", now)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *AuthRepositorySuite) TestDeleteExpired() {
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `INSERT INTO users (email) VALUES (?)`, "learner@example.com")
	s.Require().NoError(err)
	var userID int64
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, "learner@example.com").Scan(&userID))

	s.Require().NoError(s.repo.InsertToken(ctx, models.AuthToken{Token: "tok-live", Email: "a@b.c", ExpiresAt: now.Add(time.Hour)}))
	s.Require().NoError(s.repo.InsertToken(ctx, models.AuthToken{Token: "tok-dead", Email: "a@b.c", ExpiresAt: now.Add(-time.Hour)}))
	s.Require().NoError(s.repo.InsertSession(ctx, models.Session{Token: "sess-dead", UserID: userID, ExpiresAt: now.Add(-time.Hour)}))

	s.Require().NoError(s.repo.DeleteExpired(ctx, now))

	var tokens, sessions int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM auth_tokens`).Scan(&tokens))
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&sessions))
	s.Assert().Equal(1, tokens)
	s.Assert().Equal(0, sessions)
}

func TestAuthRepositorySuite(t *testing.T) {
	suite.Run(t, new(AuthRepositorySuite))
}
