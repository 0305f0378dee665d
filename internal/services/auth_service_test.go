package services_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nima/farsiflash/internal/repository"
	"github.com/nima/farsiflash/internal/repository/sqlite"
	"github.com/nima/farsiflash/internal/services"
	"github.com/nima/farsiflash/internal/testutil"
)

// capturingMailQueue records enqueued mail instead of sending it.
type capturingMailQueue struct {
	sent []capturedMail
}

type capturedMail struct {
	to      string
	subject string
	body    string
}

func (q *capturingMailQueue) EnqueueMail(to, subject, body string) error {
	q.sent = append(q.sent, capturedMail{to: to, subject: subject, body: body})
	return nil
}

type AuthServiceSuite struct {
	suite.Suite
	db       *sql.DB
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	mail     *capturingMailQueue
	svc      services.AuthService
}

func (s *AuthServiceSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.authRepo = sqlite.NewAuthRepository(s.db)
	s.userRepo = sqlite.NewUserRepository(s.db)
	s.mail = &capturingMailQueue{}
	s.svc = services.NewAuthService(
		s.authRepo, s.userRepo, s.mail,
		"http://localhost:8080",
		15*time.Minute,
		24*time.Hour,
	)
}

func (s *AuthServiceSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

// requestLink asks for a magic link and extracts the token from the mail.
func (s *AuthServiceSuite) requestLink(email string) string {
	s.Require().NoError(s.svc.RequestMagicLink(context.Background(), email))
	s.Require().NotEmpty(s.mail.sent)

	body := s.mail.sent[len(s.mail.sent)-1].body
	marker := "token="
	i := strings.Index(body, marker)
	s.Require().GreaterOrEqual(i, 0, "mail body should contain a verify link")
	token := body[i+len(marker):]
	if j := strings.IndexAny(token, " \n"); j >= 0 {
		token = token[:j]
	}
	return token
}

func (s *AuthServiceSuite) TestRequestMagicLinkSendsMail() {
	s.Require().NoError(s.svc.RequestMagicLink(context.Background(), "Learner@Example.com"))

	s.Require().Len(s.mail.sent, 1)
	s.Equal("learner@example.com", s.mail.sent[0].to)
	s.Contains(s.mail.sent[0].body, "http://localhost:8080/auth/verify?token=")
}

func (s *AuthServiceSuite) TestRequestMagicLinkRejectsBadEmail() {
	s.Error(s.svc.RequestMagicLink(context.Background(), "not-an-email"))
	s.Empty(s.mail.sent)
}

func (s *AuthServiceSuite) TestVerifyTokenCreatesUserAndSession() {
	ctx := context.Background()
	token := s.requestLink("learner@example.com")

	session, err := s.svc.VerifyToken(ctx, token)
	s.Require().NoError(err)
	s.Require().NotNil(session)
	s.NotEmpty(session.Token)

	user, err := s.svc.CurrentUser(ctx, session.Token)
	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal("learner@example.com", user.Email)
}

func (s *AuthServiceSuite) TestVerifyTokenIsSingleUse() {
	ctx := context.Background()
	token := s.requestLink("learner@example.com")

	_, err := s.svc.VerifyToken(ctx, token)
	s.Require().NoError(err)

	_, err = s.svc.VerifyToken(ctx, token)
	s.Error(err, "a consumed link must not work a second time")
}

func (s *AuthServiceSuite) TestVerifyTokenRejectsUnknownToken() {
	_, err := s.svc.VerifyToken(context.Background(), "nope")
	s.Error(err)
}

func (s *AuthServiceSuite) TestVerifyTokenReusesExistingAccount() {
	ctx := context.Background()

	first, err := s.svc.VerifyToken(ctx, s.requestLink("learner@example.com"))
	s.Require().NoError(err)
	second, err := s.svc.VerifyToken(ctx, s.requestLink("learner@example.com"))
	s.Require().NoError(err)

	s.Equal(first.UserID, second.UserID)
}

func (s *AuthServiceSuite) TestLogoutInvalidatesSession() {
	ctx := context.Background()
	session, err := s.svc.VerifyToken(ctx, s.requestLink("learner@example.com"))
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Logout(ctx, session.Token))

	user, err := s.svc.CurrentUser(ctx, session.Token)
	s.Require().NoError(err)
	s.Nil(user)
}

func (s *AuthServiceSuite) TestCurrentUserEmptyToken() {
	user, err := s.svc.CurrentUser(context.Background(), "")
	s.Require().NoError(err)
	s.Nil(user)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}
