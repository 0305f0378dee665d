package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nima/farsiflash/internal/errors"
	"github.com/nima/farsiflash/internal/jobs"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/models"
	"github.com/nima/farsiflash/internal/repository"
)

// AuthService implements passwordless magic-link login
type AuthService interface {
	// RequestMagicLink creates a one-time login token and mails it. It
	// reports success for any plausible email so the endpoint cannot be
	// used to probe which addresses have accounts.
	RequestMagicLink(ctx context.Context, email string) error
	// VerifyToken exchanges a valid magic-link token for a session.
	VerifyToken(ctx context.Context, token string) (*models.Session, error)
	CurrentUser(ctx context.Context, sessionToken string) (*models.User, error)
	Logout(ctx context.Context, sessionToken string) error
}

type authService struct {
	authRepo   repository.AuthRepository
	userRepo   repository.UserRepository
	mailQueue  jobs.MailQueue
	baseURL    string
	linkTTL    time.Duration
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(authRepo repository.AuthRepository, userRepo repository.UserRepository, mailQueue jobs.MailQueue, baseURL string, linkTTL, sessionTTL time.Duration) AuthService {
	return &authService{
		authRepo:   authRepo,
		userRepo:   userRepo,
		mailQueue:  mailQueue,
		baseURL:    strings.TrimRight(baseURL, "/"),
		linkTTL:    linkTTL,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) RequestMagicLink(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") || len(email) > 254 {
		return errors.NewValidationError("email", "must be a valid email address")
	}

	token := models.AuthToken{
		Token:     uuid.NewString(),
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(s.linkTTL),
	}
	if err := s.authRepo.InsertToken(ctx, token); err != nil {
		log.Error("failed to store magic-link token: %v", err)
		return errors.NewInternalError(err)
	}

	link := fmt.Sprintf("%s/auth/verify?token=%s", s.baseURL, token.Token)
	body := fmt.Sprintf(
		"Salâm!\n\nClick the link below to sign in to FarsiFlash:\n\n%s\n\nThe link is valid for %d minutes and can be used once.\nIf you did not request it, you can ignore this email.\n",
		link, int(s.linkTTL.Minutes()),
	)

	// Delivery happens on the worker pool; the login request never waits
	// on SMTP.
	if err := s.mailQueue.EnqueueMail(email, "Your FarsiFlash sign-in link", body); err != nil {
		log.Error("failed to enqueue magic-link mail: %v", err)
		return errors.NewInternalError(err)
	}

	log.Info("magic link requested for %s", email)
	return nil
}

func (s *authService) VerifyToken(ctx context.Context, token string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil, errors.NewBadRequestError("token required")
	}

	now := time.Now().UTC()
	consumed, err := s.authRepo.ConsumeToken(ctx, token, now)
	if err != nil {
		log.Error("failed to consume token: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if consumed == nil {
		log.Warn("invalid or expired magic-link token")
		return nil, errors.NewUnauthorizedError("this sign-in link is invalid or has expired")
	}

	user, err := s.userRepo.UpsertByEmail(ctx, consumed.Email)
	if err != nil {
		log.Error("failed to upsert user on login: %v", err)
		return nil, errors.NewInternalError(err)
	}

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.authRepo.InsertSession(ctx, session); err != nil {
		log.Error("failed to create session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("user %d signed in", user.ID)
	return &session, nil
}

func (s *authService) CurrentUser(ctx context.Context, sessionToken string) (*models.User, error) {
	if sessionToken == "" {
		return nil, nil
	}

	session, err := s.authRepo.GetSession(ctx, sessionToken, time.Now().UTC())
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return user, nil
}

func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	if err := s.authRepo.DeleteSession(ctx, sessionToken); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}
