package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/nima/farsiflash/internal/jobs"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/repository"
)

// Scheduler runs the daily background tasks: the due-items reminder
// digest and expired token cleanup.
type Scheduler struct {
	scheduler    *gocron.Scheduler
	progressRepo repository.ProgressRepository
	authRepo     repository.AuthRepository
	mailQueue    jobs.MailQueue
	baseURL      string
	reminderHour int
	log          *logger.Logger
}

// New creates a Scheduler. reminderHour is the UTC hour of day the
// digest goes out.
func New(progressRepo repository.ProgressRepository, authRepo repository.AuthRepository, mailQueue jobs.MailQueue, baseURL string, reminderHour int) *Scheduler {
	return &Scheduler{
		scheduler:    gocron.NewScheduler(time.UTC),
		progressRepo: progressRepo,
		authRepo:     authRepo,
		mailQueue:    mailQueue,
		baseURL:      baseURL,
		reminderHour: reminderHour,
		log:          logger.Default().WithPrefix("scheduler"),
	}
}

// Start registers the jobs and begins running them asynchronously.
func (s *Scheduler) Start() {
	at := fmt.Sprintf("%02d:00", s.reminderHour)
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.sendReminders); err != nil {
		s.log.Error("failed to schedule reminder digest: %v", err)
	}
	if _, err := s.scheduler.Every(1).Day().At("03:30").Do(s.cleanupExpired); err != nil {
		s.log.Error("failed to schedule token cleanup: %v", err)
	}
	s.scheduler.StartAsync()
	s.log.Info("scheduler started, reminder digest at %s UTC", at)
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) sendReminders() {
	ctx := logger.NewContext(context.Background(), s.log)
	now := time.Now().UTC()

	reminders, err := s.progressRepo.UsersWithDueItems(ctx, now)
	if err != nil {
		s.log.Error("failed to find users with due items: %v", err)
		return
	}
	s.log.Info("sending reminder digest to %d users", len(reminders))

	for _, r := range reminders {
		word := "words"
		if r.DueCount == 1 {
			word = "word"
		}
		body := fmt.Sprintf(
			"Salâm!\n\nYou have %d %s waiting for review on FarsiFlash.\nA few minutes now keeps your streak alive:\n\n%s/practice\n",
			r.DueCount, word, s.baseURL,
		)
		subject := fmt.Sprintf("%d %s due for review", r.DueCount, word)
		if err := s.mailQueue.EnqueueMail(r.Email, subject, body); err != nil {
			s.log.Error("failed to enqueue reminder for user %d: %v", r.UserID, err)
		}
	}
}

func (s *Scheduler) cleanupExpired() {
	ctx := logger.NewContext(context.Background(), s.log)
	if err := s.authRepo.DeleteExpired(ctx, time.Now().UTC()); err != nil {
		s.log.Error("failed to clean up expired tokens: %v", err)
	}
}
