package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nima/farsiflash/internal/api"
	"github.com/nima/farsiflash/internal/config"
	"github.com/nima/farsiflash/internal/db"
	"github.com/nima/farsiflash/internal/jobs"
	"github.com/nima/farsiflash/internal/logger"
	"github.com/nima/farsiflash/internal/mailer"
	"github.com/nima/farsiflash/internal/repository/sqlite"
	"github.com/nima/farsiflash/internal/scheduler"
	"github.com/nima/farsiflash/internal/services"
	"github.com/nima/farsiflash/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("FarsiFlash Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("base_url=%s", cfg.BaseURL)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("mail_worker_count=%d", cfg.MailWorkerCount)
	log.Debug("mail_queue_size=%d", cfg.MailQueueSize)
	log.Debug("session_size=%d", cfg.SessionSize)
	log.Debug("reminder_hour=%d", cfg.ReminderHour)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	// Repositories
	vocabRepo := sqlite.NewVocabularyRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)
	userRepo := sqlite.NewUserRepository(database.DB)
	authRepo := sqlite.NewAuthRepository(database.DB)
	blogRepo := sqlite.NewBlogRepository(database.DB)

	// Outbound mail: worker pool draining a queue of mail jobs.
	var m mailer.Mailer
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		log.Warn("no SMTP host configured, mail will be logged instead of sent")
		m = mailer.NewLogMailer()
	}
	mailPool := worker.NewPool(cfg.MailWorkerCount, cfg.MailQueueSize)
	mailQueue := jobs.NewMailQueue(mailPool, m)

	// Services
	authService := services.NewAuthService(
		authRepo, userRepo, mailQueue,
		cfg.BaseURL,
		time.Duration(cfg.MagicLinkTTLMin)*time.Minute,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)
	userService := services.NewUserService(userRepo, progressRepo)
	practiceService := services.NewPracticeService(vocabRepo, progressRepo, userRepo, cfg.SessionSize)
	vocabService := services.NewVocabularyService(vocabRepo)
	blogService := services.NewBlogService(blogRepo)
	importService := services.NewImportService(vocabRepo, blogRepo)

	srv := &api.Server{
		AuthService:       authService,
		UserService:       userService,
		PracticeService:   practiceService,
		VocabularyService: vocabService,
		BlogService:       blogService,
		ImportService:     importService,
		Templates:         tmpl,
		AdminToken:        cfg.AdminToken,
	}

	ctx, cancel := context.WithCancel(context.Background())
	mailPool.Start(ctx)

	// Background jobs: daily review reminders and token cleanup.
	sched := scheduler.New(progressRepo, authRepo, mailQueue, cfg.BaseURL, cfg.ReminderHour)
	sched.Start()

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping background scheduler")
	sched.Stop()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	mailPool.Stop()

	log.Info("===========================================")
	log.Info("FarsiFlash Server Stopped")
	log.Info("===========================================")
}
