package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/collab-notes-api/internal/application/alert"
	"github.com/collab-notes-api/internal/application/mention"
	"github.com/collab-notes-api/internal/config"
	"github.com/collab-notes-api/internal/event"
	"github.com/collab-notes-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/collab-notes-api/internal/infrastructure/jwt"
	s3infra "github.com/collab-notes-api/internal/infrastructure/s3"
	"github.com/collab-notes-api/internal/infrastructure/smtp"
	"github.com/collab-notes-api/internal/infrastructure/sns"
	transporthttp "github.com/collab-notes-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional, graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for candidate attachments.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	userRepo := dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users)
	candidateRepo := dynamo.NewCandidateRepo(dynamoClient, cfg.DynamoTables.Candidates)
	notificationRepo := dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.Notifications)

	// Optional out-of-band alert channels for mentions.
	alertDeps := alert.Deps{}
	if cfg.MentionEmailAlerts {
		alertDeps.Mailer = smtp.NewMailer(cfg)
	}
	if cfg.MentionSMSAlerts {
		if sender, err := sns.NewSender(cfg); err == nil {
			alertDeps.SMS = sender
		} else {
			log.Printf("WARN: SNS sender not available: %v", err)
		}
	}
	var alerts mention.AlertSender
	if alertDeps.Mailer != nil || alertDeps.SMS != nil {
		alerts = alert.New(alertDeps)
	}

	// Mention fanout listens for new notes on the in-process bus.
	bus := event.NewBus()
	mention.NewFanout(mention.FanoutDeps{
		Users:         userRepo,
		Candidates:    candidateRepo,
		Notifications: notificationRepo,
		Alerts:        alerts,
	}).Register(bus)

	deps := &transporthttp.Deps{
		UserRepo:         userRepo,
		SessionRepo:      dynamo.NewSessionRepo(dynamoClient, cfg.DynamoTables.Sessions),
		CandidateRepo:    candidateRepo,
		NoteRepo:         dynamo.NewNoteRepo(dynamoClient, cfg.DynamoTables.Notes),
		NotificationRepo: notificationRepo,
		AttachmentRepo:   dynamo.NewAttachmentRepo(dynamoClient, cfg.DynamoTables.Attachments),
		StatusRepo:       dynamo.NewStatusRepo(dynamoClient, cfg.DynamoTables.Statuses),
		S3Store:          s3Store,
		JWTProvider:      jwtProvider,
		Bus:              bus,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	// Let in-flight mention fanouts finish before exiting.
	bus.Wait()
	log.Println("Server stopped")
}
