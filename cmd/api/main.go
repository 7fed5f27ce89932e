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

	"github.com/joho/godotenv"
	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/portfolio-api/internal/infrastructure/jwt"
	"github.com/portfolio-api/internal/infrastructure/smtp"
	"github.com/portfolio-api/internal/infrastructure/sns"
	transporthttp "github.com/portfolio-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// SMTP mailer delivers the login PINs.
	mailer := smtp.NewMailer(cfg)

	// SNS operator alerts (optional — no topic, no alerts).
	var alerts sns.AlertPublisher
	if cfg.SNSAlertTopicARN != "" {
		if p, err := sns.NewPublisher(cfg); err == nil {
			alerts = p
		} else {
			log.Printf("WARN: SNS publisher not available: %v", err)
		}
	}

	pinRepo := dynamo.NewPinRepo(dynamoClient, cfg.DynamoTables.Pins)

	deps := &transporthttp.Deps{
		PinRepo:     pinRepo,
		SessionRepo: dynamo.NewSessionRepo(dynamoClient, cfg.DynamoTables.Sessions),
		ProjectRepo: dynamo.NewProjectRepo(dynamoClient, cfg.DynamoTables.Projects),
		ContactRepo: dynamo.NewContactRepo(dynamoClient, cfg.DynamoTables.ContactMessages),
		SettingRepo: dynamo.NewSettingRepo(dynamoClient, cfg.DynamoTables.Settings),
		Mailer:      mailer,
		Alerts:      alerts,
		JWTProvider: jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	// Background sweep for expired PINs. The table TTL also reaps them, but
	// the sweep keeps dev/LocalStack tables from accumulating rows.
	stopPurge := make(chan struct{})
	if cfg.PinPurgeInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.PinPurgeInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					n, err := pinRepo.PurgeExpired(context.Background())
					if err != nil {
						log.Printf("WARN: pin purge failed: %v", err)
					} else if n > 0 {
						log.Printf("pin purge removed %d expired records", n)
					}
				case <-stopPurge:
					return
				}
			}
		}()
	}

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
	close(stopPurge)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
