package main

import (
	"context"
	"crypto/tls"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/mathersonandsons/outreach-agent/cmd/mainconfig"
	"github.com/mathersonandsons/outreach-agent/internal/api/router"
	"github.com/mathersonandsons/outreach-agent/internal/booking"
	"github.com/mathersonandsons/outreach-agent/internal/campaign"
	appconfig "github.com/mathersonandsons/outreach-agent/internal/config"
	"github.com/mathersonandsons/outreach-agent/internal/followup"
	"github.com/mathersonandsons/outreach-agent/internal/notify"
	"github.com/mathersonandsons/outreach-agent/internal/observability/metrics"
	"github.com/mathersonandsons/outreach-agent/internal/outreach"
	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/internal/replies"
	"github.com/mathersonandsons/outreach-agent/internal/suppression"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

func main() {
	// Best effort; production config comes from real env vars.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting outreach agent",
		"env", cfg.Env,
		"company", cfg.CompanyName,
		"email_provider", cfg.EmailProvider,
	)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("campaign seed", "seed", seed)

	ctx := context.Background()

	var awsCfg aws.Config
	needsAWS := cfg.EmailProvider == "ses" ||
		(!cfg.UseMemoryQueue && cfg.FollowupQueueURL != "") ||
		cfg.MeetingsTable != "" || cfg.ReportBucket != ""
	if needsAWS {
		loaded, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		awsCfg = loaded
	}

	// Email provider
	var emailSender outreach.EmailSender
	switch cfg.EmailProvider {
	case "sendgrid":
		if s := outreach.NewSendGridSender(outreach.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); s != nil {
			emailSender = s
		}
	case "ses":
		if s := outreach.NewSESSender(sesv2.NewFromConfig(awsCfg), outreach.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger); s != nil {
			emailSender = s
		}
	}
	if emailSender == nil {
		if cfg.EmailProvider != "stub" {
			logger.Warn("email provider not fully configured, using stub", "provider", cfg.EmailProvider)
		}
		emailSender = outreach.NewStubEmailSender(logger)
	}

	sender := outreach.NewSender(emailSender, cfg.FromName, cfg.CompanyName, logger)

	// Suppression list
	var suppressed suppression.Store = suppression.NewInMemoryStore()
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer func() { _ = client.Close() }()
		suppressed = suppression.NewRedisStore(client)
		logger.Info("using redis suppression list", "addr", cfg.RedisAddr)
	}

	// Follow-up queue
	var queue followup.Queue = followup.NewMemoryQueue(256)
	if !cfg.UseMemoryQueue && cfg.FollowupQueueURL != "" {
		queue = followup.NewSQSQueue(sqs.NewFromConfig(awsCfg), cfg.FollowupQueueURL)
		logger.Info("using SQS follow-up queue", "queue_url", cfg.FollowupQueueURL)
	}

	// Campaign activity log
	var activity campaign.ActivityRecorder = campaign.NopRecorder{}
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		activity = campaign.NewActivityStore(pool)
		logger.Info("campaign activity log enabled")
	}

	// Meeting store
	var meetings booking.MeetingStore = booking.NewInMemoryMeetingStore()
	if cfg.MeetingsTable != "" {
		meetings = booking.NewDynamoMeetingStore(dynamodb.NewFromConfig(awsCfg), cfg.MeetingsTable)
		logger.Info("using DynamoDB meeting store", "table", cfg.MeetingsTable)
	}

	// Report archive
	var archiver campaign.ReportArchiver
	if cfg.ReportBucket != "" {
		archiver = campaign.NewArchiver(s3.NewFromConfig(awsCfg), cfg.ReportBucket, logger)
		logger.Info("report archiving enabled", "bucket", cfg.ReportBucket)
	}

	// Chat notifications
	var poster notify.ChatPoster
	if cfg.SlackWebhookURL != "" {
		poster = notify.NewSlackWebhookPoster(cfg.SlackWebhookURL)
	} else {
		poster = notify.NewStubChatPoster(logger)
	}

	registry := prometheus.NewRegistry()
	outreachMetrics := metrics.New(registry)

	repo := prospecting.NewInMemoryRepository()
	state := campaign.NewState()
	inbox := replies.NewSimulatedInbox(rand.New(rand.NewSource(seed)), logger)

	runner := campaign.NewRunner(campaign.RunnerConfig{
		IndustryKeywords:  cfg.IndustryKeywords,
		TargetRegion:      cfg.TargetRegion,
		TargetRoles:       cfg.TargetRoles,
		FollowupDelay:     cfg.FollowupDelay,
		PersonalizedDelay: cfg.PersonalizedDelay,
	}, campaign.RunnerDeps{
		Directory:  prospecting.NewSimulatedDirectory(logger),
		Enricher:   prospecting.NewEnricher(rand.New(rand.NewSource(seed + 1))),
		Contacts:   repo,
		Sender:     sender,
		Scheduler:  followup.NewScheduler(queue, logger),
		Worker:     followup.NewWorker(queue, repo, sender, suppressed, state, state, logger),
		Processor:  replies.NewProcessor(inbox, repo, logger),
		Suppressed: suppressed,
		Notifier:   notify.NewService(poster, cfg.SlackChannel, logger),
		Booker: booking.NewBooker(
			booking.NewCalendar(rand.New(rand.NewSource(seed+2)), cfg.BookingDaysAhead, cfg.MeetingDuration),
			meetings,
			rand.New(rand.NewSource(seed+3)),
			cfg.CompanyName,
			logger,
		),
		State:    state,
		Activity: activity,
		Archiver: archiver,
		Metrics:  outreachMetrics,
		Logger:   logger,
	})

	// Status server
	r := router.New(&router.Config{
		Logger:         logger,
		State:          state,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("status server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("status server error", "error", err)
			os.Exit(1)
		}
	}()

	// Run the campaign. The timeline is logical: follow-up days are simulated
	// immediately rather than slept through.
	done := make(chan struct{})
	go func() {
		defer close(done)
		report, err := runner.Run(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("campaign failed", "error", err)
			return
		}
		summary := report.Summary
		logger.Info("campaign summary",
			"total_contacts", summary.TotalContacts,
			"bounced", summary.Bounced,
			"unsubscribed", summary.Unsubscribed,
			"replied", summary.Replied,
			"interested", summary.Interested,
			"meetings_booked", summary.MeetingsBooked,
		)
	}()

	// Keep serving the summary until interrupted.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-done:
		// Campaign finished; wait for an interrupt so the summary stays up.
		<-quit
	}

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("agent stopped")
}
