package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Campaign targeting
	CompanyName      string
	FromName         string
	IndustryKeywords string
	TargetRegion     string
	TargetRoles      []string

	// Pipeline timing. The follow-up delays are logical offsets from the
	// initial send; the runner never sleeps for them.
	FollowupDelay     time.Duration
	PersonalizedDelay time.Duration
	Seed              int64

	// Email provider: "stub", "sendgrid" or "ses"
	EmailProvider     string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	SESFromEmail      string
	SESFromName       string

	// Chat notifications
	SlackWebhookURL string
	SlackChannel    string

	// Optional campaign activity log (Postgres)
	DatabaseURL string

	// Optional suppression list backend (Redis). Empty addr keeps the
	// in-memory store.
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// Follow-up queue
	UseMemoryQueue   bool
	FollowupQueueURL string

	// AWS wiring (SES, SQS, DynamoDB, S3)
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
	MeetingsTable       string
	ReportBucket        string

	// Meeting booking
	BookingDaysAhead int
	MeetingDuration  time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CompanyName:      getEnv("COMPANY_NAME", "Matherson and Sons"),
		FromName:         getEnv("FROM_NAME", "Alex Matherson"),
		IndustryKeywords: getEnv("INDUSTRY_KEYWORDS", "manufacturing, construction"),
		TargetRegion:     getEnv("TARGET_REGION", "Australia"),
		TargetRoles:      getEnvAsList("TARGET_ROLES", []string{"CFO", "Head of Digital Transformation", "Digital Transformation Lead"}),

		FollowupDelay:     getEnvAsDuration("FOLLOWUP_DELAY", 72*time.Hour),
		PersonalizedDelay: getEnvAsDuration("PERSONALIZED_DELAY", 96*time.Hour),
		Seed:              getEnvAsInt64("CAMPAIGN_SEED", 0),

		EmailProvider:     strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "stub"))),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "alex@mathersonandsons.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Alex Matherson"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", "alex@mathersonandsons.com"),
		SESFromName:       getEnv("SES_FROM_NAME", "Alex Matherson"),

		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
		SlackChannel:    getEnv("SLACK_CHANNEL", "#sales-leads"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		UseMemoryQueue:   getEnvAsBool("USE_MEMORY_QUEUE", true),
		FollowupQueueURL: getEnv("FOLLOWUP_QUEUE_URL", ""),

		AWSRegion:           getEnv("AWS_REGION", "ap-southeast-2"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
		MeetingsTable:       getEnv("MEETINGS_TABLE", ""),
		ReportBucket:        getEnv("REPORT_BUCKET", ""),

		BookingDaysAhead: getEnvAsInt("BOOKING_DAYS_AHEAD", 7),
		MeetingDuration:  getEnvAsDuration("MEETING_DURATION", 30*time.Minute),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
