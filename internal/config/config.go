package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	JWTPrivateKeyPath  string
	JWTPublicKeyPath   string
	JWTExpiry          time.Duration
	RefreshTokenExpiry time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion        string
	SNSAlertTopicARN string // optional; empty disables operator alerts

	AllowedOrigins []string // CORS allowed origins

	// Passwordless admin login. Only addresses in AdminAllowedEmails can
	// ever receive a PIN; there is no registration.
	AdminAllowedEmails []string
	PinLength          int
	PinTTL             time.Duration
	PinHashCost        int
	PinPurgeInterval   time.Duration // 0 disables the background sweep
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Pins            string
	Sessions        string
	Projects        string
	ContactMessages string
	Settings        string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Pins:            getEnv("DYNAMO_TABLE_PINS", "login_pins"),
			Sessions:        getEnv("DYNAMO_TABLE_SESSIONS", "sessions"),
			Projects:        getEnv("DYNAMO_TABLE_PROJECTS", "projects"),
			ContactMessages: getEnv("DYNAMO_TABLE_CONTACT_MESSAGES", "contact_messages"),
			Settings:        getEnv("DYNAMO_TABLE_SETTINGS", "site_settings"),
		},

		JWTPrivateKeyPath:  getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:   getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:          time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 12)) * time.Hour,
		RefreshTokenExpiry: time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRY_DAYS", 30)) * 24 * time.Hour,

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion:        getEnv("SNS_REGION", "us-east-1"),
		SNSAlertTopicARN: getEnv("SNS_ALERT_TOPIC_ARN", ""),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),

		AdminAllowedEmails: splitList(getEnv("ADMIN_ALLOWED_EMAILS", "")),
		PinLength:          getEnvInt("PIN_LENGTH", 6),
		PinTTL:             time.Duration(getEnvInt("PIN_TTL_MINUTES", 10)) * time.Minute,
		PinHashCost:        getEnvInt("PIN_HASH_COST", 10),
		PinPurgeInterval:   time.Duration(getEnvInt("PIN_PURGE_INTERVAL_MINUTES", 60)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
