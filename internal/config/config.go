package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret   string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPassword  string
	DbName      string
	DbSSLMode   string
	ServerPort  string
	Issuer      string
	CorsOrigins []string

	StrictSchema     bool
	StrictReportData bool
	DefaultPageSize  = 10
	MaxPageSize      = 100

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioURLExpiry = 15 * time.Minute

	SmtpHost         string
	SmtpPort         int
	SmtpUser         string
	SmtpPassword     string
	SmtpFrom         string
	NotifyRecipients []string
	EmailWorkers     = 2

	AuditRetentionDays   = 90
	AuditCleanupSchedule string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "reports")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "report-hub")
	CorsOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:3000"))

	StrictSchema = getBool("STRICT_SCHEMA", false)
	StrictReportData = getBool("STRICT_REPORT_DATA", false)
	DefaultPageSize = getInt("DEFAULT_PAGE_SIZE", 10)
	MaxPageSize = getInt("MAX_PAGE_SIZE", 100)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "report-images")
	MinioUseSSL = getBool("MINIO_USE_SSL", false)

	SmtpHost = getEnv("SMTP_HOST", "")
	SmtpPort = getInt("SMTP_PORT", 587)
	SmtpUser = getEnv("SMTP_USER", "")
	SmtpPassword = getEnv("SMTP_PASSWORD", "")
	SmtpFrom = getEnv("SMTP_FROM", "noreply@report-hub.local")
	NotifyRecipients = splitList(getEnv("NOTIFY_RECIPIENTS", ""))
	EmailWorkers = getInt("EMAIL_WORKERS", 2)

	AuditRetentionDays = getInt("AUDIT_RETENTION_DAYS", 90)
	AuditCleanupSchedule = getEnv("AUDIT_CLEANUP_SCHEDULE", "@daily")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		log.Printf("invalid %s, using %v", key, fallback)
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		log.Printf("invalid %s, using %d", key, fallback)
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
