package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port              string
	CORSAllowOrigin   []string
	TemplateStoreType string
	TemplateDir       string
	AWSRegion         string
	S3Bucket          string
	S3Prefix          string
	ChromePath        string
	RenderTimeout     time.Duration
	CacheSize         int
	CacheTTL          time.Duration
	OrgName           string
	OrgLogoURL        string
	FallbackQRURL     string
	Env               string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:              getEnv("PORT", "8080"),
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		TemplateStoreType: normalizeStoreType(getEnv("TEMPLATE_STORE", "local")),
		TemplateDir:       getEnv("TEMPLATE_DIR", "./templates/cv"),
		AWSRegion:         getEnv("AWS_REGION", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Prefix:          getEnv("S3_PREFIX", ""),
		ChromePath:        getEnv("CHROME_PATH", ""),
		RenderTimeout:     getDuration("RENDER_TIMEOUT", 30*time.Second),
		CacheSize:         getInt("RENDER_CACHE_SIZE", 50),
		CacheTTL:          getDuration("RENDER_CACHE_TTL", 10*time.Minute),
		OrgName:           getEnv("ORG_NAME", ""),
		OrgLogoURL:        getEnv("ORG_LOGO_URL", ""),
		FallbackQRURL:     getEnv("FALLBACK_QR_URL", ""),
		Env:               normalizeEnv(getEnv("ENV", "dev")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
