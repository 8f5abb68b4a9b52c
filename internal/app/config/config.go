package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr        string
	AppEnv          string
	LogLevel        string
	CORSAllowOrigin string
	DatabaseURL     string
	SessionTTL      time.Duration
	PDFCompress     bool
}

func MustLoad() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		AppEnv:          env("APP_ENV", "dev"),
		LogLevel:        env("LOG_LEVEL", "info"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		DatabaseURL:     env("DATABASE_URL", ""),
		SessionTTL:      mustDuration("SESSION_TTL", 2*time.Hour),
		PDFCompress:     mustBool("PDF_COMPRESS", true),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", k, err)
	}
	return d
}

func mustBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", k, err)
	}
	return b
}
