package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Sheets  SheetsConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// SheetsConfig points at the Apps Script endpoint that serves the
// spreadsheet tables as one JSON object.
type SheetsConfig struct {
	URL          string
	FetchTimeout time.Duration
}

type CatalogConfig struct {
	PageSize     int
	ActivePolicy string
	Locale       string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPPort: getEnv("HTTP_PORT", ":8080"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Sheets: SheetsConfig{
			URL:          getEnv("SHEETS_JSON_URL", ""),
			FetchTimeout: time.Duration(getEnvInt("SHEETS_FETCH_TIMEOUT", 30)) * time.Second,
		},
		Catalog: CatalogConfig{
			PageSize:     getEnvInt("CATALOG_PAGE_SIZE", 24),
			ActivePolicy: getEnv("CATALOG_ACTIVE_POLICY", "lenient"),
			Locale:       getEnv("CATALOG_LOCALE", "pt-BR"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
