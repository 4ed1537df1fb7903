package config

import (
	"os"
	"strconv"
	"strings"
)

// Store backends
const (
	StoreSQLite    = "sqlite"
	StoreFirestore = "firestore"
)

// NLP engines
const (
	EngineProse  = "prose"
	EngineVertex = "vertex"
)

// Detail fetch policies
const (
	PolicyFailFast   = "fail_fast"
	PolicyBestEffort = "best_effort"
)

// Result orders
const (
	OrderAscending  = "asc"
	OrderDescending = "desc"
)

// DefaultSearchBaseURL is the guest job-search endpoint scraped by the pipeline
const DefaultSearchBaseURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings"

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  string
	Debug bool

	// Authentication
	JWTSecret      string
	JWTExpiryHours int

	// User store
	StoreBackend string
	SQLitePath   string

	// Google Cloud (Firestore store, Vertex AI engine)
	ProjectID string
	Location  string

	// NLP
	NLPEngine   string
	GeminiModel string

	// Scraping
	SearchBaseURL       string
	HTTPTimeoutSeconds  int
	DetailFetchPolicy   string
	DetailMaxConcurrent int
	SelectorsFile       string

	// Results
	ResultOrder string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),

		// User store
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", StoreSQLite)),
		SQLitePath:   getEnv("SQLITE_PATH", "jobmatch.db"),

		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// NLP
		NLPEngine:   strings.ToLower(getEnv("NLP_ENGINE", EngineProse)),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Scraping
		SearchBaseURL:       strings.TrimRight(getEnv("SEARCH_BASE_URL", DefaultSearchBaseURL), "/"),
		HTTPTimeoutSeconds:  getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		DetailFetchPolicy:   strings.ToLower(getEnv("DETAIL_FETCH_POLICY", PolicyFailFast)),
		DetailMaxConcurrent: getEnvInt("DETAIL_MAX_CONCURRENT", 0),
		SelectorsFile:       getEnv("SELECTORS_FILE", ""),

		// Results
		ResultOrder: strings.ToLower(getEnv("RESULT_ORDER", OrderAscending)),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if !c.Debug {
			return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET is required outside debug mode"}
		}
		c.JWTSecret = "debug-secret-change-in-production"
	}

	switch c.StoreBackend {
	case StoreSQLite:
		if c.SQLitePath == "" {
			return &ConfigError{Field: "SQLITE_PATH", Message: "SQLITE_PATH is required for the sqlite store"}
		}
	case StoreFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the firestore store"}
		}
	default:
		return &ConfigError{Field: "STORE_BACKEND", Message: "STORE_BACKEND must be sqlite or firestore"}
	}

	switch c.NLPEngine {
	case EngineProse:
	case EngineVertex:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the vertex NLP engine"}
		}
	default:
		return &ConfigError{Field: "NLP_ENGINE", Message: "NLP_ENGINE must be prose or vertex"}
	}

	if c.DetailFetchPolicy != PolicyFailFast && c.DetailFetchPolicy != PolicyBestEffort {
		return &ConfigError{Field: "DETAIL_FETCH_POLICY", Message: "DETAIL_FETCH_POLICY must be fail_fast or best_effort"}
	}
	if c.ResultOrder != OrderAscending && c.ResultOrder != OrderDescending {
		return &ConfigError{Field: "RESULT_ORDER", Message: "RESULT_ORDER must be asc or desc"}
	}
	if c.SearchBaseURL == "" {
		return &ConfigError{Field: "SEARCH_BASE_URL", Message: "SEARCH_BASE_URL must not be empty"}
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return &ConfigError{Field: "HTTP_TIMEOUT_SECONDS", Message: "HTTP_TIMEOUT_SECONDS must be positive"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
