package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Upload  UploadConfig
	CORS    CORSConfig
	S3      S3Config
	Metrics MetricsConfig
	Session SessionConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UploadConfig limits spreadsheet uploads.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB << 20
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// S3Config holds settings for archiving uploaded source files.
type S3Config struct {
	Archive   bool   `mapstructure:"archive"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// SessionConfig bounds in-memory session state.
type SessionConfig struct {
	MaxSessions int `mapstructure:"max_sessions"`
}

// Load reads configuration from a .env file (if present) and environment
// variables with the BILLRECON_ prefix.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BILLRECON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 20)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// S3 defaults; archiving is off unless enabled
	v.SetDefault("s3.archive", false)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "billrecon-uploads")
	v.SetDefault("s3.endpoint", "")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Session defaults
	v.SetDefault("session.max_sessions", 100)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "BILLRECON_SERVER_PORT",
		"server.read_timeout":     "BILLRECON_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "BILLRECON_SERVER_WRITE_TIMEOUT",
		"server.environment":      "BILLRECON_SERVER_ENVIRONMENT",
		"log.level":               "BILLRECON_LOG_LEVEL",
		"log.format":              "BILLRECON_LOG_FORMAT",
		"upload.max_file_size_mb": "BILLRECON_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":    "BILLRECON_CORS_ALLOWED_ORIGINS",
		"s3.archive":              "BILLRECON_S3_ARCHIVE",
		"s3.region":               "BILLRECON_S3_REGION",
		"s3.bucket":               "BILLRECON_S3_BUCKET",
		"s3.endpoint":             "BILLRECON_S3_ENDPOINT",
		"s3.access_key":           "BILLRECON_S3_ACCESS_KEY",
		"s3.secret_key":           "BILLRECON_S3_SECRET_KEY",
		"metrics.enabled":         "BILLRECON_METRICS_ENABLED",
		"metrics.path":            "BILLRECON_METRICS_PATH",
		"session.max_sessions":    "BILLRECON_SESSION_MAX_SESSIONS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLRECON_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLRECON_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.S3 = S3Config{
		Archive:   v.GetBool("s3.archive"),
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}
	cfg.Session = SessionConfig{
		MaxSessions: v.GetInt("session.max_sessions"),
	}

	return cfg, nil
}
