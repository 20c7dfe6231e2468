package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Upload   UploadConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UpstreamConfig holds settings for the remote OCR service.
type UpstreamConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	TextEndpoint string `mapstructure:"text_endpoint"`
}

// Timeout returns the per-call upstream timeout.
func (u *UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSecs) * time.Second
}

// UploadConfig holds inbound payload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the payload size ceiling in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the CLICKSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CLICKSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Upstream defaults
	v.SetDefault("upstream.base_url", "https://clickscanstg.terralogic.com")
	v.SetDefault("upstream.timeout_secs", 30)
	v.SetDefault("upstream.text_endpoint", "gettext")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "CLICKSCAN_SERVER_PORT",
		"server.read_timeout":      "CLICKSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "CLICKSCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":       "CLICKSCAN_SERVER_ENVIRONMENT",
		"upstream.base_url":        "CLICKSCAN_UPSTREAM_BASE_URL",
		"upstream.timeout_secs":    "CLICKSCAN_UPSTREAM_TIMEOUT_SECS",
		"upstream.text_endpoint":   "CLICKSCAN_UPSTREAM_TEXT_ENDPOINT",
		"upload.max_file_size_mb":  "CLICKSCAN_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":     "CLICKSCAN_CORS_ALLOWED_ORIGINS",
		"log.level":                "CLICKSCAN_LOG_LEVEL",
		"log.format":               "CLICKSCAN_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CLICKSCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CLICKSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upstream = UpstreamConfig{
		BaseURL:      strings.TrimRight(v.GetString("upstream.base_url"), "/"),
		TimeoutSecs:  v.GetInt("upstream.timeout_secs"),
		TextEndpoint: v.GetString("upstream.text_endpoint"),
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

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
