package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Upload    UploadConfig
	S3        S3Config
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"8000"`

	// DebugMode switches gin into debug mode and the logger to console
	// output. Reload-on-change is left to external tooling; DebugMode must
	// stay false in production.
	DebugMode bool `envconfig:"DEBUG_MODE" default:"false"`

	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOrigins defaults to the server's own host, matching the original
// deployment where the frontend was served from the same machine.
func (c ServerConfig) AllowedOrigins() []string {
	if len(c.CORSAllowedOrigins) > 0 {
		return c.CORSAllowedOrigins
	}
	return []string{
		fmt.Sprintf("http://%s", c.Host),
		fmt.Sprintf("http://%s:%d", c.Host, c.Port),
	}
}

type StorageConfig struct {
	ImageDirectory string `envconfig:"IMAGE_DIRECTORY" required:"true"`
}

type UploadConfig struct {
	MaxUploadSize int64 `envconfig:"MAX_UPLOAD_SIZE" default:"10485760"`
	// MaxImagePixels bounds width*height at decode time, guarding against
	// decompression bombs.
	MaxImagePixels int64 `envconfig:"MAX_IMAGE_PIXELS" default:"178956970"`
}

type S3Config struct {
	ArchiveEnabled  bool   `envconfig:"S3_ARCHIVE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string `envconfig:"S3_PUBLIC_URL"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Storage.ImageDirectory == "" {
		return nil, fmt.Errorf("loading config: IMAGE_DIRECTORY is required")
	}
	if cfg.S3.ArchiveEnabled && cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("loading config: S3_BUCKET is required when S3_ARCHIVE_ENABLED is set")
	}
	return &cfg, nil
}
