package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Redis    RedisConfig
	OCR      OCRConfig
	Analyzer AnalyzerConfig
	Places   PlacesConfig
	Log      LogConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// EnvPrefix returns the object-storage folder prefix for the current
// environment: "dev" everywhere except production.
func (s *ServerConfig) EnvPrefix() string {
	if s.Environment == "production" {
		return "prod"
	}
	return "dev"
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds object storage settings. Endpoint and PublicBaseURL make
// the client work against R2-compatible stores as well as plain S3.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// Configured reports whether enough settings are present to attempt uploads.
func (s *S3Config) Configured() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

// RedisConfig holds analysis cache connection settings.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OCRConfig holds remote OCR service settings.
type OCRConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	Secret      string `mapstructure:"secret"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Configured reports whether the OCR service can be called.
func (o *OCRConfig) Configured() bool {
	return o.Endpoint != "" && o.Secret != ""
}

// AnalyzerConfig holds structured-reasoning service settings.
type AnalyzerConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// PlacesConfig holds place-search API settings.
type PlacesConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Endpoint     string `mapstructure:"endpoint"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the MOIM_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MOIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "moim")
	v.SetDefault("db.password", "moim_secret")
	v.SetDefault("db.name", "moim_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "moim")

	// S3 defaults
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("s3.max_file_size_mb", 50)

	// Redis defaults
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// OCR defaults
	v.SetDefault("ocr.endpoint", "")
	v.SetDefault("ocr.secret", "")
	v.SetDefault("ocr.timeout_secs", 60)

	// Analyzer defaults
	v.SetDefault("analyzer.provider", "openai")
	v.SetDefault("analyzer.api_key", "")
	v.SetDefault("analyzer.default_model", "gpt-4o-mini")
	v.SetDefault("analyzer.timeout_secs", 120)

	// Places defaults
	v.SetDefault("places.client_id", "")
	v.SetDefault("places.client_secret", "")
	v.SetDefault("places.endpoint", "https://openapi.naver.com/v1/search/local.json")
	v.SetDefault("places.timeout_secs", 5)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "MOIM_SERVER_PORT",
		"server.read_timeout":    "MOIM_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "MOIM_SERVER_WRITE_TIMEOUT",
		"server.environment":     "MOIM_SERVER_ENVIRONMENT",
		"db.host":                "MOIM_DB_HOST",
		"db.port":                "MOIM_DB_PORT",
		"db.user":                "MOIM_DB_USER",
		"db.password":            "MOIM_DB_PASSWORD",
		"db.name":                "MOIM_DB_NAME",
		"db.sslmode":             "MOIM_DB_SSLMODE",
		"db.max_open":            "MOIM_DB_MAX_OPEN",
		"db.max_idle":            "MOIM_DB_MAX_IDLE",
		"jwt.secret":             "MOIM_JWT_SECRET",
		"jwt.access_expiry":      "MOIM_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":     "MOIM_JWT_REFRESH_EXPIRY",
		"jwt.issuer":             "MOIM_JWT_ISSUER",
		"s3.region":              "MOIM_S3_REGION",
		"s3.bucket":              "MOIM_S3_BUCKET",
		"s3.endpoint":            "MOIM_S3_ENDPOINT",
		"s3.access_key":          "MOIM_S3_ACCESS_KEY",
		"s3.secret_key":          "MOIM_S3_SECRET_KEY",
		"s3.public_base_url":     "MOIM_S3_PUBLIC_BASE_URL",
		"s3.max_file_size_mb":    "MOIM_S3_MAX_FILE_SIZE_MB",
		"redis.address":          "MOIM_REDIS_ADDRESS",
		"redis.password":         "MOIM_REDIS_PASSWORD",
		"redis.db":               "MOIM_REDIS_DB",
		"ocr.endpoint":           "MOIM_OCR_ENDPOINT",
		"ocr.secret":             "MOIM_OCR_SECRET",
		"ocr.timeout_secs":       "MOIM_OCR_TIMEOUT_SECS",
		"analyzer.provider":      "MOIM_ANALYZER_PROVIDER",
		"analyzer.api_key":       "MOIM_ANALYZER_API_KEY",
		"analyzer.default_model": "MOIM_ANALYZER_DEFAULT_MODEL",
		"analyzer.timeout_secs":  "MOIM_ANALYZER_TIMEOUT_SECS",
		"places.client_id":       "MOIM_PLACES_CLIENT_ID",
		"places.client_secret":   "MOIM_PLACES_CLIENT_SECRET",
		"places.endpoint":        "MOIM_PLACES_ENDPOINT",
		"places.timeout_secs":    "MOIM_PLACES_TIMEOUT_SECS",
		"log.level":              "MOIM_LOG_LEVEL",
		"log.format":             "MOIM_LOG_FORMAT",
		"cors.allowed_origins":   "MOIM_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MOIM_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MOIM_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PublicBaseURL: v.GetString("s3.public_base_url"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}
	cfg.Redis = RedisConfig{
		Address:  v.GetString("redis.address"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
	cfg.OCR = OCRConfig{
		Endpoint:    v.GetString("ocr.endpoint"),
		Secret:      v.GetString("ocr.secret"),
		TimeoutSecs: v.GetInt("ocr.timeout_secs"),
	}
	cfg.Analyzer = AnalyzerConfig{
		Provider:     v.GetString("analyzer.provider"),
		APIKey:       v.GetString("analyzer.api_key"),
		DefaultModel: v.GetString("analyzer.default_model"),
		TimeoutSecs:  v.GetInt("analyzer.timeout_secs"),
	}
	cfg.Places = PlacesConfig{
		ClientID:     v.GetString("places.client_id"),
		ClientSecret: v.GetString("places.client_secret"),
		Endpoint:     v.GetString("places.endpoint"),
		TimeoutSecs:  v.GetInt("places.timeout_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
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

	return cfg, nil
}
