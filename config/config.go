package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSAllowedOrigin string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Session configuration.
	SessionStore  string        `mapstructure:"SESSION_STORE"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	SessionSecret string        `mapstructure:"SESSION_SECRET"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisTaskDB    int    `mapstructure:"REDIS_TASK_DB"`

	// Catalog source and MongoDB.
	CatalogSource string `mapstructure:"CATALOG_SOURCE"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`

	// Delayed tasks.
	TaskBackend               string        `mapstructure:"TASK_BACKEND"`
	BookingSubmitDelay        time.Duration `mapstructure:"BOOKING_SUBMIT_DELAY"`
	NewsletterAutoDismiss     time.Duration `mapstructure:"NEWSLETTER_AUTO_DISMISS"`
	NewsletterScrollThreshold float64       `mapstructure:"NEWSLETTER_SCROLL_THRESHOLD"`

	// Cloudinary media delivery.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SESSION_SECRET", "sattva-dev-secret")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_TASK_DB", 1)
	viper.SetDefault("CATALOG_SOURCE", "static")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "sattva")
	viper.SetDefault("TASK_BACKEND", "timer")
	viper.SetDefault("BOOKING_SUBMIT_DELAY", "500ms")
	viper.SetDefault("NEWSLETTER_AUTO_DISMISS", "2s")
	viper.SetDefault("NEWSLETTER_SCROLL_THRESHOLD", 0.45)
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

// Validate rejects backend combinations the service cannot run with.
func (c Config) Validate() error {
	// Queued tasks may run on any instance, which must see the same sessions.
	if c.TaskBackend == "asynq" && c.SessionStore != "redis" {
		return fmt.Errorf("TASK_BACKEND=asynq requires SESSION_STORE=redis, got %q", c.SessionStore)
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
