package config

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	TokenTTLHours     int    `mapstructure:"TOKEN_TTL_HOURS"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Notifications.
	NotificationQueueEnabled bool `mapstructure:"NOTIFICATION_QUEUE_ENABLED"`
	NotifyAdminsOnBooking    bool `mapstructure:"NOTIFY_ADMINS_ON_BOOKING"`

	// Reservations.
	DriverFeePerDay  float64 `mapstructure:"DRIVER_FEE_PER_DAY"`
	DefaultPageLimit int     `mapstructure:"DEFAULT_PAGE_LIMIT"`
	MaxPageLimit     int     `mapstructure:"MAX_PAGE_LIMIT"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real deployments pass plain environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "travelhub")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL_HOURS", 72)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("NOTIFICATION_QUEUE_ENABLED", true)
	viper.SetDefault("NOTIFY_ADMINS_ON_BOOKING", true)
	viper.SetDefault("DRIVER_FEE_PER_DAY", 7000)
	viper.SetDefault("DEFAULT_PAGE_LIMIT", 20)
	viper.SetDefault("MAX_PAGE_LIMIT", 100)

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

// ErrMissingJWTSecret is returned when production runs without a signing key.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set when ENV=production")

// Validate rejects settings the server must not start with.
func (c Config) Validate() error {
	if c.Env == "production" && c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
