package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Worker   WorkerConfig
}

type AppConfig struct {
	Port        string
	BaseURL     string
	ClientURL   string
	Environment string
	LogFilePath string
	// Separate file for the notification worker's file-only logger.
	NotificationLogFilePath string
	CorsAllowedOrigins      string
	NatsURL                 string
	RedisURL                string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type WorkerConfig struct {
	PaymentTopic string
	// Minutes between sweeper passes.
	SweepIntervalMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:                    getEnv("APP_PORT", "3000"),
			BaseURL:                 getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:               getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:             getEnv("GO_ENV", "development"),
			LogFilePath:             getEnv("LOG_FILE_PATH", "app.log"),
			NotificationLogFilePath: getEnv("NOTIFICATION_LOG_FILE_PATH", "notifications.log"),
			CorsAllowedOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:                 getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:                getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "EstateListing"),
		},
		Worker: WorkerConfig{
			PaymentTopic:         getEnv("PAYMENT_CONFIRMED_TOPIC_NAME", "PAYMENT_CONFIRMED"),
			SweepIntervalMinutes: getEnvAsInt("SWEEP_INTERVAL_MINUTES", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
