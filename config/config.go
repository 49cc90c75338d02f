package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSecretKey signs session cookies when SECRET_KEY is unset.
// Not safe for production use.
const DefaultSecretKey = "insecure-development-secret"

type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Bank     BankConfig
	History  HistoryConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	S3       S3Config
	Log      LogConfig
}

type ServerConfig struct {
	HTTPPort string
	GRPCPort string
}

type SessionConfig struct {
	SecretKey  string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type BankConfig struct {
	Source  string // "dir" or "s3"
	DataDir string
	Bucket  string
}

type HistoryConfig struct {
	Driver     string // "postgres", "sqlite" or "none"
	SQLitePath string
	DB         DBConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			HTTPPort: getEnv("HTTP_PORT", "5000"),
			GRPCPort: getEnv("GRPC_PORT", "50051"),
		},
		Session: SessionConfig{
			SecretKey:  getEnv("SECRET_KEY", DefaultSecretKey),
			CookieName: getEnv("SESSION_COOKIE", "practice_session"),
			TTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			Secure:     getEnvAsBool("SESSION_COOKIE_SECURE", false),
		},
		Bank: BankConfig{
			Source:  getEnv("BANK_SOURCE", "dir"),
			DataDir: getEnv("BANK_DATA_DIR", "data"),
			Bucket:  getEnv("BANK_BUCKET", "question-banks"),
		},
		History: HistoryConfig{
			Driver:     getEnv("HISTORY_DRIVER", "sqlite"),
			SQLitePath: getEnv("HISTORY_SQLITE_PATH", "practice.db"),
			DB: DBConfig{
				Host:     getEnv("DB_HOST", "postgres"),
				Port:     getEnv("DB_PORT", "5432"),
				User:     getEnv("DB_USER", "practice"),
				Password: getEnv("DB_PASSWORD", "practice_password"),
				DBName:   getEnv("DB_NAME", "practice"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
			},
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "redis"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getEnvAsBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "rabbitmq"),
			Port:     getEnv("RABBITMQ_PORT", "5672"),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		S3: S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", "minio:9000"),
			AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
			UseSSL:    getEnvAsBool("S3_USE_SSL", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// InsecureSecret reports whether the session secret is still the built-in default.
func (c *Config) InsecureSecret() bool {
	return c.Session.SecretKey == DefaultSecretKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
