package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig is the single configuration object for the service.
// It is built once in main and passed by reference to every component
// that needs a piece of it.
type AppConfig struct {
	Host     string
	Port     string
	LogLevel string

	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	MinIO    MinIOConfig
	Steam    SteamConfig
	CMS      CMSConfig
	Mailer   MailerConfig
	Matches  MatchesConfig
	JWT      JWTConfig
}

// PostgresConfig holds database connection settings.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig holds cache connection settings.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	ContentTTL   time.Duration
	SteamTTL     time.Duration
}

// KafkaConfig holds event broker settings.
type KafkaConfig struct {
	Brokers         []string
	UserTopic       string
	ReviewTopic     string
}

// MinIOConfig holds avatar object-storage settings.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SteamConfig holds Steam Web API settings.
type SteamConfig struct {
	APIKey  string
	BaseURL string
}

// CMSConfig holds headless CMS read API settings.
type CMSConfig struct {
	BaseURL string
	Token   string
}

// MailerConfig holds transactional email API settings.
type MailerConfig struct {
	BaseURL     string
	APIKey      string
	FromAddress string
	ResetURL    string
}

// MatchesConfig holds the match/team microservice address.
type MatchesConfig struct {
	BaseURL string
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SecretKey   string
	Exp         time.Duration
	RecoveryTTL time.Duration
}

// Load reads configuration from the given env file (if present) and the
// process environment. Real environment variables take precedence.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load(path)

	cfg := &AppConfig{
		Host:     getEnv("APP_HOST", "localhost"),
		Port:     getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),
	}

	cfg.Postgres = PostgresConfig{
		Host:         getEnv("POSTGRES_HOST", "localhost"),
		Port:         getEnvInt("POSTGRES_PORT", 5432),
		User:         getEnv("POSTGRES_USER", "user"),
		Password:     getEnv("POSTGRES_PASSWORD", "password"),
		DB:           getEnv("POSTGRES_DB", "ggtips"),
		MaxOpenConns: getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16),
		MaxIdleConns: getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8),
	}

	cfg.Redis = RedisConfig{
		Host:         getEnv("REDIS_HOST", "localhost"),
		Port:         getEnvInt("REDIS_PORT", 6379),
		DB:           getEnvInt("REDIS_DB", 0),
		Password:     getEnv("REDIS_PASSWORD", ""),
		PoolSize:     getEnvInt("REDIS_POOL_SIZE", 10),
		MinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
		ContentTTL:   getEnvDuration("REDIS_CONTENT_TTL_SECOND", 300),
		SteamTTL:     getEnvDuration("REDIS_STEAM_TTL_SECOND", 600),
	}

	cfg.Kafka = KafkaConfig{
		Brokers:     []string{getEnv("KAFKA_BROKER", "localhost:9092")},
		UserTopic:   getEnv("KAFKA_USER_TOPIC", "user.registered"),
		ReviewTopic: getEnv("KAFKA_REVIEW_TOPIC", "review.created"),
	}

	cfg.MinIO = MinIOConfig{
		Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		SecretKey: getEnv("MINIO_SECRET_KEY", ""),
		Bucket:    getEnv("MINIO_BUCKET", "avatars"),
		UseSSL:    getEnvBool("MINIO_USE_SSL", false),
	}

	cfg.Steam = SteamConfig{
		APIKey:  getEnv("STEAM_API_KEY", ""),
		BaseURL: getEnv("STEAM_API_URL", "https://api.steampowered.com"),
	}

	cfg.CMS = CMSConfig{
		BaseURL: getEnv("CMS_BASE_URL", "http://localhost:1337"),
		Token:   getEnv("CMS_TOKEN", ""),
	}

	cfg.Mailer = MailerConfig{
		BaseURL:     getEnv("MAILER_BASE_URL", "https://api.mailersend.test"),
		APIKey:      getEnv("MAILER_API_KEY", ""),
		FromAddress: getEnv("MAILER_FROM", "noreply@gg-tips.local"),
		ResetURL:    getEnv("MAILER_RESET_URL", "https://gg-tips.local/reset-password"),
	}

	cfg.Matches = MatchesConfig{
		BaseURL: getEnv("MATCHES_BASE_URL", "http://localhost:8081"),
	}

	cfg.JWT = JWTConfig{
		SecretKey:   getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		Exp:         getEnvDuration("JWT_EXP_SECOND", 86400),
		RecoveryTTL: getEnvDuration("RECOVERY_TOKEN_TTL_SECOND", 3600),
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, defSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defSeconds)) * time.Second
}
