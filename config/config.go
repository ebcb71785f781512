package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	StorageType string
	Postgres    PostgresConfig
	HTTP        HTTPConfig
	Kafka       KafkaConfig
	Log         LogConfig
	Calendar    CalendarConfig
	Cache       CacheConfig
	SSE         SSEConfig
}

type PostgresConfig struct {
	User              string
	Password          string
	DB                string
	Host              string
	Port              int
	SSLMode           string
	MigrationsEnabled bool
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

type HTTPConfig struct {
	Port           string
	AllowedOrigins []string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether display events should also go to Kafka.
func (kc KafkaConfig) Enabled() bool {
	return len(kc.Brokers) > 0 && kc.Topic != ""
}

type LogConfig struct {
	Level  string
	Format string
}

type CalendarConfig struct {
	WindowDays int
}

type CacheConfig struct {
	ThreadSize int
}

type SSEConfig struct {
	Buffer int
}

func LoadConfig() Config {
	storageType := getEnv("STORAGE_TYPE", StorageMemory)

	cfg := Config{
		StorageType: storageType,
		HTTP: HTTPConfig{
			Port:           mustGetEnv("HTTP_PORT"),
			AllowedOrigins: getList("CORS_ALLOWED_ORIGINS"),
		},
		Kafka: KafkaConfig{
			Brokers: getList("KAFKA_BROKERS"),
			Topic:   os.Getenv("KAFKA_TOPIC"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Calendar: CalendarConfig{
			WindowDays: getInt("CALENDAR_WINDOW_DAYS", 365),
		},
		Cache: CacheConfig{
			ThreadSize: getInt("THREAD_CACHE_SIZE", 256),
		},
		SSE: SSEConfig{
			Buffer: getInt("SSE_BUFFER", 64),
		},
	}

	if storageType == StoragePostgres {
		cfg.Postgres = PostgresConfig{
			User:              mustGetEnv("POSTGRES_USER"),
			Password:          mustGetEnv("POSTGRES_PASSWORD"),
			DB:                mustGetEnv("POSTGRES_DB"),
			Host:              mustGetEnv("POSTGRES_HOST"),
			Port:              mustGetInt("POSTGRES_PORT"),
			SSLMode:           getEnv("POSTGRES_SSLMODE", "disable"),
			MigrationsEnabled: getBool("MIGRATIONS_ENABLED", true),
		}
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func mustGetInt(key string) int {
	val := mustGetEnv(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		panic("invalid bool for env var " + key + ": " + val)
	}
	return b
}

// getList splits a comma separated variable, dropping empty items.
func getList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
