package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	RecordStore RecordStore `validate:"required"`
	SMTP        SMTP
	Chat        Chat

	Kafka Kafka

	Tasks Tasks `validate:"required"`
	Cache Cache

	BulkUpdateConcurrency int `validate:"gte=1"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Token и TableID не обязательны для старта: без них операции с хранилищем
// возвращают ErrStoreNotConfigured.
type RecordStore struct {
	BaseURL string `validate:"required,url"`
	Token   string
	TableID string

	Timeout     time.Duration `validate:"gte=0"`
	SettleDelay time.Duration `validate:"gte=0"`
}

func (c RecordStore) Configured() bool {
	return c.Token != "" && c.TableID != ""
}

type SMTP struct {
	Host       string `validate:"omitempty,hostname|ip"`
	Port       int    `validate:"gt=0,lte=65535"`
	Username   string
	Password   string
	From       string `validate:"omitempty,email"`
	AdminEmail string `validate:"omitempty,email"`

	Timeout time.Duration `validate:"gte=0"`
}

func (c SMTP) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Sender returns the envelope sender, the login is used when no explicit address is set.
func (c SMTP) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

type Chat struct {
	AccountSID  string
	AuthToken   string
	FromNumber  string
	AdminNumber string
	ContentSID  string
}

func (c Chat) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != "" && c.AdminNumber != ""
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Tasks struct {
	Workers   int           `validate:"gte=1"`
	QueueSize int           `validate:"gte=0"`
	Timeout   time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=0"`
	TTL      time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8000"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		RecordStore: RecordStore{
			BaseURL: env("RECORD_STORE_URL", "https://app.nocodb.com/api/v2"),
			Token:   env("RECORD_STORE_TOKEN", ""),
			TableID: env("RECORD_STORE_TABLE_ID", ""),

			Timeout:     envDuration("RECORD_STORE_TIMEOUT", 10*time.Second),
			SettleDelay: envDuration("RECORD_STORE_SETTLE_DELAY", time.Second),
		},

		SMTP: SMTP{
			Host:       env("SMTP_HOST", ""),
			Port:       envInt("SMTP_PORT", 587),
			Username:   env("SMTP_USERNAME", ""),
			Password:   env("SMTP_PASSWORD", ""),
			From:       env("SMTP_FROM", ""),
			AdminEmail: env("ADMIN_EMAIL", ""),

			Timeout: envDuration("SMTP_TIMEOUT", 15*time.Second),
		},

		Chat: Chat{
			AccountSID:  env("TWILIO_ACCOUNT_SID", ""),
			AuthToken:   env("TWILIO_AUTH_TOKEN", ""),
			FromNumber:  env("TWILIO_FROM_NUMBER", ""),
			AdminNumber: env("ADMIN_WHATSAPP_NUMBER", ""),
			ContentSID:  env("TWILIO_CONTENT_SID", ""),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", "order-intake"),
			Topic:   env("KAFKA_TOPIC", "order-requests"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Tasks: Tasks{
			Workers:   envInt("TASK_WORKERS", 4),
			QueueSize: envInt("TASK_QUEUE_SIZE", 256),
			Timeout:   envDuration("TASK_TIMEOUT", time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("ROW_ID_CACHE_CAPACITY", 1024),
			TTL:      envDuration("ROW_ID_CACHE_TTL", time.Hour),
		},

		BulkUpdateConcurrency: envInt("BULK_UPDATE_CONCURRENCY", 1),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
