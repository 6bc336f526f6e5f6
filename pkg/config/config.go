// Package config loads the ledger's runtime settings from the environment.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend names.
const (
	StorageDynamoDB = "dynamodb"
	StorageSQL      = "sql"

	EventsSQS   = "sqs"
	EventsAudit = "audit"
	EventsNone  = "none"

	LockLocal = "local"
	LockRedis = "redis"

	PhotosLocal = "local"
	PhotosS3    = "s3"
)

type Config struct {
	HTTPPort string

	StorageBackend string
	DynamoDB       DynamoDBConfig
	Database       DatabaseConfig

	EventsBackend string
	SQSQueueURL   string

	LockBackend string
	LockWait    time.Duration
	LockTTL     time.Duration
	Redis       RedisConfig

	PhotoBackend string
	UploadsDir   string
	S3           S3Config

	// Timezone is the IANA zone calendar-date filters are evaluated in.
	Timezone string

	LogLevel  string
	LogFormat string
}

type DynamoDBConfig struct {
	ClientsTable  string
	DebtsTable    string
	PaymentsTable string
	AuditTable    string
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

var defaults = map[string]any{
	"http_port":                    "8080",
	"storage_backend":              StorageSQL,
	"dynamodb_clients_table_name":  "ledger-clients",
	"dynamodb_debts_table_name":    "ledger-debts",
	"dynamodb_payments_table_name": "ledger-payments",
	"dynamodb_audit_table_name":    "ledger-audit",
	"database_driver":              "sqlite",
	"database_dsn":                 "file:ledger.db?_busy_timeout=5000&_foreign_keys=on",
	"database_max_open_conns":      10,
	"database_conn_max_lifetime":   "30m",
	"events_backend":               EventsAudit,
	"sqs_queue_url":                "",
	"lock_backend":                 LockLocal,
	"lock_wait":                    "2s",
	"lock_ttl":                     "10s",
	"redis_addr":                   "localhost:6379",
	"redis_password":               "",
	"redis_db":                     0,
	"photo_backend":                PhotosLocal,
	"uploads_dir":                  "uploads",
	"s3_bucket":                    "",
	"s3_region":                    "us-east-1",
	"s3_endpoint":                  "",
	"s3_access_key_id":             "",
	"s3_secret_access_key":         "",
	"ledger_timezone":              "UTC",
	"log_level":                    "info",
	"log_format":                   "json",
}

// Load reads .env when present, then the process environment, falling back to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTPPort:       v.GetString("http_port"),
		StorageBackend: v.GetString("storage_backend"),
		DynamoDB: DynamoDBConfig{
			ClientsTable:  v.GetString("dynamodb_clients_table_name"),
			DebtsTable:    v.GetString("dynamodb_debts_table_name"),
			PaymentsTable: v.GetString("dynamodb_payments_table_name"),
			AuditTable:    v.GetString("dynamodb_audit_table_name"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("database_driver"),
			DSN:             v.GetString("database_dsn"),
			MaxOpenConns:    v.GetInt("database_max_open_conns"),
			ConnMaxLifetime: v.GetDuration("database_conn_max_lifetime"),
		},
		EventsBackend: v.GetString("events_backend"),
		SQSQueueURL:   v.GetString("sqs_queue_url"),
		LockBackend:   v.GetString("lock_backend"),
		LockWait:      v.GetDuration("lock_wait"),
		LockTTL:       v.GetDuration("lock_ttl"),
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		PhotoBackend: v.GetString("photo_backend"),
		UploadsDir:   v.GetString("uploads_dir"),
		S3: S3Config{
			Bucket:          v.GetString("s3_bucket"),
			Region:          v.GetString("s3_region"),
			Endpoint:        v.GetString("s3_endpoint"),
			AccessKeyID:     v.GetString("s3_access_key_id"),
			SecretAccessKey: v.GetString("s3_secret_access_key"),
		},
		Timezone:  v.GetString("ledger_timezone"),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageSQL:
		if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
			return fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", c.Database.Driver)
		}
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the sql storage backend")
		}
	case StorageDynamoDB:
		d := c.DynamoDB
		if d.ClientsTable == "" || d.DebtsTable == "" || d.PaymentsTable == "" || d.AuditTable == "" {
			return fmt.Errorf("one or more DynamoDB table name environment variables are not set")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be dynamodb or sql, got %q", c.StorageBackend)
	}

	switch c.EventsBackend {
	case EventsSQS:
		if c.SQSQueueURL == "" {
			return fmt.Errorf("SQS_QUEUE_URL is required for the sqs events backend")
		}
	case EventsAudit, EventsNone:
	default:
		return fmt.Errorf("EVENTS_BACKEND must be sqs, audit or none, got %q", c.EventsBackend)
	}

	switch c.LockBackend {
	case LockLocal, LockRedis:
	default:
		return fmt.Errorf("LOCK_BACKEND must be local or redis, got %q", c.LockBackend)
	}
	if c.LockWait <= 0 {
		return fmt.Errorf("LOCK_WAIT must be positive")
	}

	switch c.PhotoBackend {
	case PhotosLocal:
	case PhotosS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 photo backend")
		}
	default:
		return fmt.Errorf("PHOTO_BACKEND must be local or s3, got %q", c.PhotoBackend)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
