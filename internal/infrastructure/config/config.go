// Package config loads the service configuration from the environment and an optional
// config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fieldops/internal/domain/identifier"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	FileStoreMinIO  = "minio"
	FileStoreS3     = "s3"
	FileStoreMemory = "memory"
)

type Config struct {
	HTTPPort       string
	StorageDriver  string
	IdentifierMode identifier.Mode
	CORSOrigins    []string
	DynamoDB       DynamoDBConfig
	JWT            JWTConfig
	Redis          RedisConfig
	FileStore      FileStoreConfig
	Notifications  NotificationConfig
	Admin          AdminConfig
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Tables          TableConfig
}

type TableConfig struct {
	Projects          string
	ServiceRequests   string
	Renditions        string
	Notifications     string
	Users             string
	ExpenseCategories string
	Counters          string
	Identifiers       string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// RedisConfig is optional: an empty Addr keeps the event queue and token blacklist in process.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	QueueKey    string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type FileStoreConfig struct {
	Driver    string
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
	PublicURL string
}

type NotificationConfig struct {
	MaxAttempts int
	BaseBackoff time.Duration
	QueueSize   int
}

type AdminConfig struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	v.SetDefault("IDENTIFIER_MODE", string(identifier.ModePartition))
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	for _, key := range []string{
		"PROJECTS_TABLE", "SERVICE_REQUESTS_TABLE", "RENDITIONS_TABLE", "NOTIFICATIONS_TABLE",
		"USERS_TABLE", "EXPENSE_CATEGORIES_TABLE", "COUNTERS_TABLE", "IDENTIFIERS_TABLE",
	} {
		v.SetDefault(key, "")
	}

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", 24*time.Hour)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_QUEUE_KEY", "fieldops:events")
	v.SetDefault("REDIS_DIAL_TIMEOUT", 10*time.Second)
	v.SetDefault("REDIS_READ_TIMEOUT", 10*time.Second)

	v.SetDefault("FILESTORE_DRIVER", FileStoreMemory)
	v.SetDefault("FILESTORE_ENDPOINT", "")
	v.SetDefault("FILESTORE_REGION", "us-east-1")
	v.SetDefault("FILESTORE_BUCKET", "fieldops")
	v.SetDefault("FILESTORE_ACCESS_KEY", "")
	v.SetDefault("FILESTORE_SECRET_KEY", "")
	v.SetDefault("FILESTORE_USE_SSL", false)
	v.SetDefault("FILESTORE_PATH_STYLE", true)
	v.SetDefault("FILESTORE_PUBLIC_URL", "")

	v.SetDefault("NOTIFICATION_MAX_ATTEMPTS", 5)
	v.SetDefault("NOTIFICATION_BASE_BACKOFF", 200*time.Millisecond)
	v.SetDefault("NOTIFICATION_QUEUE_SIZE", 1024)

	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_FIRST_NAME", "Admin")
	v.SetDefault("ADMIN_LAST_NAME", "Sistema")
}

// Load reads config.(toml|yaml|json) from ./config or the working directory when present, then
// lets environment variables override every key.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(getenv(v, "CONFIG_NAME", "config"))
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	mode, err := identifier.ParseMode(v.GetString("IDENTIFIER_MODE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort:       v.GetString("HTTP_PORT"),
		StorageDriver:  strings.ToLower(v.GetString("STORAGE_DRIVER")),
		IdentifierMode: mode,
		CORSOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Tables: TableConfig{
				Projects:          v.GetString("PROJECTS_TABLE"),
				ServiceRequests:   v.GetString("SERVICE_REQUESTS_TABLE"),
				Renditions:        v.GetString("RENDITIONS_TABLE"),
				Notifications:     v.GetString("NOTIFICATIONS_TABLE"),
				Users:             v.GetString("USERS_TABLE"),
				ExpenseCategories: v.GetString("EXPENSE_CATEGORIES_TABLE"),
				Counters:          v.GetString("COUNTERS_TABLE"),
				Identifiers:       v.GetString("IDENTIFIERS_TABLE"),
			},
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			TTL:    v.GetDuration("JWT_TTL"),
		},
		Redis: RedisConfig{
			Addr:        v.GetString("REDIS_ADDR"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			QueueKey:    v.GetString("REDIS_QUEUE_KEY"),
			DialTimeout: v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout: v.GetDuration("REDIS_READ_TIMEOUT"),
		},
		FileStore: FileStoreConfig{
			Driver:    strings.ToLower(v.GetString("FILESTORE_DRIVER")),
			Endpoint:  v.GetString("FILESTORE_ENDPOINT"),
			Region:    v.GetString("FILESTORE_REGION"),
			Bucket:    v.GetString("FILESTORE_BUCKET"),
			AccessKey: v.GetString("FILESTORE_ACCESS_KEY"),
			SecretKey: v.GetString("FILESTORE_SECRET_KEY"),
			UseSSL:    v.GetBool("FILESTORE_USE_SSL"),
			PathStyle: v.GetBool("FILESTORE_PATH_STYLE"),
			PublicURL: v.GetString("FILESTORE_PUBLIC_URL"),
		},
		Notifications: NotificationConfig{
			MaxAttempts: v.GetInt("NOTIFICATION_MAX_ATTEMPTS"),
			BaseBackoff: v.GetDuration("NOTIFICATION_BASE_BACKOFF"),
			QueueSize:   v.GetInt("NOTIFICATION_QUEUE_SIZE"),
		},
		Admin: AdminConfig{
			Email:     v.GetString("ADMIN_EMAIL"),
			Password:  v.GetString("ADMIN_PASSWORD"),
			FirstName: v.GetString("ADMIN_FIRST_NAME"),
			LastName:  v.GetString("ADMIN_LAST_NAME"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"storage":         cfg.StorageDriver,
		"filestore":       cfg.FileStore.Driver,
		"identifier_mode": cfg.IdentifierMode,
		"redis":           cfg.Redis.Addr != "",
	}).Info("config parsed")
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	switch c.FileStore.Driver {
	case FileStoreMinIO, FileStoreS3, FileStoreMemory:
	default:
		return fmt.Errorf("unknown FILESTORE_DRIVER %q", c.FileStore.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func getenv(v *viper.Viper, key, def string) string {
	if err := v.BindEnv(key); err == nil {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
