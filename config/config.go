package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Event backends
const (
	EventsKafka    = "kafka"
	EventsRabbitMQ = "rabbitmq"
	EventsNone     = "none"
)

// DBConfig holds the individual Postgres settings used when database.url is not set
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Config is the resolved application configuration
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	DB          DBConfig

	RedisAddr string
	RedisTTL  time.Duration

	EventsBackend string
	KafkaBrokers  string
	KafkaTopic    string
	RabbitMQURL   string
	RabbitMQQueue string

	JWTSecret string

	LogLevel string
	LogDir   string

	ChromePath       string
	DriveCredentials string
	DriveFolder      string
}

// LoadEnv overloads variables from a .env file outside production.
// A missing file is not an error.
func LoadEnv(path string) {
	if os.Getenv("ENV") == "production" {
		return
	}
	if err := godotenv.Overload(path); err != nil {
		log.Printf("Warning: .env file not found at %s, using system environment variables", path)
		return
	}
	log.Printf("Successfully loaded environment variables from %s (overriding system variables)", path)
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("redis.ttl", "5m")
	v.SetDefault("events.backend", EventsNone)
	v.SetDefault("kafka.topic", "shipment-requests")
	v.SetDefault("rabbitmq.queue", "shipment-requests")
	v.SetDefault("log.level", "info")
}

// Init prepares v to read cfgFile (optional) and the environment.
// DATABASE_URL, KAFKA_BROKERS and friends map onto database.url, kafka.brokers.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			log.Printf("Warning: config file %s not found, using environment only", cfgFile)
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}
	log.Printf("Using config file: %s", v.ConfigFileUsed())
	return nil
}

// FromViper resolves a Config from v
func FromViper(v *viper.Viper) (*Config, error) {
	ttl, err := time.ParseDuration(v.GetString("redis.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid redis.ttl %q: %w", v.GetString("redis.ttl"), err)
	}

	cfg := &Config{
		Env:         v.GetString("env"),
		Port:        strings.TrimPrefix(v.GetString("port"), ":"),
		DatabaseURL: v.GetString("database.url"),
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		RedisAddr:        v.GetString("redis.addr"),
		RedisTTL:         ttl,
		EventsBackend:    strings.ToLower(v.GetString("events.backend")),
		KafkaBrokers:     v.GetString("kafka.brokers"),
		KafkaTopic:       v.GetString("kafka.topic"),
		RabbitMQURL:      v.GetString("rabbitmq.url"),
		RabbitMQQueue:    v.GetString("rabbitmq.queue"),
		JWTSecret:        v.GetString("jwt.secret"),
		LogLevel:         v.GetString("log.level"),
		LogDir:           v.GetString("log.dir"),
		ChromePath:       v.GetString("chrome.path"),
		DriveCredentials: v.GetString("drive.credentials"),
		DriveFolder:      v.GetString("drive.folder"),
	}

	switch cfg.EventsBackend {
	case EventsKafka:
		if cfg.KafkaBrokers == "" {
			return nil, fmt.Errorf("kafka.brokers must be set when events.backend is kafka")
		}
	case EventsRabbitMQ:
		if cfg.RabbitMQURL == "" {
			return nil, fmt.Errorf("rabbitmq.url must be set when events.backend is rabbitmq")
		}
	case EventsNone, "":
		cfg.EventsBackend = EventsNone
	default:
		return nil, fmt.Errorf("unknown events.backend %q", cfg.EventsBackend)
	}
	return cfg, nil
}

// ConnString returns the Postgres connection string
func (c *Config) ConnString() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode), nil
}
