package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	NotifierTransportHTTP  = "http"
	NotifierTransportKafka = "kafka"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"storefront"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	NotifierTransport  string        `env:"NOTIFIER_TRANSPORT" envDefault:"http"`
	MailGatewayURL     string        `env:"MAIL_GATEWAY_URL"`
	MailGatewayTimeout time.Duration `env:"MAIL_GATEWAY_TIMEOUT" envDefault:"5s"`
	KafkaHost          []string      `env:"KAFKA_HOST" envSeparator:","`
	KafkaTrackingTopic string        `env:"KAFKA_TRACKING_TOPIC" envDefault:"storefront.tracking-notifications"`

	// RedisAddr empty disables the resend lock.
	RedisAddr     string        `env:"REDIS_ADDR"`
	ResendLockTTL time.Duration `env:"RESEND_LOCK_TTL" envDefault:"2m"`

	// CarriersFile empty selects the built-in carrier catalog.
	CarriersFile string `env:"CARRIERS_FILE"`

	UnnotifiedReportSchedule string `env:"UNNOTIFIED_REPORT_SCHEDULE" envDefault:"0 */5 * * * *"`
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(dotenvPath string) (Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading %s: %w", dotenvPath, err)
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("error while parsing config: %w", err)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	var problems []error
	switch c.NotifierTransport {
	case NotifierTransportHTTP:
		if c.MailGatewayURL == "" {
			problems = append(problems, errors.New("MAIL_GATEWAY_URL is required for the http notifier"))
		}
	case NotifierTransportKafka:
		if len(c.KafkaHost) == 0 {
			problems = append(problems, errors.New("KAFKA_HOST is required for the kafka notifier"))
		}
	default:
		problems = append(problems, fmt.Errorf("NOTIFIER_TRANSPORT must be %q or %q, got %q",
			NotifierTransportHTTP, NotifierTransportKafka, c.NotifierTransport))
	}
	if c.DBUser == "" {
		problems = append(problems, errors.New("DB_USER is required"))
	}
	return errors.Join(problems...)
}

// DSN is the key=value connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		quote(c.DBHost), quote(c.DBPort), quote(c.DBUser), quote(c.DBPassword), quote(c.DBName), quote(c.DBSslMode))
}

// quote makes empty values and values with spaces or quotes safe in a key=value DSN.
func quote(value string) string {
	return "'" + dsnEscaper.Replace(value) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
