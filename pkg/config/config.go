package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application settings (read with Viper from env vars and an optional file).
type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Redis   RedisConfig
	Captcha CaptchaConfig
	Mail    MailConfig
	River   RiverConfig
	Kiosk   KioskConfig
	Rollbar RollbarConfig
}

// AppConfig holds the general application settings.
type AppConfig struct {
	Env           string // development, staging, production
	Name          string
	Version       string
	Timezone      string // IANA name used to interpret form dates
	DefaultLocale string // nl or en
}

// Location loads Timezone, falling back to UTC when it is unknown.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type LogConfig struct {
	Level string
}

// DBConfig holds the PostgreSQL settings.
// When DatabaseURL is set it is used as the complete connection string.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString returns DatabaseURL when set and DSN() otherwise.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string, URL-encoding the credentials.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig holds the token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig holds the HTTP server settings.
type HTTPConfig struct {
	Host    string
	Port    int
	BaseURL string // public URL, used for absolute links in the Atom feed
}

// Addr returns host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CaptchaConfig: TTL of an issued challenge.
type CaptchaConfig struct {
	TTL time.Duration
}

// MailConfig configures the activity-created notification. An empty SendGridAPIKey logs instead of sending.
type MailConfig struct {
	SendGridAPIKey    string
	From              string
	ActivityCreatedTo string
}

type RiverConfig struct {
	MaxWorkers           int
	PackageSweepInterval time.Duration
}

type KioskConfig struct {
	CacheTTL time.Duration
}

// RollbarConfig: reporting is disabled when Token is empty.
type RollbarConfig struct {
	Token string
}

// Load reads the configuration from env vars (and optionally from a file).
// Env vars take precedence. Expected names: APP_ENV, DB_HOST, JWT_SECRET, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:           getString(v, "APP_ENV", "development"),
			Name:          getString(v, "APP_NAME", "gewisweb-api"),
			Version:       getString(v, "APP_VERSION", "dev"),
			Timezone:      getString(v, "APP_TIMEZONE", "Europe/Amsterdam"),
			DefaultLocale: getString(v, "APP_DEFAULT_LOCALE", "nl"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gewisweb"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "gewisweb"),
		},
		HTTP: HTTPConfig{
			Host:    getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:    getInt(v, "HTTP_PORT", 8080),
			BaseURL: getString(v, "HTTP_BASE_URL", "https://gewis.nl"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Captcha: CaptchaConfig{
			TTL: getDuration(v, "CAPTCHA_TTL", 10*time.Minute),
		},
		Mail: MailConfig{
			SendGridAPIKey:    getString(v, "SENDGRID_API_KEY", ""),
			From:              getString(v, "MAIL_FROM", "web@gewis.nl"),
			ActivityCreatedTo: getString(v, "MAIL_ACTIVITY_CREATED_TO", "activiteiten@gewis.nl"),
		},
		River: RiverConfig{
			MaxWorkers:           getInt(v, "RIVER_MAX_WORKERS", 5),
			PackageSweepInterval: getDuration(v, "PACKAGE_SWEEP_INTERVAL", time.Hour),
		},
		Kiosk: KioskConfig{
			CacheTTL: getDuration(v, "KIOSK_CACHE_TTL", 5*time.Minute),
		},
		Rollbar: RollbarConfig{
			Token: getString(v, "ROLLBAR_TOKEN", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration accepts Go durations ("90s", "1h") and falls back to def on malformed input.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
