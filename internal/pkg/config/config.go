package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB/Redis
//   connection, session secret)
// - default: Values common across all environments (timeouts, VAT rate,
//   cart TTL)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Cart    CartConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type SessionConfig struct {
	Secret       string        `envconfig:"SESSION_SECRET" required:"true"`
	CookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"cart_session"`
	CookieDomain string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite     string        `envconfig:"SESSION_SAME_SITE" default:"Lax"`
	TokenTTL     time.Duration `envconfig:"SESSION_TOKEN_TTL" default:"72h"`
}

type CartConfig struct {
	// VATRate is the tax rate applied to order cart subtotals (0.16 = 16%).
	VATRate float64       `envconfig:"VAT_RATE" default:"0.16"`
	TTL     time.Duration `envconfig:"CART_TTL" default:"72h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Africa/Nairobi"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "hotelcart",
			Password: "hotelcart",
			DBName:   "hotelcart_test",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Session: SessionConfig{
			Secret:     "test-session-secret",
			CookieName: "cart_session",
			SameSite:   "Lax",
			TokenTTL:   time.Hour,
		},
		Cart: CartConfig{
			VATRate: 0.16,
			TTL:     time.Hour,
		},
		Log: LogConfig{
			Level:      "debug",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
