package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, policies)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Orders OrdersConfig
	Events EventsConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type OrdersConfig struct {
	// free: any status may follow any other. strict: only forward lifecycle moves.
	TransitionPolicy string `envconfig:"ORDER_TRANSITION_POLICY" default:"free"`
}

type EventsConfig struct {
	AMQPURL       string        `envconfig:"AMQP_URL" default:""`
	Exchange      string        `envconfig:"AMQP_EXCHANGE" default:"furnicraft.orders"`
	RelayInterval time.Duration `envconfig:"EVENTS_RELAY_INTERVAL" default:"2s"`
	BatchSize     int           `envconfig:"EVENTS_BATCH_SIZE" default:"50"`
	MaxAttempts   int           `envconfig:"EVENTS_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings envconfig accepts but the process cannot run with.
func (c Config) Validate() error {
	if c.Orders.TransitionPolicy != "free" && c.Orders.TransitionPolicy != "strict" {
		return fmt.Errorf("invalid ORDER_TRANSITION_POLICY %q: want free or strict", c.Orders.TransitionPolicy)
	}
	if c.Events.RelayInterval <= 0 {
		return fmt.Errorf("invalid EVENTS_RELAY_INTERVAL %s: must be positive", c.Events.RelayInterval)
	}
	if c.Events.BatchSize < 1 {
		return fmt.Errorf("invalid EVENTS_BATCH_SIZE %d: must be at least 1", c.Events.BatchSize)
	}
	if c.Events.MaxAttempts < 1 {
		return fmt.Errorf("invalid EVENTS_MAX_ATTEMPTS %d: must be at least 1", c.Events.MaxAttempts)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889",
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-furnicraft",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Orders: OrdersConfig{
			TransitionPolicy: "free",
		},
		Events: EventsConfig{
			Exchange:      "furnicraft.orders",
			RelayInterval: 100 * time.Millisecond,
			BatchSize:     50,
			MaxAttempts:   5,
		},
	}
}
