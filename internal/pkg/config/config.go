package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Auth        AuthConfig
	Persistence PersistenceConfig
	Redis       RedisConfig
	Telemetry   TelemetryConfig
	Features    FeatureConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Business calendar used to resolve "today" for recent summaries
	TimeZone string `envconfig:"BUSINESS_TIMEZONE" default:"America/Sao_Paulo"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Orders-Revision,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// AuthConfig holds the single owner credential pair. The password is stored as a bcrypt hash.
type AuthConfig struct {
	OwnerUsername     string `envconfig:"OWNER_USERNAME" required:"true"`
	OwnerPasswordHash string `envconfig:"OWNER_PASSWORD_HASH" required:"true"`
}

type PersistenceConfig struct {
	Driver  string        `envconfig:"PERSISTENCE_DRIVER" default:"postgres"` // postgres | memory
	Timeout time.Duration `envconfig:"PERSISTENCE_TIMEOUT" default:"5s"`
}

type RedisConfig struct {
	URL           string `envconfig:"REDIS_URL" default:""`
	ChannelPrefix string `envconfig:"REDIS_CHANNEL_PREFIX" default:"bakery"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"bakery-orders"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
}

type FeatureConfig struct {
	// Enables destructive development endpoints (reset, seed)
	AllowReset bool `envconfig:"ALLOW_RESET" default:"false"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ServerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Persistence.Driver != DriverPostgres && cfg.Persistence.Driver != DriverMemory {
		return Config{}, fmt.Errorf("unsupported PERSISTENCE_DRIVER %q", cfg.Persistence.Driver)
	}
	if cfg.Persistence.Driver == DriverPostgres && (cfg.DB.User == "" || cfg.DB.DBName == "") {
		return Config{}, fmt.Errorf("DB_USER and DB_NAME are required for the postgres driver")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			TimeZone: "America/Sao_Paulo",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-jwt-signing",
			AccessTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Auth: AuthConfig{
			OwnerUsername:     "owner",
			OwnerPasswordHash: testOwnerPasswordHash(),
		},
		Persistence: PersistenceConfig{
			Driver:  DriverMemory,
			Timeout: 2 * time.Second,
		},
		Redis: RedisConfig{
			ChannelPrefix: "test",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "bakery-orders-test",
		},
		Features: FeatureConfig{
			AllowReset: true,
		},
	}
}

// TestOwnerPassword is the plaintext matching NewTestConfig's owner hash.
const TestOwnerPassword = "password123"

func testOwnerPasswordHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestOwnerPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
