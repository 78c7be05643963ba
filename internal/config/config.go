package config

import "time"

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Contact ContactConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `env:"SERVER_ADDR"             env-default:":8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	FrontendURL     string        `env:"FRONTEND_URL"            env-default:"http://localhost:5173"`
}

// StoreConfig selects and configures the submission store.
type StoreConfig struct {
	Driver          string        `env:"STORE_DRIVER"               env-default:"memory"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	MaxConns        int32         `env:"DATABASE_MAX_CONNS"         env-default:"10"`
	MinConns        int32         `env:"DATABASE_MIN_CONNS"         env-default:"1"`
	MaxConnLifetime time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" env-default:"1h"`
	SQLitePath      string        `env:"SQLITE_PATH"                env-default:"./data/contacts.db"`
}

// ContactConfig bounds the contact intake endpoint.
type ContactConfig struct {
	SubmitTimeout time.Duration `env:"CONTACT_SUBMIT_TIMEOUT" env-default:"5s"`
	MaxBodyBytes  int64         `env:"CONTACT_MAX_BODY_BYTES" env-default:"65536"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}
