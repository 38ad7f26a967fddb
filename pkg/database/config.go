package database

import (
	"time"

	"github.com/vaenkat/health-ecosystem-hub/config"
)

// Config holds connection, pool, and migration settings for one database.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int

	// AutoMigrate applies the schema on startup. SafeMode keeps migration
	// from dropping columns or indexes.
	AutoMigrate bool
	SafeMode    bool

	// EnableLogging turns on the ent debug client (logs every query).
	EnableLogging bool
}

// DSN returns a PostgreSQL connection string.
func (c Config) DSN() string {
	return buildDSN(c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func (c Config) ConnMaxLifetime() time.Duration {
	if c.ConnMaxLifetimeMin <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.ConnMaxLifetimeMin) * time.Minute
}

func DefaultConfig() Config {
	return Config{
		Host:               "localhost",
		Port:               5432,
		SSLMode:            "disable",
		MaxOpenConns:       25,
		MaxIdleConns:       5,
		ConnMaxLifetimeMin: 5,
		SafeMode:           true,
	}
}

// FromCentralConfig maps a central database section onto Config.
func FromCentralConfig(c config.DatabaseConfig) Config {
	return Config{
		Host:               c.Host,
		Port:               c.Port,
		User:               c.User,
		Password:           c.Password,
		DBName:             c.DBName,
		SSLMode:            c.SSLMode,
		MaxOpenConns:       c.Pool.MaxOpenConns,
		MaxIdleConns:       c.Pool.MaxIdleConns,
		ConnMaxLifetimeMin: c.Pool.ConnMaxLifetimeMin,
		AutoMigrate:        c.Migrations.AutoMigrate,
		SafeMode:           c.Migrations.SafeMode,
		EnableLogging:      c.Logging.Enabled,
	}
}

// NewDSN builds a DSN straight from a central database section.
func NewDSN(c config.DatabaseConfig) string {
	return FromCentralConfig(c).DSN()
}
