package redis

import (
	"time"

	"github.com/vaenkat/health-ecosystem-hub/config"
)

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	DB       int
	Username string
	Password string

	PoolSize     int
	MinIdleConns int

	DialTimeoutSeconds  int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

func DefaultConfig() Config {
	return Config{
		Addr:                "localhost:6379",
		PoolSize:            10,
		MinIdleConns:        2,
		DialTimeoutSeconds:  5,
		ReadTimeoutSeconds:  3,
		WriteTimeoutSeconds: 3,
	}
}

func (c Config) DialTimeout() time.Duration {
	return secondsOr(c.DialTimeoutSeconds, 5*time.Second)
}

func (c Config) ReadTimeout() time.Duration {
	return secondsOr(c.ReadTimeoutSeconds, 3*time.Second)
}

func (c Config) WriteTimeout() time.Duration {
	return secondsOr(c.WriteTimeoutSeconds, 3*time.Second)
}

func secondsOr(s int, def time.Duration) time.Duration {
	if s <= 0 {
		return def
	}
	return time.Duration(s) * time.Second
}

// FromCentralConfig maps the central redis section onto Config, filling
// unset pool and timeout knobs from the defaults.
func FromCentralConfig(c config.RedisConfig) Config {
	def := DefaultConfig()
	return Config{
		Addr:                c.Addr,
		DB:                  c.DB,
		Username:            c.Username,
		Password:            c.Password,
		PoolSize:            intOr(c.PoolSize, def.PoolSize),
		MinIdleConns:        intOr(c.MinIdleConns, def.MinIdleConns),
		DialTimeoutSeconds:  intOr(c.DialTimeoutSeconds, def.DialTimeoutSeconds),
		ReadTimeoutSeconds:  intOr(c.ReadTimeoutSeconds, def.ReadTimeoutSeconds),
		WriteTimeoutSeconds: intOr(c.WriteTimeoutSeconds, def.WriteTimeoutSeconds),
	}
}

func intOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
