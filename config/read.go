package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/vaenkat/health-ecosystem-hub/pkg/constants"
)

var GlobalConf *Config

// ReadConfig loads the config file from configPath, applies environment
// overrides, and validates the result. Env vars use the HEH prefix with
// underscores, e.g. HEH_DATABASE_HOST overrides database.host.
func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(constants.ConfigName)
	viper.SetConfigType(constants.ConfigFormat)
	viper.AddConfigPath(configPath)

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing file is fine in container setups where everything comes
		// from the environment.
		if !errors.As(err, &notFound) && os.Getenv(constants.EnvPrefix+"_DATABASE_HOST") == "" {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func MustReadConfig(path string) *Config {
	cfg, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	GlobalConf = cfg
	return cfg
}
