package constants

const (
	// ConfigName is the base name of the config file (without extension).
	ConfigName = "config"

	// ConfigFormat is the config file format read by viper.
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. HEH_DATABASE_HOST overrides database.host.
	EnvPrefix = "HEH"

	// ServiceName is the default service name used in logs and telemetry.
	ServiceName = "health-ecosystem-hub"
)
