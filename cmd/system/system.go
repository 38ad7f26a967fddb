// Package system holds the maintenance subcommands: database bootstrap,
// schema and policy migration, and CLI doc generation.
package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vaenkat/health-ecosystem-hub/config"
)

func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Maintenance and tooling commands",
	}

	cmd.AddCommand(
		NewMigrateCommand(),
		NewGenDocsCommand(),
		NewInitCommand(),
	)
	return cmd
}

// loadConfig resolves the root --config flag and reads the config file next
// to it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}
