package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/vaenkat/health-ecosystem-hub/cmd/http"
	systemcmd "github.com/vaenkat/health-ecosystem-hub/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "healthhub",
	Short: "Health Ecosystem Hub: a shared care portal for hospitals, pharmacies and patients.",
	Long: `Health Ecosystem Hub is a healthcare portal backend connecting hospital staff,
pharmacy staff and patients through a single API: patient records, prescriptions,
appointments, lab reports, pharmacy inventory and hospital supply orders.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
