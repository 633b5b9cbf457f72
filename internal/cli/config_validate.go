package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/moviefinder/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Validates the effective configuration: the global file, any project
overlay, .env and environment variables combined.

This includes:
- OMDb API key presence
- Endpoint URL syntax
- Request timeout
- Output format and failure policy values`,
		Example: `  # Validate current configuration
  moviefinder config validate

  # Validate and show detailed information
  moviefinder config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  OMDb endpoint: %s\n", cfg.OMDb.Endpoint)
	cmd.Printf("  Request timeout: %s\n", cfg.OMDb.Timeout)
	cmd.Printf("  Full plot: %t\n", cfg.OMDb.FullPlot)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  On failure: %s\n", cfg.UI.OnFailure)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	} else {
		cmd.Printf("  Log file: %s (default)\n", config.DefaultLogPath())
	}
}
