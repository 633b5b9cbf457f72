package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/moviefinder/internal/config"
	"github.com/rshade/moviefinder/internal/logging"
	"github.com/rshade/moviefinder/internal/tui"
)

// Command annotations read by the root PersistentPreRunE.
const (
	// annotationSkipValidation marks commands that must run with an
	// incomplete configuration (config, version).
	annotationSkipValidation = "moviefinder/skip-validation"
	// annotationInteractive marks commands that take over the terminal and
	// therefore always log to a file.
	annotationInteractive = "moviefinder/interactive"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	debug      bool
	configPath string
	endpoint   string
}

// NewRootCmd creates the root Cobra command for the moviefinder CLI.
// It wires up configuration, logging and the search, detail, tui, config
// and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup
// for testability.
func NewRootCmdWithEnv(ver string, lookupEnv config.LookupEnvFunc) *cobra.Command {
	var (
		flags     rootFlags
		logResult *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:     "moviefinder [query]",
		Short:   "Search the OMDb movie database from your terminal",
		Long:    "MovieFinder: search movies and series on OMDb and browse their details.",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.ArbitraryArgs,
		Annotations: map[string]string{
			annotationSkipValidation: "true",
			annotationInteractive:    "true",
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(cmd.Context(), config.ResolveOptions{
				ConfigPath: flags.configPath,
				LookupEnv:  lookupEnv,
			})
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if flags.endpoint != "" {
				cfg.OMDb.Endpoint = flags.endpoint
			}

			if !hasAnnotation(cmd, annotationSkipValidation) {
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg, flags.debug, hasAnnotation(cmd, annotationInteractive))
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive {
				return cmd.Help()
			}
			return runInteractiveTUI(cmd, joinQuery(args))
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to the config file (default ~/.moviefinder/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.endpoint, "endpoint", "", "OMDb endpoint URL (overrides config and env)")

	cmd.AddCommand(
		NewSearchCmd(), NewDetailCmd(), NewTUICmd(),
		newConfigCmd(), NewVersionCmd(ver),
	)

	return cmd
}

const rootCmdExample = `  # Open the interactive search screen
  moviefinder

  # Open it with a search already running
  moviefinder tui "star wars"

  # Search from scripts
  moviefinder search batman --output json

  # Show details for one or more IMDb ids
  moviefinder detail tt0372784 tt0076759

  # Store your OMDb API key
  moviefinder config set omdb.api_key <key>`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationSkipValidation: "true"},
	}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}

// hasAnnotation reports whether cmd or one of its parents carries key. The
// root's own annotations apply only when the root itself runs.
func hasAnnotation(cmd *cobra.Command, key string) bool {
	root := cmd.Root()
	for c := cmd; c != nil; c = c.Parent() {
		if c == root && cmd != root {
			return false
		}
		if c.Annotations[key] == "true" {
			return true
		}
	}
	return false
}
