package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/moviefinder/internal/config"
)

// configKeysHelp lists the supported keys for command help text.
func configKeysHelp() string {
	return "Supported keys:\n  " + strings.Join(config.Keys(), "\n  ")
}

// NewConfigSetCmd creates the config set command. Values are written to the
// config file only; environment and project overrides are not persisted.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Sets a value in the global configuration file.\n\n" + configKeysHelp(),
		Example: `  moviefinder config set omdb.api_key abc123
  moviefinder config set output.default_format json
  moviefinder config set ui.on_failure clear`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			cfg, err := config.Load(config.GetGlobalConfig().ConfigPath())
			if err != nil {
				return err
			}
			if err := cfg.Set(key, value); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			shown := value
			for _, kv := range cfg.List(false) {
				if kv.Key == key {
					shown = kv.Value
				}
			}
			cmd.Printf("Set %s = %s\n", key, shown)
			return nil
		},
	}
}

// NewConfigGetCmd creates the config get command. It reports the effective
// value after overlays and environment variables are applied.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Get a configuration value",
		Long:    "Prints the effective value of a configuration key.\n\n" + configKeysHelp(),
		Example: `  moviefinder config get omdb.endpoint`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	var (
		reveal bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long:  "Lists every effective configuration value. The API key is masked unless --reveal is given.",
		Example: `  moviefinder config list
  moviefinder config list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := config.GetGlobalConfig().List(reveal)

			if asJSON {
				out := make(map[string]string, len(values))
				for _, kv := range values {
					out[kv.Key] = kv.Value
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, kv := range values {
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", kv.Key, kv.Value); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "show secret values")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print values as a JSON object")

	return cmd
}
