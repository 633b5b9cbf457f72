package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/moviefinder/internal/config"
	"github.com/rshade/moviefinder/internal/tui"
)

// NewTUICmd creates the tui command, which opens the interactive screen.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [query]",
		Short: "Open the interactive search screen",
		Long: `Opens the interactive search screen. An optional query is searched
immediately. Logs are written to the log file, never to the terminal.`,
		Example: `  moviefinder tui
  moviefinder tui "the matrix"`,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveTUI(cmd, joinQuery(args))
		},
	}
}

// runInteractiveTUI validates the config and runs the program until exit.
func runInteractiveTUI(cmd *cobra.Command, query string) error {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), eng, tui.Options{
		InitialQuery: query,
		AltScreen:    cfg.UI.AltScreen,
	})
}
