package cli

import (
	"fmt"
	"strings"

	"github.com/rshade/moviefinder/internal/config"
	"github.com/rshade/moviefinder/internal/engine"
	"github.com/rshade/moviefinder/internal/omdb"
	"github.com/rshade/moviefinder/pkg/version"
)

// newEngine builds an engine backed by the OMDb client described by cfg.
func newEngine(cfg *config.Config) (*engine.Engine, error) {
	policy, err := engine.ParseFailurePolicy(cfg.UI.OnFailure)
	if err != nil {
		return nil, fmt.Errorf("invalid ui.on_failure: %w", err)
	}

	client := omdb.NewClient(cfg.OMDb.APIKey,
		omdb.WithEndpoint(cfg.OMDb.Endpoint),
		omdb.WithTimeout(cfg.OMDb.Timeout),
		omdb.WithFullPlot(cfg.OMDb.FullPlot),
		omdb.WithUserAgent(version.UserAgent()),
	)
	return engine.New(client, policy), nil
}

// resolveOutputFormat returns the --output flag when set, otherwise the
// configured default.
func resolveOutputFormat(flag string, cfg *config.Config) (engine.OutputFormat, error) {
	if flag == "" {
		flag = cfg.Output.DefaultFormat
	}
	return engine.ParseOutputFormat(flag)
}

// joinQuery turns positional arguments into one search query, so
// `moviefinder search star wars` needs no quoting.
func joinQuery(args []string) string {
	return strings.Join(args, " ")
}
