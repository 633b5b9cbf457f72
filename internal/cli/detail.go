package cli

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/moviefinder/internal/config"
	"github.com/rshade/moviefinder/internal/engine"
)

// ErrDetailFailed is returned when at least one detail lookup failed. The
// successful records are still printed.
var ErrDetailFailed = errors.New("detail lookup failed")

// NewDetailCmd creates the detail command.
func NewDetailCmd() *cobra.Command {
	var (
		output      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "detail <imdb-id>...",
		Short: "Show full details for one or more titles",
		Long: `Fetches the full record for each IMDb id. Several ids are fetched
concurrently and printed in the order given. A failed lookup is reported
inline and makes the command exit non-zero.`,
		Example: `  # One title
  moviefinder detail tt0372784

  # Several titles as JSON
  moviefinder detail tt0372784 tt0076759 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetail(cmd, args, output, concurrency)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "maximum concurrent lookups")

	return cmd
}

func runDetail(cmd *cobra.Command, ids []string, output string, concurrency int) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	format, err := resolveOutputFormat(output, cfg)
	if err != nil {
		return err
	}
	if concurrency < 1 {
		return fmt.Errorf("--concurrency must be >= 1, got %d", concurrency)
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	results := fetchDetails(cmd, eng, ids, concurrency)

	if err := engine.RenderDetails(cmd.OutOrStdout(), format, results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	logger.Debug().
		Ctx(ctx).
		Int("requested", len(ids)).
		Int("failed", failed).
		Msg("detail lookups completed")

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d ids", ErrDetailFailed, failed, len(ids))
	}
	return nil
}

// fetchDetails looks up every id with bounded concurrency. Results keep the
// order of ids; one failure does not cancel the others.
func fetchDetails(cmd *cobra.Command, eng *engine.Engine, ids []string, concurrency int) []engine.DetailResult {
	results := make([]engine.DetailResult, len(ids))

	g, gCtx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)

	for i, id := range ids {
		ticket := eng.Detail.Begin(id)
		g.Go(func() error {
			results[i] = engine.NewDetailResult(eng.Detail.Run(gCtx, ticket))
			return nil
		})
	}

	_ = g.Wait()
	return results
}
