package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/moviefinder/internal/cli/pagination"
	"github.com/rshade/moviefinder/internal/config"
	"github.com/rshade/moviefinder/internal/engine"
	"github.com/rshade/moviefinder/internal/tui"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	var (
		output string
		limit  int
		offset int
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles by name",
		Long: `Searches OMDb for titles matching the query and prints the first page of
results. A query that matches nothing prints a "No results found" message and
exits successfully.`,
		Example: `  # Search and print a table
  moviefinder search batman

  # Multi-word queries need no quoting
  moviefinder search star wars

  # Machine-readable output
  moviefinder search batman --output json
  moviefinder search batman --output ndjson | jq .title

  # Newest first, top five
  moviefinder search batman --sort year:desc --limit 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := pagination.NewParams(limit, offset, sortBy)
			if err != nil {
				return err
			}
			if err := pagination.NewSummarySorter().Validate(params.SortField); err != nil {
				return err
			}
			return runSearch(cmd, joinQuery(args), output, params)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many results (0 = all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip this many results")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort results: title, year, type or id, optionally with :asc or :desc")

	return cmd
}

func runSearch(cmd *cobra.Command, query, output string, params pagination.Params) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	format, err := resolveOutputFormat(output, cfg)
	if err != nil {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	outcome := eng.Search.Search(ctx, query)
	if outcome.Err != nil {
		return fmt.Errorf("search failed (%s): %w", outcome.Kind(), outcome.Err)
	}

	report := engine.NewSearchReport(eng.Snapshot())
	report.Results = pagination.Apply(params,
		pagination.NewSummarySorter().Sort(report.Results, params.SortField, params.SortOrder))
	logger.Debug().
		Ctx(ctx).
		Str("query", query).
		Int("results", len(report.Results)).
		Int("total", report.Total).
		Msg("search completed")

	if format != engine.OutputTable {
		return engine.RenderSearch(cmd.OutOrStdout(), format, report)
	}

	switch tui.DetectOutputMode(false, false, false) {
	case tui.OutputModeInteractive, tui.OutputModeStyled:
		return renderStyledSearch(cmd.OutOrStdout(), report)
	default:
		return engine.RenderSearchTable(cmd.OutOrStdout(), report)
	}
}
