package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OutputFormat selects how non-interactive results are written.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// ParseOutputFormat validates s as an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputNDJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or ndjson)", s)
	}
}

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// printer formats counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousand separators, e.g. 18248 as "18,248".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// NoResultsMessage is the text shown when a search matched nothing.
func NoResultsMessage(query string) string {
	return fmt.Sprintf("No results found for %q", query)
}

// SearchReport is the JSON shape of a search.
type SearchReport struct {
	Query     string         `json:"query"`
	Total     int            `json:"total"`
	NoResults bool           `json:"no_results"`
	Results   []MovieSummary `json:"results"`
}

// NewSearchReport builds a report from an applied search state.
func NewSearchReport(state ViewState) SearchReport {
	results := state.Results
	if results == nil {
		results = []MovieSummary{}
	}
	return SearchReport{
		Query:     state.Query,
		Total:     state.Total,
		NoResults: state.NoResults,
		Results:   results,
	}
}

// RenderSearch writes a search report in the requested format.
func RenderSearch(w io.Writer, format OutputFormat, report SearchReport) error {
	switch format {
	case OutputJSON:
		return writeIndentedJSON(w, report)
	case OutputNDJSON:
		return writeNDJSON(w, report.Results)
	default:
		return RenderSearchTable(w, report)
	}
}

// RenderSearchTable writes the results as an aligned plain-text table.
func RenderSearchTable(w io.Writer, report SearchReport) error {
	if report.NoResults || len(report.Results) == 0 {
		_, err := fmt.Fprintln(w, NoResultsMessage(report.Query))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "ID\tTITLE\tYEAR\tTYPE\tPOSTER\n"); err != nil {
		return err
	}
	for _, m := range report.Results {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Title, m.Year, m.Type, dash(m.PosterURL)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, SearchFooter(len(report.Results), report.Total))
	return err
}

// SearchFooter summarizes how many of the upstream matches are shown.
func SearchFooter(shown, total int) string {
	if total <= shown {
		return fmt.Sprintf("%s result(s)", FormatCount(shown))
	}
	return fmt.Sprintf("Showing %s of %s results", FormatCount(shown), FormatCount(total))
}

// DetailResult pairs a requested id with its fetched record or failure.
type DetailResult struct {
	ID     string       `json:"id"`
	Detail *MovieDetail `json:"detail,omitempty"`
	Error  string       `json:"error,omitempty"`
	Kind   string       `json:"failure,omitempty"`
}

// NewDetailResult converts an outcome into a DetailResult.
func NewDetailResult(o DetailOutcome) DetailResult {
	r := DetailResult{ID: o.Ticket.Input, Detail: o.Detail}
	if o.Err != nil {
		r.Error = o.Err.Error()
		r.Kind = Kind(o.Err).String()
	}
	return r
}

// RenderDetails writes detail results in the requested format.
func RenderDetails(w io.Writer, format OutputFormat, results []DetailResult) error {
	switch format {
	case OutputJSON:
		if results == nil {
			results = []DetailResult{}
		}
		return writeIndentedJSON(w, results)
	case OutputNDJSON:
		return writeNDJSON(w, results)
	default:
		return renderDetailTable(w, results)
	}
}

func renderDetailTable(w io.Writer, results []DetailResult) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if r.Detail == nil {
			if _, err := fmt.Fprintf(w, "%s: error: %s\n", r.ID, r.Error); err != nil {
				return err
			}
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		for _, f := range DetailFields(*r.Detail) {
			if _, err := fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// DetailField is one labelled line of a detail view.
type DetailField struct {
	Label string
	Value string
}

// DetailFields lists the populated fields of d in display order. Title,
// Year, Plot and Rating are always present.
func DetailFields(d MovieDetail) []DetailField {
	fields := []DetailField{
		{"Title", d.Title},
		{"Year", d.Year},
		{"Plot", d.Plot},
		{"Rating", d.Rating},
	}
	optional := []DetailField{
		{"Rated", d.Rated},
		{"Released", d.Released},
		{"Runtime", d.Runtime},
		{"Genre", d.Genre},
		{"Director", d.Director},
		{"Actors", d.Actors},
		{"Votes", d.Votes},
		{"Poster", d.PosterURL},
		{"IMDb ID", d.ID},
	}
	for _, f := range optional {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func writeIndentedJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeNDJSON[T any](w io.Writer, rows []T) error {
	for _, row := range rows {
		data, marshalErr := json.Marshal(row)
		if marshalErr != nil {
			return fmt.Errorf("marshaling row: %w", marshalErr)
		}
		if _, writeErr := fmt.Fprintf(w, "%s\n", data); writeErr != nil {
			return fmt.Errorf("writing NDJSON line: %w", writeErr)
		}
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
