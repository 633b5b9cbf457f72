package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/moviefinder/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipValidation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetInfo()
			info.Version = ver
			info.Release = version.IsReleaseVersion(ver)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			build := "release"
			if !info.Release {
				build = "development build"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"moviefinder %s (%s)\n  commit:   %s\n  built:    %s\n  go:       %s\n  platform: %s\n",
				info.Version, build, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
