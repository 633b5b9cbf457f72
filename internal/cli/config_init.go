package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/moviefinder/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// With --project it writes a ./.moviefinder.yaml overlay and makes sure
// .gitignore keeps it and .env out of version control. Otherwise it creates
// the global ~/.moviefinder/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

With --project, creates a .moviefinder.yaml overlay in the current directory
and adds it, together with .env, to .gitignore since both may hold an API key.`,
		Example: `  # Create global configuration
  moviefinder config init

  # Create a project overlay in the current directory
  moviefinder config init --project

  # Create configuration, overwriting existing
  moviefinder config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if project {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to determine working directory: %w", err)
				}
				return initProjectConfig(cmd, wd, force)
			}
			return initGlobalConfig(cmd, config.GetGlobalConfig().ConfigPath(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "create a project overlay in the current directory")

	return cmd
}

// initProjectConfig creates dir/.moviefinder.yaml and updates dir/.gitignore.
func initProjectConfig(cmd *cobra.Command, dir string, force bool) error {
	configPath := filepath.Join(dir, config.ProjectFileName)
	if err := checkExisting(configPath, force); err != nil {
		return err
	}

	cfg := config.New()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	added, err := config.EnsureGitignore(dir, config.ProjectIgnoreEntries...)
	if err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	for _, entry := range added {
		cmd.Printf("Added %s to .gitignore\n", entry)
	}

	return nil
}

// initGlobalConfig creates the global config file at path.
func initGlobalConfig(cmd *cobra.Command, path string, force bool) error {
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}
	if err := checkExisting(path, force); err != nil {
		return err
	}

	cfg := config.New()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	cmd.Printf("Next: moviefinder config set omdb.api_key <key>\n")

	return nil
}

func checkExisting(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}
