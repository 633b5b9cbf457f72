package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/moviefinder/internal/logging"
)

// ProjectFileName is the per-directory overlay merged onto the global config.
const ProjectFileName = ".moviefinder.yaml"

// ResolveOptions controls Resolve. Zero values select the defaults.
type ResolveOptions struct {
	// ConfigPath overrides the global config file path (--config).
	ConfigPath string
	// WorkDir is where the project overlay and .env are looked up.
	WorkDir string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv LookupEnvFunc
	// SkipDotEnv disables .env loading.
	SkipDotEnv bool
}

// Resolve builds the effective configuration from every source in
// precedence order. It does not validate; callers run Validate once CLI
// flags have been applied.
func Resolve(ctx context.Context, opts ResolveOptions) (*Config, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			workDir = wd
		}
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if !opts.SkipDotEnv {
		if err := LoadDotEnv(filepath.Join(workDir, ".env")); err != nil {
			return nil, err
		}
	}

	path := opts.ConfigPath
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	mergeProjectOverlay(ctx, cfg, workDir)
	cfg.ApplyEnv(lookup)
	return cfg, nil
}

// mergeProjectOverlay merges ./.moviefinder.yaml when present. A broken
// overlay is logged and ignored so the global config still applies.
func mergeProjectOverlay(ctx context.Context, cfg *Config, workDir string) {
	if workDir == "" {
		return
	}
	overlayPath := filepath.Join(workDir, ProjectFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return
	}

	snapshot := *cfg
	if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
		*cfg = snapshot
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "config").
			Str("operation", "merge_project_config").
			Str("overlay_path", overlayPath).
			Err(err).
			Msg("failed to merge project config, using global settings")
	}
}
