package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/moviefinder/internal/config"
	"github.com/rshade/moviefinder/internal/logging"
)

// setupLogging configures logging from the resolved config and CLI flags.
// Logs go to a file unless --debug asks for console output on a
// non-interactive command; the TUI never logs to the terminal.
func setupLogging(cmd *cobra.Command, cfg *config.Config, debug, interactive bool) logging.LogPathResult {
	loggingCfg := cfg.Logging
	if loggingCfg.File == "" {
		loggingCfg.File = config.DefaultLogPath()
	}

	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	if interactive && result.FallbackUsed {
		// stderr is the screen; stay silent rather than corrupt it.
		result.Logger = result.Logger.Level(zerolog.Disabled)
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed && !interactive {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult == nil {
		return nil
	}
	logging.FromContext(cmd.Context()).Debug().
		Ctx(cmd.Context()).
		Str("command", cmd.CommandPath()).
		Msg("command finished")
	return logResult.Close()
}
