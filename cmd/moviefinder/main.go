// Command moviefinder searches the OMDb movie database from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/moviefinder/internal/cli"
	"github.com/rshade/moviefinder/internal/config"
	"github.com/rshade/moviefinder/pkg/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitConfigError = 2
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its error to an exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SilenceErrors = true
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

// exitCode returns 2 for configuration problems, 1 for any other error.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var validationErr *config.ValidationError
	if errors.As(err, &validationErr) {
		return exitConfigError
	}
	return exitError
}
