// Command tierpyramid renders, browses and serves bankability tier pyramids.
package main

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tierpyramid/internal/cli"
	"github.com/matzehuels/tierpyramid/pkg/errors"
)

// Exit codes.
const (
	exitFailure     = 1
	exitUsage       = 2
	exitNotFound    = 3
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode(err))
}

func execute(ctx context.Context, args []string) error {
	app := cli.New(os.Stderr, cli.LogInfo)
	root := app.RootCommand()
	root.SetArgs(args)
	root.SilenceErrors = true

	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")

	// Set the level before the root hook runs so config loading is logged.
	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			app.SetLogLevel(cli.LogDebug)
		}
		if loadConfig == nil {
			return nil
		}
		return loadConfig(cmd, args)
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, context.Canceled) {
		app.Logger.Error(errors.UserMessage(err), "code", errors.GetCode(err))
	}
	return err
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.IsValidation(err):
		return exitUsage
	case errors.IsNotFound(err):
		return exitNotFound
	default:
		return exitFailure
	}
}
