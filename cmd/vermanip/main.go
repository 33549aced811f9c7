package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/indaco/vermanip/internal/cli"
	"github.com/indaco/vermanip/internal/clix"
	"github.com/indaco/vermanip/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI builds the logger and environment, then runs the root command.
func runCLI(args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "vermanip",
	})
	return runWithEnv(context.Background(), clix.NewEnv(logger), args)
}

func runWithEnv(ctx context.Context, env *clix.Env, args []string) error {
	return cli.New(env).Run(ctx, args)
}
