package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gissy.dev/gissy/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd(version, commit, date)
	err := cli.Execute(ctx, rootCmd)
	stop()
	if err != nil {
		cli.PrintError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
