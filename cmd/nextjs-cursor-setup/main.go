// Package main is the entry point for the nextjs-cursor-setup CLI.
//
// This binary personalizes a freshly cloned Next.js boilerplate: it asks five
// questions and rewrites package.json, bootstraps .env.local and updates
// README.md. It delegates all functionality to the internal/cli package,
// which defines the cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during release builds. During development, they default to "dev", "none",
// and "unknown" respectively.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Ctrl+C or SIGTERM cancels the run, including a pending question.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand()
	cli.Execute(ctx, rootCmd)
}
