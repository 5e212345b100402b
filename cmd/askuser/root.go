package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "askuser",
	Short: "Ask the user a question in the terminal",
	Long: `askuser presents a question with optional choices in the terminal and
prints the user's selection or typed reply.

It is the standalone host for the AskUserQuestion tool. Agent runtimes
embed the same widget inside their own UI; this binary owns the terminal
directly. Without a terminal it prints the non-interactive fallback
block instead of rendering anything.`,
}

// Execute runs the root command with Ctrl+C wired to context
// cancellation.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
