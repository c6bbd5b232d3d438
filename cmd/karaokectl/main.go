// Command karaokectl is the operator CLI: schema migrations, refresh token
// cleanup and API key utilities.
//
// Usage:
//
//	karaokectl migrate up|down|status
//	karaokectl cleanup-tokens
//	karaokectl apikey generate
//	karaokectl apikey hash <key>
//
// Database commands read DATABASE_DSN (and the other DATABASE_* variables).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "karaokectl",
		Short:         "Operator tooling for the karaoke API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCommand(),
		newCleanupTokensCommand(),
		newAPIKeyCommand(),
	)
	return root
}
