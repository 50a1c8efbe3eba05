// Command certforge renders certificate batches from a layout document and a
// recipient list.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/certforge/pkg/logger"
)

// sentryFlushTimeout bounds how long the process waits for queued Sentry events on exit.
const sentryFlushTimeout = 2 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, newRootCmd(), os.Stderr, func() { logger.FlushSentry(sentryFlushTimeout) })
	cancel()
	os.Exit(code)
}

// execute runs cmd and returns the process exit code.
// flush runs after the command finishes, whether it failed or not.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer, flush func()) int {
	err := cmd.ExecuteContext(ctx)
	flush()

	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}
