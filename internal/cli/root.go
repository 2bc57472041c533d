package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// newRootCmd builds the sysgauge command. run is the dashboard entry point.
func newRootCmd(run func(ctx context.Context) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sysgauge",
		Short: "Live CPU, memory and network gauges for this machine",
		Long: `Take over the terminal and show four live gauges, refreshed every second:

  CPU Usage        overall processor utilization
  Memory Usage     used physical memory
  Download (KB/s)  bytes received on all interfaces, 0-1000 KB per tick
  Upload (KB/s)    bytes sent on all interfaces, 0-1000 KB per tick

Press q to quit.

Diagnostics:
  SYSGAUGE_DEBUG=1           log each sample
  SYSGAUGE_LOG_FILE=<path>   write logs to a file while the dashboard runs`,
		Args:          cobra.NoArgs,
		Version:       versionInfo(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	cmd.SetVersionTemplate(versionTemplate)
	return cmd
}

// Execute runs the root command and exits non-zero on a fatal error.
// By the time an error reaches here the terminal has been restored.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(dashboardCommand).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
