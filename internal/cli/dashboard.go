package cli

import (
	"context"
	stderrors "errors"
	"io"
	"log"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysgauge/internal/config"
	"github.com/rileyhilliard/sysgauge/internal/errors"
	"github.com/rileyhilliard/sysgauge/internal/logger"
	"github.com/rileyhilliard/sysgauge/internal/monitor"
	"github.com/rileyhilliard/sysgauge/internal/monitor/parsers"
	"golang.org/x/term"
)

// dashboardCommand runs the dashboard on the process's own terminal.
func dashboardCommand(ctx context.Context) error {
	return runDashboard(ctx, os.Stdin, os.Stdout)
}

// runDashboard takes over the terminal behind in/out and blocks until the
// user quits, ctx is canceled, or the session fails.
func runDashboard(ctx context.Context, in, out *os.File) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := requireTerminal(in, out); err != nil {
		return err
	}

	restoreLog, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restoreLog()

	lg := logger.Default()
	lg.Info("starting dashboard, tick %s", cfg.Tick)

	collector := monitor.NewCollector(newProvider(), lg)
	model := monitor.NewModel(collector, cfg.Tick)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		lg.Error("dashboard stopped: %v", err)
		return classifySessionError(ctx, err)
	}

	if m, ok := final.(monitor.Model); ok {
		lg.Info("dashboard %s after %d ticks", m.State(), m.Ticks())
	}
	return nil
}

// newProvider returns the metrics source for this host. On Linux each
// gopsutil query falls back to reading /proc directly.
func newProvider() monitor.Provider {
	var secondary monitor.Provider
	if runtime.GOOS == "linux" {
		secondary = parsers.NewProcProvider(parsers.DefaultProcRoot)
	}
	return monitor.NewFallbackProvider(monitor.NewSystemProvider(), secondary)
}

// requireTerminal fails unless both ends are interactive terminals.
func requireTerminal(in, out *os.File) error {
	for _, f := range []*os.File{in, out} {
		if f == nil || !term.IsTerminal(int(f.Fd())) {
			name := "<nil>"
			if f != nil {
				name = f.Name()
			}
			return errors.New(errors.ErrTerminal,
				"Can't take over the terminal: "+name+" is not a TTY",
				"Run sysgauge directly in an interactive terminal, without pipes or redirection.")
		}
	}
	return nil
}

// redirectLog keeps log output off the dashboard's screen. With a path it
// appends to that file, otherwise it discards. The returned func restores
// stderr logging.
func redirectLog(path string) (func(), error) {
	restore := func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	f, err := tea.LogToFile(path, "sysgauge")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't open log file "+path,
			"Point "+config.EnvPrefix+"_LOG_FILE at a writable path, or unset it.")
	}
	return func() {
		restore()
		_ = f.Close()
	}, nil
}

// classifySessionError maps a failed Bubble Tea run to an error code.
// Cancellation through ctx is a normal exit.
func classifySessionError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if stderrors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	var pathErr *os.PathError
	if stderrors.As(err, &pathErr) && pathErr.Op == "read" {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Lost keyboard input",
			"The terminal closed or stopped delivering keys. Start sysgauge again.")
	}

	if stderrors.Is(err, tea.ErrProgramPanic) {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard crashed",
			"The terminal has been restored. Please report this with SYSGAUGE_DEBUG=1 logs.")
	}

	return errors.WrapWithCode(err, errors.ErrRender,
		"Can't draw to the terminal",
		"Check that the terminal is still open and try again.")
}
