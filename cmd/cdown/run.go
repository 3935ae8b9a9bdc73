package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/charmbracelet/x/term"

	"github.com/hammamikhairi/cdown/internal/chime"
	"github.com/hammamikhairi/cdown/internal/config"
	"github.com/hammamikhairi/cdown/internal/display"
	"github.com/hammamikhairi/cdown/internal/domain"
	"github.com/hammamikhairi/cdown/internal/duration"
	"github.com/hammamikhairi/cdown/internal/logger"
	"github.com/hammamikhairi/cdown/internal/loop"
	"github.com/hammamikhairi/cdown/internal/timer"
)

type loopResult struct {
	outcome domain.Outcome
	err     error
}

// run parses the duration, takes over the terminal and counts down. It
// returns nil on completion and errQuit when the user leaves early.
func run(ctx context.Context, input string, cfg *config.Config) error {
	secs, err := duration.Seconds(input)
	if err != nil {
		return fmt.Errorf("parsing duration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	logOut, closeLog := openLog(level, cfg.Log.File, os.Stderr)
	defer closeLog()

	// Redirect Go's default log package (used by third-party libs) to the
	// same output.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(level, logOut)

	fg, ok := display.ParseColor(cfg.Display.Color)
	if !ok {
		log.Warn("unknown color %q, using %s", cfg.Display.Color, display.DefaultColor)
	}

	if !term.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout: %w", domain.ErrNotATerminal)
	}

	notifier, err := newNotifier(cfg.Sound, log)
	if err != nil {
		return err
	}

	ui := display.NewUI(log,
		display.WithColor(fg),
		display.WithBorder(cfg.Display.Border),
		display.WithProgress(cfg.Display.Progress),
		display.WithTitle(cfg.Display.Title),
	)
	lp := loop.New(timer.New(secs), ui, ui, log, loop.WithNotifier(notifier))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Run the countdown in a background goroutine; Bubble Tea owns the
	// terminal from this one.
	results := make(chan loopResult, 1)
	go func() {
		select {
		case <-ui.Ready():
		case <-ui.QuitChan():
			results <- loopResult{domain.OutcomeQuit, domain.ErrDisplayClosed}
			return
		}
		outcome, err := lp.Run(ctx)
		results <- loopResult{outcome, err}
		ui.Quit()
	}()

	uiErr := ui.Run()
	cancel()
	res := <-results

	if uiErr != nil {
		return fmt.Errorf("display: %w", uiErr)
	}
	return outcomeError(res.outcome, res.err, log)
}

// openLog picks where logs go. They go to a file by default so they never
// scribble over the clock; with logging off everything is discarded.
func openLog(level logger.Level, path string, stderr io.Writer) (io.Writer, func() error) {
	noop := func() error { return nil }
	if level == logger.LevelOff {
		return io.Discard, noop
	}
	if path == "" {
		path = logger.DefaultPath()
	}
	out, closeLog, err := logger.OpenFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v (falling back to stderr)\n", err)
		return stderr, noop
	}
	return out, closeLog
}

// outcomeError folds the loop result into the command's error.
func outcomeError(outcome domain.Outcome, err error, log *logger.Logger) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, domain.ErrDisplayClosed):
		log.Info("countdown interrupted")
		return errQuit
	case err != nil:
		return err
	case outcome == domain.OutcomeQuit:
		return errQuit
	default:
		return nil
	}
}

// newNotifier returns the completion notifier. A missing audio device
// downgrades to a no-op; a bad sound file is an error.
func newNotifier(cfg config.SoundConfig, log *logger.Logger) (domain.Notifier, error) {
	if !cfg.Enabled {
		return chime.NewNoOp(log), nil
	}
	player, err := chime.NewPlayer(log)
	if err != nil {
		log.Error("audio player init failed, sound disabled: %v", err)
		return chime.NewNoOp(log), nil
	}
	n := chime.NewNotifier(player, log)
	if cfg.File != "" {
		if err := n.LoadSound(cfg.File); err != nil {
			return nil, err
		}
	}
	return n, nil
}
