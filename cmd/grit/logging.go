package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// setupLogging installs the default slog logger for this invocation.
func setupLogging(w io.Writer, opts *globalOptions) error {
	s, err := loadSettings(opts.configPath)
	if err != nil {
		return err
	}
	level, err := s.level()
	if err != nil {
		return err
	}
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(w, level, s.NoColor))
	return nil
}

func newLogger(w io.Writer, level slog.Leveler, noColor bool) *slog.Logger {
	if f, ok := w.(*os.File); ok {
		noColor = noColor || !isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	} else {
		noColor = true
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    noColor,
	}))
}
