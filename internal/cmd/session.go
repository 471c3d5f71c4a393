package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/amity-space/amity/internal/allocator"
	"github.com/amity-space/amity/internal/amity"
	"github.com/amity-space/amity/internal/config"
	"github.com/amity-space/amity/internal/logging"
	"github.com/amity-space/amity/internal/report"
	"github.com/amity-space/amity/internal/style"
)

// session is the state shared by every command run in one process.
type session struct {
	cfg *config.Config
	reg *amity.Registry
	log *zap.Logger
	pal style.Palette
}

// app is the current session, created on first command.
var app *session

func newSession(cfg *config.Config, log *zap.Logger, color bool) *session {
	var alloc *allocator.Allocator
	if cfg.Seed != 0 {
		alloc = allocator.NewSeeded(cfg.Seed)
	} else {
		alloc = allocator.New(nil)
	}

	return &session{
		cfg: cfg,
		reg: amity.New(amity.WithAllocator(alloc), amity.WithLogger(log)),
		log: log,
		pal: style.Palette{Color: color},
	}
}

// setup loads config, applies flag overrides and creates the session once.
func setup(cmd *cobra.Command, args []string) error {
	if app != nil {
		return nil
	}

	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if colorMode != "" {
		cfg.Color = colorMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	app = newSession(cfg, logger, useColor(cfg.Color, os.Stdout))
	app.log.Debug("session started", zap.String("config", path), zap.Uint64("seed", cfg.Seed))
	return nil
}

// useColor resolves a color mode against the output stream.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return isTerminal(out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s *session) printer() report.Printer {
	return report.Printer{Palette: s.pal}
}

func (s *session) success(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", s.pal.SuccessPrefix(), msg)
}

func (s *session) warn(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", s.pal.WarningPrefix(), msg)
}

func (s *session) fail(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", s.pal.ErrorPrefix(), err)
}

func (s *session) allocation(w io.Writer, a *amity.Allocation) {
	if a.Allocated() {
		s.success(w, a.Message())
		return
	}
	s.warn(w, a.Message())
}
