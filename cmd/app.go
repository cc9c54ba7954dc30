// Package cmd implements the subcommands of the jl tool.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/jobledger"
	"github.com/etnz/jobledger/config"
	"github.com/etnz/jobledger/date"
	"github.com/etnz/jobledger/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// DefaultConfigFile is the configuration file read when -config is not set.
const DefaultConfigFile = "jobledger.yml"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", DefaultConfigFile, "Path to the YAML configuration file")
var verbose = flag.Bool("v", false, "Log debug messages")

// Commands lists the jl subcommands.
var Commands = []subcommands.Command{
	&parseCmd{},
	&reportCmd{},
	&sessionCmd{},
	&assistCmd{},
	&topicCmd{},
}

// setup loads the configuration and returns a context carrying the logger.
func setup(ctx context.Context) (context.Context, config.Config, error) {
	cfg, exists, err := config.Load(*configFile)
	if err != nil {
		return ctx, cfg, err
	}
	if cfg, err = config.ApplyEnv(cfg); err != nil {
		return ctx, cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return ctx, cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return ctx, cfg, err
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New(level)
	if !exists {
		ev := log.Debug()
		if *configFile != DefaultConfigFile {
			ev = log.Warn()
		}
		ev.Str("path", *configFile).Msg("no config file, using defaults")
	}
	return logger.WithContext(ctx, log), cfg, nil
}

// newSession creates a session using the configured defaults. If day is not
// empty it is the entry date of every job.
func newSession(ctx context.Context, cfg config.Config, day string) (*jobledger.Session, error) {
	p := cfg.Parser()
	if day != "" {
		d, err := date.Parse(day)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", day, err)
		}
		p.Today = func() date.Date { return d }
	}
	return jobledger.NewSession(p).WithLogger(logger.FromContext(ctx)), nil
}

// readInput opens the file name, or stdin if name is empty or "-".
func readInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open closures: %w", err)
	}
	return f, nil
}

// loadClosures adds every closure of r to s and returns the number of jobs
// added.
func loadClosures(s *jobledger.Session, r io.Reader) (int, error) {
	texts, err := jobledger.SplitClosures(r)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, text := range texts {
		if _, ok := s.AddJob(text); ok {
			n++
		}
	}
	return n, nil
}

// loadFile adds the closures of the file name to s.
func loadFile(s *jobledger.Session, name string) (int, error) {
	f, err := readInput(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	n, err := loadClosures(s, f)
	if err != nil {
		return n, fmt.Errorf("could not read closures from %q: %w", name, err)
	}
	return n, nil
}

// printMarkdown prints md to stdout styled for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// exitStatus reports err on stderr.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var usage usageError
	if errors.As(err, &usage) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// usageError is an error caused by invalid arguments.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }
