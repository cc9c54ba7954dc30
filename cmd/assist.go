package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/jobledger/assist"
	"github.com/etnz/jobledger/logger"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	file string
	date string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `jl assist [-f <file>] [-d <date>] [question...]

  Starts a chat with an assistant that can read, add and remove the jobs of
  the session. The question, if any, is asked first.

  Requires the GEMINI_API_KEY environment variable.

`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Closures to load before starting, separated by '---' lines")
	f.StringVar(&c.date, "d", "", "Entry date of the jobs. Defaults to today.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cfg, err := setup(ctx)
	if err != nil {
		return exitStatus(err)
	}
	s, err := newSession(ctx, cfg, c.date)
	if err != nil {
		return exitStatus(usageError{err})
	}
	if c.file != "" {
		n, err := loadFile(s, c.file)
		if err != nil {
			return exitStatus(err)
		}
		log := logger.FromContext(ctx)
		log.Info().Int("jobs", n).Str("file", c.file).Msg("closures loaded")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := assist.New(os.Stdout, os.Stdin, s, cfg.Assist.Model)
	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
