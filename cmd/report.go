package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/jobledger"
	"github.com/etnz/jobledger/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	html  bool
	json  bool
	date  string
	title string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the jobs and totals of a batch of closures" }
func (*reportCmd) Usage() string {
	return `jl report [-html|-json] [-d <date>] [-t <title>] [<file>|-]

  Reads job closure texts separated by lines containing only '---',
  and displays the table of jobs followed by the summary totals.
  Blank closures are ignored.

  -json prints one JSON record per job, followed by the summary.
  -html prints the report as an HTML fragment.

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "Print the report as HTML")
	f.BoolVar(&c.json, "json", false, "Print the jobs as JSON lines followed by the summary")
	f.StringVar(&c.date, "d", "", "Entry date of the jobs. Defaults to today.")
	f.StringVar(&c.title, "t", "Jobs Report", "Title of the report")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.html && c.json {
		return exitStatus(usageError{fmt.Errorf("-html and -json are exclusive")})
	}
	ctx, cfg, err := setup(ctx)
	if err != nil {
		return exitStatus(err)
	}
	s, err := newSession(ctx, cfg, c.date)
	if err != nil {
		return exitStatus(usageError{err})
	}
	if _, err := loadFile(s, f.Arg(0)); err != nil {
		return exitStatus(err)
	}

	switch {
	case c.json:
		err = writeJSON(os.Stdout, s)
	case c.html:
		var html string
		html, err = renderer.HTML(renderer.RenderReport(renderer.NewSessionReport(c.title, s)))
		fmt.Print(html)
	default:
		printMarkdown(renderer.RenderReport(renderer.NewSessionReport(c.title, s)))
	}
	return exitStatus(err)
}

// writeJSON writes the jobs of s as JSON lines, then its summary.
func writeJSON(w io.Writer, s *jobledger.Session) error {
	if err := jobledger.EncodeJobs(w, s.Jobs()); err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(s.Summary())
}
