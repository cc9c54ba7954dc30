package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/jobledger"
	"github.com/etnz/jobledger/renderer"
	"github.com/google/subcommands"
)

type sessionCmd struct {
	date string
	file string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "enter job closures interactively" }
func (*sessionCmd) Usage() string {
	return `jl session [-d <date>] [-f <file>]

  Starts an interactive session. Paste a job closure text and end it
  with a line containing only '.' to add the job.

  Commands, when no closure is being typed:
    ls         list the jobs
    sum        display the summary
    rm <ref>   remove the job with the given Ref
    help       show this help
    quit       leave the session

  Nothing is saved, the jobs are lost when the session ends.

`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Entry date of the jobs. Defaults to today.")
	f.StringVar(&c.file, "f", "", "Closures to load before starting, separated by '---' lines")
}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cfg, err := setup(ctx)
	if err != nil {
		return exitStatus(err)
	}
	s, err := newSession(ctx, cfg, c.date)
	if err != nil {
		return exitStatus(usageError{err})
	}
	if c.file != "" {
		if _, err := loadFile(s, c.file); err != nil {
			return exitStatus(err)
		}
	}
	return exitStatus(runSession(os.Stdin, os.Stdout, s, printMarkdown))
}

const sessionHelp = `Paste a job closure and end it with a line containing only '.'.
Commands: ls, sum, rm <ref>, help, quit.`

// runSession reads closures and commands from r until quit or end of input.
// Messages go to w, markdown reports to show.
func runSession(r io.Reader, w io.Writer, s *jobledger.Session, show func(md string)) error {
	fmt.Fprintln(w, sessionHelp)

	var closure []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		cmd := strings.TrimSpace(line)

		if cmd == "." {
			submit(w, s, strings.Join(closure, "\n"))
			closure = closure[:0]
			continue
		}
		if len(closure) > 0 {
			closure = append(closure, line)
			continue
		}

		name, arg, _ := strings.Cut(cmd, " ")
		switch name {
		case "":
		case "ls":
			show(renderer.RenderJobs(renderer.NewSessionReport("", s)))
		case "sum":
			show(renderer.RenderSummary(renderer.NewSessionReport("", s)))
		case "rm":
			remove(w, s, strings.TrimSpace(arg))
		case "help":
			fmt.Fprintln(w, sessionHelp)
		case "quit", "exit":
			return nil
		default:
			closure = append(closure, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(closure) > 0 {
		fmt.Fprintln(w, "warning: unsubmitted closure discarded")
	}
	return nil
}

func submit(w io.Writer, s *jobledger.Session, text string) {
	r, ok := s.AddJob(text)
	if !ok {
		fmt.Fprintln(w, "nothing to add")
		return
	}
	fmt.Fprintf(w, "added %s %s %s profit %s (ref %s)\n", orDash(r.JobID), orDash(r.CustomerName), r.TotalAmount, r.TechnicianProfit, r.Ref())
}

func remove(w io.Writer, s *jobledger.Session, ref string) {
	if ref == "" {
		fmt.Fprintln(w, "usage: rm <ref>")
		return
	}
	r, ok := s.FindJob(ref)
	if !ok {
		fmt.Fprintf(w, "no job with ref %q\n", ref)
		return
	}
	s.RemoveJob(r.ID)
	fmt.Fprintf(w, "removed %s (ref %s)\n", orDash(r.JobID), r.Ref())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
