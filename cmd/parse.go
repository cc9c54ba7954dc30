package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/jobledger"
	"github.com/google/subcommands"
)

type parseCmd struct {
	query string
	date  string
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "parse a job closure text into a job record" }
func (*parseCmd) Usage() string {
	return `jl parse [-q <jsonpath>] [-d <date>] [<file>|-]

  Parses a single job closure text and prints the job record as JSON.
  The text is read from the file, or from stdin.

Usage Examples:
$ printf 'Close $500\nTech part $100\nPay Cash\n90210\njob-4521' | jl parse
$ jl parse -q '$.technicianProfit' closure.txt

`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query to select from the record, e.g. '$.technicianProfit'")
	f.StringVar(&c.date, "d", "", "Entry date of the record. Defaults to today.")
}

func (c *parseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return exitStatus(usageError{fmt.Errorf("parse reads a single closure, got %d files", f.NArg())})
	}
	ctx, cfg, err := setup(ctx)
	if err != nil {
		return exitStatus(err)
	}
	s, err := newSession(ctx, cfg, c.date)
	if err != nil {
		return exitStatus(usageError{err})
	}
	in, err := readInput(f.Arg(0))
	if err != nil {
		return exitStatus(err)
	}
	defer in.Close()
	text, err := io.ReadAll(in)
	if err != nil {
		return exitStatus(fmt.Errorf("could not read closure: %w", err))
	}

	out, err := parseOutput(s.ParseClosure(string(text)), c.query)
	if err != nil {
		return exitStatus(err)
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

// parseOutput formats r as indented JSON, or the result of the JSONPath
// query on it. String results are printed raw.
func parseOutput(r jobledger.JobRecord, query string) (string, error) {
	if query == "" {
		b, err := json.MarshalIndent(r, "", "  ")
		return string(b), err
	}

	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	var jobj any
	if err := json.Unmarshal(b, &jobj); err != nil {
		return "", err
	}
	jval, err := jsonpath.Get(query, jobj)
	if err != nil {
		return "", usageError{fmt.Errorf("error evaluating %q: %w", query, err)}
	}
	if s, ok := jval.(string); ok {
		return s, nil
	}
	out, err := json.Marshal(jval)
	return strings.TrimSpace(string(out)), err
}
