package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/jobledger/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the jl documentation" }
func (*topicCmd) Usage() string {
	topics, _ := docs.GetAllTopics()
	return fmt.Sprintf(`jl topic [<topic>...]

  Prints the documentation topics, '*' prints all of them.
  Without a topic, prints the list of topics.

Topics: %s

`, strings.Join(topics, ", "))
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := topicText(f.Args())
	if err != nil {
		return exitStatus(usageError{err})
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topicText returns the documentation of topics, the readme if there is none.
func topicText(topics []string) (string, error) {
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	return docs.GetTopics(topics...)
}
