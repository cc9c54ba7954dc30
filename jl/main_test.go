package main

import (
	"slices"
	"testing"
)

func TestCompletion(t *testing.T) {
	c := completion()
	for _, name := range []string{"parse", "report", "session", "assist", "topic", "help"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("missing completion for subcommand %q", name)
		}
	}
	for _, name := range []string{"config", "v"} {
		if _, ok := c.Flags[name]; !ok {
			t.Errorf("missing completion for global flag -%s", name)
		}
	}
	for _, name := range []string{"q", "d"} {
		if _, ok := c.Sub["parse"].Flags[name]; !ok {
			t.Errorf("missing completion for parse flag -%s", name)
		}
	}
	topics := c.Sub["topic"].Args.Predict("")
	if !slices.Contains(topics, "closure") || !slices.Contains(topics, "*") {
		t.Errorf("topic completion = %v", topics)
	}
}
