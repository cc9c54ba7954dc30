package cmd

import (
	"strings"
	"testing"
)

func TestTopicText(t *testing.T) {
	testCases := []struct {
		topics []string
		want   string
	}{
		{nil, "# jl, the job ledger"},
		{[]string{"closure"}, "# Closure Text"},
		{[]string{"profit", "session"}, "# Session"},
	}
	for _, tc := range testCases {
		got, err := topicText(tc.topics)
		if err != nil {
			t.Fatalf("topicText(%v) error = %v", tc.topics, err)
		}
		if !strings.Contains(got, tc.want) {
			t.Errorf("topicText(%v) does not contain %q", tc.topics, tc.want)
		}
	}
	if _, err := topicText([]string{"nope"}); err == nil {
		t.Errorf("topicText(nope) should fail")
	}
}

func TestTopicUsage(t *testing.T) {
	if got := (&topicCmd{}).Usage(); !strings.Contains(got, "closure, config, profit, session") {
		t.Errorf("Usage() does not list the topics:\n%s", got)
	}
}
