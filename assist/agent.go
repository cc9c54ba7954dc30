// Package assist implements a conversational assistant that answers
// questions about a session's jobs and can add or remove jobs.
package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/jobledger"
	"github.com/etnz/jobledger/logger"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const instructions = `
You are the bookkeeper of a locksmith technician. The technician closes jobs and writes
a closure note for each one. The session holds the jobs of the day or week.

Use the tools to read the jobs and their totals before answering, never guess amounts.
Technician profit is (total - parts) * percentage, it can be negative when parts cost
more than the job was closed for.
When asked to add a job, pass the closure text as is to AddClosure.
When asked to remove a job, find its Ref with Jobs first, and ask for confirmation.
Answer in short markdown.
`

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w         io.Writer
	r         *bufio.Reader
	Bookkeeper *Expert
}

// New creates an Agent working on s. It reads user input from r and writes
// to w.
func New(w io.Writer, r io.Reader, s *jobledger.Session, model string) *Agent {
	if model == "" {
		model = DefaultModel
	}
	tools := Tools(s)
	return &Agent{
		w: w,
		r: bufio.NewReader(r),
		Bookkeeper: &Expert{
			Name:      "Bookkeeper",
			ModelName: model,
			Config: &genai.GenerateContentConfig{
				Tools: []*genai.Tool{
					{FunctionDeclarations: NewDeclaration(tools)},
				},
				SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instructions}}},
			},
			Library: NewLibrary(tools),
		},
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. prompts are sent
// first, as if typed by the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	log := logger.FromContext(ctx)
	if a.Bookkeeper.chat == nil {
		if err := a.Bookkeeper.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Ask about your jobs. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		log.Debug().Str("input", input).Msg("ask bookkeeper")
		content, err := a.Bookkeeper.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		for _, part := range content.Parts {
			if part.Text != "" {
				fmt.Fprintln(a.w, part.Text)
			}
		}
	}
}
