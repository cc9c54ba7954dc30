package assist

import (
	"context"
	"fmt"

	"github.com/etnz/jobledger"
	"github.com/etnz/jobledger/renderer"
	"google.golang.org/genai"
)

// Func is a Function implemented by a Go closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// stringArg returns the string argument name.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing argument %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("invalid type for %q got %T, expected string", name, v)
	}
	return s, nil
}

// Tools returns the functions giving a model access to s.
func Tools(s *jobledger.Session) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Summary",
				Description: "Summary returns the totals of the session: job count, total sales, total parts, total technician profit, net, and a breakdown per payment method.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted summary.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return outputResponse(id, "Summary", renderer.RenderSummary(renderer.NewSessionReport("", s)))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Jobs",
				Description: "Jobs lists every job of the session in entry order, with its date, job id, zip code, type, customer, total, parts, technician percentage and profit, payment method and Ref.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted table of jobs.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return outputResponse(id, "Jobs", renderer.RenderJobs(renderer.NewSessionReport("", s)))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name: "AddClosure",
				Description: `AddClosure adds a job to the session from its closure text.
				The closure text is free text with lines like "Close $500", "Tech part $100", "Pay cash",
				a 5 digit zip code, "job-1234", "Name: Jane Doe" and "Job Type: Rekey".`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"text": {
							Type:        genai.TypeString,
							Description: "The closure text, keep the original line breaks.",
						},
					},
					Required: []string{"text"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The added job as a markdown table, or a message saying that nothing was added.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				text, err := stringArg(args, "text")
				if err != nil {
					return errorResponse(id, "AddClosure", err)
				}
				r, ok := s.AddJob(text)
				if !ok {
					return outputResponse(id, "AddClosure", "the closure text is empty, no job added")
				}
				report := renderer.NewReport("", []jobledger.JobRecord{r}, jobledger.Summary{})
				return outputResponse(id, "AddClosure", renderer.RenderJobs(report))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "RemoveJob",
				Description: "RemoveJob removes a job from the session, given its Ref as listed by Jobs.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"ref": {
							Type:        genai.TypeString,
							Description: "The Ref of the job to remove.",
						},
					},
					Required: []string{"ref"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A confirmation message.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				ref, err := stringArg(args, "ref")
				if err != nil {
					return errorResponse(id, "RemoveJob", err)
				}
				r, ok := s.FindJob(ref)
				if !ok {
					return errorResponse(id, "RemoveJob", fmt.Errorf("no job with ref %q", ref))
				}
				s.RemoveJob(r.ID)
				return outputResponse(id, "RemoveJob", fmt.Sprintf("job %s (ref %s) removed", r.JobID, r.Ref()))
			},
		},
	}
}
