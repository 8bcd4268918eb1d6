package analyst

import (
	"context"
	"fmt"
	"strings"

	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
)

const analystPrompt = `
You are a social analyst AI. Using the real-time discussion data from Membit below,
summarize and interpret public sentiment and key insights around: "%s".
---
%s
---
`

const noDigestPlaceholder = "(no cluster summaries available)"

// Generator produces text for a prompt. *gemini.Client satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Result is the outcome of one summarization attempt: generated text on
// success, or the failure that was contained.
type Result struct {
	Text string
	Err  error
}

// Render returns the terminal form of the result. Failures render inline
// so the loop can print them in place of a summary.
func (r Result) Render() string {
	if r.Err != nil {
		return fmt.Sprintf("(Gemini summarization failed: %v)", r.Err)
	}
	return r.Text
}

// Analyst turns retrieved clusters into a short sentiment synthesis.
type Analyst struct {
	generator Generator
}

// New creates an Analyst backed by the given generator.
func New(generator Generator) *Analyst {
	return &Analyst{generator: generator}
}

// Analyze summarizes the clusters for the query. ok is false when
// summarization is disabled (nil analyst or no generator). Analyze never
// returns an error; generation failures are contained in the Result.
func (a *Analyst) Analyze(ctx context.Context, query string, clusters []membit.Cluster) (Result, bool) {
	if a == nil || a.generator == nil {
		return Result{}, false
	}
	prompt := fmt.Sprintf(analystPrompt, query, digest(clusters))
	text, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return Result{Err: err}, true
	}
	return Result{Text: strings.TrimSpace(text)}, true
}

// digest builds one line per cluster, preferring summaries over labels.
// Clusters with neither contribute nothing.
func digest(clusters []membit.Cluster) string {
	var lines []string
	for _, cluster := range clusters {
		line := cluster.Summary()
		if line == "" {
			line = cluster.Label()
		}
		if line != "" {
			lines = append(lines, "- "+line)
		}
	}
	if len(lines) == 0 {
		return noDigestPlaceholder
	}
	return strings.Join(lines, "\n")
}
