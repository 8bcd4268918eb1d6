package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/pzshine/membit-prediction-market-insight/internal/analyst"
	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
)

func TestREPL_ExitImmediately(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{}
	out, err := runRoot(t, newTestApp(search, nil), "exit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := banner + "\n" +
		"\nQuestion> " +
		"Goodbye!\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", out, want)
	}
	if search.clusterCalls != 0 || search.postCalls != 0 {
		t.Fatalf("expected no searches, got %d cluster and %d post calls", search.clusterCalls, search.postCalls)
	}
}

func TestREPL_QuitIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	out, err := runRoot(t, newTestApp(&fakeSearch{}, nil), "QUIT\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasSuffix(out, "Question> Goodbye!\n") {
		t.Fatalf("expected farewell after QUIT, got %q", out)
	}
}

func TestREPL_EOFBeforeInput(t *testing.T) {
	t.Parallel()

	out, err := runRoot(t, newTestApp(&fakeSearch{}, nil), "")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := banner + "\n" +
		"\nQuestion> " +
		"\nGoodbye!\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", out, want)
	}
}

func TestREPL_PartialLineWithoutNewline(t *testing.T) {
	t.Parallel()

	// A final line missing its newline is still a command.
	out, err := runRoot(t, newTestApp(&fakeSearch{}, nil), "exit")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := banner + "\n" +
		"\nQuestion> " +
		"Goodbye!\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", out, want)
	}
}

func TestREPL_BlankLinesAreSkipped(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{}
	out, err := runRoot(t, newTestApp(search, nil), "\n   \nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := banner + "\n" +
		"\nQuestion> " +
		"\nQuestion> " +
		"\nQuestion> " +
		"Goodbye!\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", out, want)
	}
	if search.clusterCalls != 0 {
		t.Fatalf("expected no searches for blank input, got %d", search.clusterCalls)
	}
}

func TestREPL_FullQueryFlow(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{
		clusters: []membit.Cluster{{
			"label":            "BTC ETF inflows",
			"summary":          "Spot ETF demand keeps climbing.",
			"category":         "crypto",
			"engagement_score": 0.5,
			"search_score":     0.123,
		}},
		posts: []membit.Post{{
			"platform": "twitter",
			"text":     "gm, flows are back",
			"url":      "https://x.com/status/1",
		}},
	}
	summarizer := &fakeSummarizer{res: analyst.Result{Text: "All eyes on inflows."}, ok: true}

	out, err := runRoot(t, newTestApp(search, summarizer), "btc etf\nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := banner + "\n" +
		"\nQuestion> " +
		"\n=== Related clusters ===\n" +
		"1. BTC ETF inflows [crypto]\n" +
		"   ↳ Spot ETF demand keeps climbing.\n" +
		"   (engagement=0.50, relevance=0.123)\n" +
		"\n=== Related posts (with links) ===\n" +
		"1. [twitter] gm, flows are back\n" +
		"   ↳ https://x.com/status/1\n" +
		"\n=== Gemini summary ===\n" +
		"All eyes on inflows.\n" +
		"\nQuestion> " +
		"Goodbye!\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", out, want)
	}

	if search.lastQuery != "btc etf" {
		t.Fatalf("expected query %q, got %q", "btc etf", search.lastQuery)
	}
	if search.lastClusterLimit != defaultClusterLimit {
		t.Fatalf("expected cluster limit %d, got %d", defaultClusterLimit, search.lastClusterLimit)
	}
	if search.lastPostLimit != defaultPostLimit {
		t.Fatalf("expected post limit %d, got %d", defaultPostLimit, search.lastPostLimit)
	}
	if summarizer.calls != 1 {
		t.Fatalf("expected one summarizer call, got %d", summarizer.calls)
	}
}

func TestREPL_EmptyResultsStillRenderSections(t *testing.T) {
	t.Parallel()

	out, err := runRoot(t, newTestApp(&fakeSearch{}, nil), "quiet topic\nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := banner + "\n" +
		"\nQuestion> " +
		"\n=== Related clusters ===\n" +
		"No related clusters found.\n" +
		"\nQuestion> " +
		"Goodbye!\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", out, want)
	}
}

func TestREPL_ClusterErrorIsRecoverable(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{clustersErr: errors.New("membit: status 500: upstream down")}
	summarizer := &fakeSummarizer{res: analyst.Result{Text: "unused"}, ok: true}

	out, err := runRoot(t, newTestApp(search, summarizer), "btc\nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := banner + "\n" +
		"\nQuestion> " +
		"Something went wrong: membit: status 500: upstream down\n" +
		"\nQuestion> " +
		"Goodbye!\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", out, want)
	}
	if search.postCalls != 0 {
		t.Fatalf("expected no post search after cluster failure, got %d", search.postCalls)
	}
	if summarizer.calls != 0 {
		t.Fatalf("expected no summarizer call after cluster failure, got %d", summarizer.calls)
	}
}

func TestREPL_PostErrorIsInline(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{
		clusters: []membit.Cluster{{"label": "Solana upgrades"}},
		postsErr: errors.New("timeout"),
	}
	summarizer := &fakeSummarizer{res: analyst.Result{Text: "Still bullish."}, ok: true}

	out, err := runRoot(t, newTestApp(search, summarizer), "sol\nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := banner + "\n" +
		"\nQuestion> " +
		"\n=== Related clusters ===\n" +
		"1. Solana upgrades [Uncategorized]\n" +
		"   ↳ No summary provided.\n" +
		"\n(Unable to fetch individual posts: timeout)\n" +
		"\n=== Gemini summary ===\n" +
		"Still bullish.\n" +
		"\nQuestion> " +
		"Goodbye!\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q\nwant:\n%q", out, want)
	}
	if summarizer.calls != 1 {
		t.Fatalf("expected summarizer to run despite post failure, got %d calls", summarizer.calls)
	}
}

func TestREPL_EmptyPostsSkipSection(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{clusters: []membit.Cluster{{"label": "DeFi"}}}
	out, err := runRoot(t, newTestApp(search, nil), "defi\nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(out, "Related posts") {
		t.Fatalf("expected no posts section for empty results, got %q", out)
	}
}

func TestREPL_SummaryFailureRendersInline(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{clusters: []membit.Cluster{{"label": "ETH"}}}
	summarizer := &fakeSummarizer{res: analyst.Result{Err: errors.New("quota exceeded")}, ok: true}

	out, err := runRoot(t, newTestApp(search, summarizer), "eth\nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "\n=== Gemini summary ===\n(Gemini summarization failed: quota exceeded)\n") {
		t.Fatalf("expected inline summarization failure, got %q", out)
	}
}

func TestREPL_EmptySummarySkipsSection(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{clusters: []membit.Cluster{{"label": "ETH"}}}
	summarizer := &fakeSummarizer{res: analyst.Result{Text: ""}, ok: true}

	out, err := runRoot(t, newTestApp(search, summarizer), "eth\nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(out, "Gemini summary") {
		t.Fatalf("expected no summary section for empty text, got %q", out)
	}
}

func TestREPL_DisabledSummarizerSkipsSection(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{clusters: []membit.Cluster{{"label": "ETH"}}}
	summarizer := &fakeSummarizer{ok: false}

	out, err := runRoot(t, newTestApp(search, summarizer), "eth\nexit\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(out, "Gemini summary") {
		t.Fatalf("expected no summary section when disabled, got %q", out)
	}
}

func TestREPL_NoSummaryFlag(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{clusters: []membit.Cluster{{"label": "ETH"}}}
	summarizer := &fakeSummarizer{res: analyst.Result{Text: "unused"}, ok: true}

	_, err := runRoot(t, newTestApp(search, summarizer), "eth\nexit\n", "--no-summary")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if summarizer.calls != 0 {
		t.Fatalf("expected no summarizer call with --no-summary, got %d", summarizer.calls)
	}
}

func TestREPL_LimitFlags(t *testing.T) {
	t.Parallel()

	search := &fakeSearch{clusters: []membit.Cluster{{"label": "ETH"}}, posts: []membit.Post{{"text": "hi"}}}
	_, err := runRoot(t, newTestApp(search, nil), "eth\nexit\n", "--clusters", "3", "--posts", "2")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if search.lastClusterLimit != 3 {
		t.Fatalf("expected cluster limit 3, got %d", search.lastClusterLimit)
	}
	if search.lastPostLimit != 2 {
		t.Fatalf("expected post limit 2, got %d", search.lastPostLimit)
	}
}
