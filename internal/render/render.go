package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
)

const (
	noClustersMessage = "No related clusters found."
	noPostsMessage    = "No related posts (tweets) were found."

	untitledCluster = "Untitled cluster"
	noSummary       = "No summary provided."
	uncategorized   = "Uncategorized"
	unknownPlatform = "unknown"
	linkUnavailable = "Link unavailable."

	maxSnippetRuneCount = 200
)

var headerColor = color.New(color.FgCyan, color.Bold)

// Header writes a section header preceded by a blank line. Color degrades
// to plain text on non-terminal writers.
func Header(w io.Writer, title string) {
	fmt.Fprintln(w)
	headerColor.Fprintln(w, title)
}

// Clusters renders the numbered cluster list, or a fixed message when
// nothing was found.
func Clusters(clusters []membit.Cluster) string {
	if len(clusters) == 0 {
		return noClustersMessage
	}

	var lines []string
	for i, cluster := range clusters {
		label := cluster.Label()
		if label == "" {
			label = untitledCluster
		}
		summary := cluster.Summary()
		if summary == "" {
			summary = noSummary
		}
		category := cluster.Category()
		if category == "" {
			category = uncategorized
		}

		lines = append(lines, fmt.Sprintf("%d. %s [%s]", i+1, label, category))
		lines = append(lines, "   ↳ "+summary)

		var stats []string
		if engagement, ok := cluster.EngagementScore(); ok {
			stats = append(stats, fmt.Sprintf("engagement=%.2f", engagement))
		}
		if relevance, ok := cluster.SearchScore(); ok {
			stats = append(stats, fmt.Sprintf("relevance=%.3f", relevance))
		}
		if len(stats) > 0 {
			lines = append(lines, fmt.Sprintf("   (%s)", strings.Join(stats, ", ")))
		}
	}
	return strings.Join(lines, "\n")
}

// Posts renders the numbered post list with source links, or a fixed
// message when nothing was found.
func Posts(posts []membit.Post) string {
	if len(posts) == 0 {
		return noPostsMessage
	}

	var lines []string
	for i, post := range posts {
		platform := post.Platform()
		if platform == "" {
			platform = unknownPlatform
		}
		url := post.URL()
		if url == "" {
			url = linkUnavailable
		}
		snippet := truncateRunes(strings.TrimSpace(post.Text()), maxSnippetRuneCount)

		lines = append(lines, fmt.Sprintf("%d. [%s] %s", i+1, platform, snippet))
		lines = append(lines, "   ↳ "+url)
	}
	return strings.Join(lines, "\n")
}

// truncateRunes cuts input at limit code points, marking a cut with a
// single trailing ellipsis. Input at or under the limit is untouched.
func truncateRunes(input string, limit int) string {
	runes := []rune(input)
	if len(runes) <= limit {
		return input
	}
	return string(runes[:limit]) + "…"
}
