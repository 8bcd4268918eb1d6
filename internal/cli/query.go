package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/pzshine/membit-prediction-market-insight/internal/render"
)

// runQuery executes one question cycle: clusters, posts, optional summary.
// The returned error is a cluster search failure; post and summary
// failures are reported in place and do not interrupt the cycle.
func (a *App) runQuery(ctx context.Context, out io.Writer, query string) error {
	log := a.Logger.WithField("query_id", shortID())
	log.WithField("query", query).Debug("Fetching clusters")

	clusters, err := a.Search.ClusterSearch(ctx, query, a.clusterLimit)
	if err != nil {
		log.WithError(err).Debug("Cluster search failed")
		return err
	}
	render.Header(out, "=== Related clusters ===")
	fmt.Fprintln(out, render.Clusters(clusters))

	log.WithField("clusters", len(clusters)).Debug("Fetching posts")
	posts, err := a.Search.PostSearch(ctx, query, a.postLimit)
	if err != nil {
		log.WithError(err).Debug("Post search failed")
		fmt.Fprintf(out, "\n(Unable to fetch individual posts: %v)\n", err)
		posts = nil
	}
	if len(posts) > 0 {
		render.Header(out, "=== Related posts (with links) ===")
		fmt.Fprintln(out, render.Posts(posts))
	}

	if a.noSummary || a.Summarizer == nil {
		return nil
	}
	res, ok := a.Summarizer.Analyze(ctx, query, clusters)
	if !ok {
		return nil
	}
	if text := res.Render(); text != "" {
		render.Header(out, "=== Gemini summary ===")
		fmt.Fprintln(out, text)
	}
	return nil
}

func shortID() string {
	return uuid.NewString()[:8]
}
