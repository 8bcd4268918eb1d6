package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
)

func newAskCmd(app *App) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return fmt.Errorf("question must not be empty")
			}
			switch output {
			case "text":
				if err := app.runQuery(cmd.Context(), cmd.OutOrStdout(), query); err != nil {
					return fmt.Errorf("cluster search: %w", err)
				}
				return nil
			case "json":
				return app.runAskJSON(cmd, query)
			default:
				return fmt.Errorf("unsupported output format %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: json|text")
	return cmd
}

type askResponse struct {
	Query        string           `json:"query"`
	Clusters     []membit.Cluster `json:"clusters"`
	Posts        []membit.Post    `json:"posts"`
	Summary      string           `json:"summary,omitempty"`
	SummaryError string           `json:"summary_error,omitempty"`
}

func (a *App) runAskJSON(cmd *cobra.Command, query string) error {
	ctx := cmd.Context()

	clusters, err := a.Search.ClusterSearch(ctx, query, a.clusterLimit)
	if err != nil {
		return fmt.Errorf("cluster search: %w", err)
	}
	posts, err := a.Search.PostSearch(ctx, query, a.postLimit)
	if err != nil {
		a.Logger.WithError(err).Warn("Post search failed; emitting clusters only")
		posts = []membit.Post{}
	}

	resp := askResponse{Query: query, Clusters: clusters, Posts: posts}
	if !a.noSummary && a.Summarizer != nil {
		if res, ok := a.Summarizer.Analyze(ctx, query, clusters); ok {
			if res.Err != nil {
				resp.SummaryError = res.Err.Error()
			} else {
				resp.Summary = res.Text
			}
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
