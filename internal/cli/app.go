package cli

import (
	"context"

	"github.com/pzshine/membit-prediction-market-insight/internal/analyst"
	"github.com/pzshine/membit-prediction-market-insight/internal/logging"
	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
)

// SearchClient is the slice of the Membit client the commands consume.
type SearchClient interface {
	ClusterSearch(ctx context.Context, query string, limit int) ([]membit.Cluster, error)
	PostSearch(ctx context.Context, query string, limit int) ([]membit.Post, error)
}

// Summarizer is the optional cluster summarization hook. Implementations
// report ok=false when the feature is disabled.
type Summarizer interface {
	Analyze(ctx context.Context, query string, clusters []membit.Cluster) (analyst.Result, bool)
}

// App wires the clients and options the commands run against.
type App struct {
	Logger     logging.Logger
	Search     SearchClient
	Summarizer Summarizer

	clusterLimit int
	postLimit    int
	noSummary    bool
	verbose      bool
	noColor      bool
}
