package membit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pzshine/membit-prediction-market-insight/internal/config"
	"github.com/pzshine/membit-prediction-market-insight/internal/logging"
)

const (
	defaultMembitURL = "https://api.membit.ai"

	clusterSearchPath = "/clusters/search"
	postSearchPath    = "/posts/search"

	// Limits documented by the service. Out-of-range values are corrected
	// silently rather than rejected.
	minSearchLimit        = 1
	maxClusterSearchLimit = 50
	maxPostSearchLimit    = 25
)

// Config holds environment configuration for the Membit API.
type Config struct {
	APIKey string
	APIURL string
	Logger logging.Logger
}

// LoadConfig loads Membit configuration from the environment.
func LoadConfig() Config {
	return Config{
		APIKey: config.GetEnv("MEMBIT_API_KEY", ""),
		APIURL: config.GetEnv("MEMBIT_API_URL", ""),
	}
}

// Client calls the Membit cluster and post search endpoints.
type Client struct {
	apiKey string
	apiURL string
	client *http.Client
	logger logging.Logger
}

// NewClient creates a Membit API client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("membit api key is required")
	}
	apiURL := cfg.APIURL
	if strings.TrimSpace(apiURL) == "" {
		apiURL = defaultMembitURL
	}
	return &Client{
		apiKey: cfg.APIKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: cfg.Logger,
	}, nil
}

// ClusterSearch fetches discussion clusters matching the query. The limit
// is clamped to the range the API accepts. Transport failures are returned
// to the caller; unexpected payload shapes yield an empty slice instead.
func (c *Client) ClusterSearch(ctx context.Context, query string, limit int) ([]Cluster, error) {
	payload, err := c.search(ctx, clusterSearchPath, query, clampLimit(limit, maxClusterSearchLimit))
	if err != nil {
		return nil, err
	}
	var clusters []Cluster
	if !c.extract(payload, "clusters", &clusters) || clusters == nil {
		return []Cluster{}, nil
	}
	return clusters, nil
}

// PostSearch fetches raw posts matching the query under the same contract
// as ClusterSearch.
func (c *Client) PostSearch(ctx context.Context, query string, limit int) ([]Post, error) {
	payload, err := c.search(ctx, postSearchPath, query, clampLimit(limit, maxPostSearchLimit))
	if err != nil {
		return nil, err
	}
	var posts []Post
	if !c.extract(payload, "posts", &posts) || posts == nil {
		return []Post{}, nil
	}
	return posts, nil
}

func (c *Client) search(ctx context.Context, path, query string, limit int) ([]byte, error) {
	endpoint, err := url.Parse(c.apiURL + path)
	if err != nil {
		return nil, fmt.Errorf("parse membit url: %w", err)
	}
	q := endpoint.Query()
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("output_format", "json")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create membit request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("membit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("membit request failed with status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read membit response: %w", err)
	}
	return payload, nil
}

// extract pulls the named list out of a search payload into dst. A payload
// that is not a JSON object, or a list that does not decode, reports false
// so the caller can fall back to an empty result. A missing key or a null
// value is not an error; dst is simply left empty.
func (c *Client) extract(payload []byte, key string, dst any) bool {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		if c.logger != nil {
			c.logger.WithField("key", key).Debug("Search response was not an object; treating as empty")
		}
		return false
	}
	raw, ok := envelope[key]
	if !ok {
		return true
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("key", key).Debug("Search response list was malformed; treating as empty")
		}
		return false
	}
	return true
}

func clampLimit(limit, max int) int {
	if limit < minSearchLimit {
		return minSearchLimit
	}
	if limit > max {
		return max
	}
	return limit
}
