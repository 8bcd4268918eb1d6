package membit

// Cluster is one discussion cluster as returned by cluster search. The
// field set is controlled by the service, so values stay dynamic and are
// read through accessors that tolerate missing or mistyped entries.
type Cluster map[string]any

// Label returns the cluster label, or "" when absent.
func (c Cluster) Label() string { return stringValue(c, "label") }

// Summary returns the cluster summary, or "" when absent.
func (c Cluster) Summary() string { return stringValue(c, "summary") }

// Category returns the cluster category, or "" when absent.
func (c Cluster) Category() string { return stringValue(c, "category") }

// EngagementScore reports the engagement score and whether it was numeric.
func (c Cluster) EngagementScore() (float64, bool) { return numberValue(c, "engagement_score") }

// SearchScore reports the relevance score and whether it was numeric.
func (c Cluster) SearchScore() (float64, bool) { return numberValue(c, "search_score") }

// Post is one raw social post as returned by post search.
type Post map[string]any

// Platform returns the originating platform, preferring "platform" over
// "source".
func (p Post) Platform() string { return stringValue(p, "platform", "source") }

// Text returns the post body, preferring "text" over "content".
func (p Post) Text() string { return stringValue(p, "text", "content") }

// URL returns the first usable link among the aliases the service emits.
func (p Post) URL() string { return stringValue(p, "url", "link", "post_url", "permalink") }

func stringValue(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func numberValue(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
