package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/utils"
)

// UnknownLifetime is shown for clusters whose entry carries no remaining
// lifetime.
const UnknownLifetime = "unknown"

// ClusterSummary is the subset of a list entry the CLI prints. The service
// owns the full document; Raw keeps it for JSON and YAML output.
type ClusterSummary struct {
	Name             string    `json:"name"`
	Kind             string    `json:"kind,omitempty"`
	SecondsRemaining float64   `json:"secondsRemaining"`
	Expires          time.Time `json:"expires,omitempty"`
	HasLifetime      bool      `json:"-"`
}

// Remaining formats the time left on the cluster, e.g. "6.98 days".
func (c ClusterSummary) Remaining() string {
	if !c.HasLifetime {
		return UnknownLifetime
	}
	return utils.FormatLifetime(c.SecondsRemaining)
}

// ClusterList is the parsed list_clusters response.
type ClusterList struct {
	Clusters []ClusterSummary
	Raw      json.RawMessage
}

// parseClusterList extracts summaries from {"clusters": [{...}, ...]}. Entries
// must be objects; name, kind and the lifetime fields are optional.
func parseClusterList(raw json.RawMessage) (*ClusterList, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("expected a JSON object: %w", err)
	}

	items, ok := utils.GetSlice(doc, "clusters")
	if !ok {
		return nil, fmt.Errorf("response has no \"clusters\" array")
	}

	list := &ClusterList{
		Clusters: make([]ClusterSummary, 0, len(items)),
		Raw:      raw,
	}
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("clusters[%d] is not an object", i)
		}

		summary := ClusterSummary{
			Name: utils.GetString(entry, "name"),
			Kind: utils.GetString(entry, "kind"),
		}
		if lifetime, ok := utils.GetMap(entry, "lifetime"); ok {
			summary.SecondsRemaining, summary.HasLifetime = utils.GetFloat(lifetime, "secondsRemaining")
			if ts, err := time.Parse(time.RFC3339, utils.GetString(lifetime, "expires")); err == nil {
				summary.Expires = ts
			}
		}
		list.Clusters = append(list.Clusters, summary)
	}
	return list, nil
}
