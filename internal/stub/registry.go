package stub

import (
	"errors"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/concave-dev/s3mctl/internal/utils"
)

var (
	// ErrClusterExists is returned when provisioning a name already in use
	ErrClusterExists = errors.New("cluster already exists")

	// ErrClusterNotFound is returned for unknown or expired clusters
	ErrClusterNotFound = errors.New("cluster not found")
)

// Cluster is a provisioned cluster as the stub remembers it.
type Cluster struct {
	ID        string
	Name      string
	Kind      string
	Type      string
	Resources map[string]any
	Created   time.Time
	Expires   time.Time
}

// Lifetime is the remaining-lifetime block of a cluster document.
type Lifetime struct {
	SecondsRemaining float64   `json:"secondsRemaining"`
	Expires          time.Time `json:"expires"`
}

// ClusterDocument is the JSON form returned by every cluster endpoint.
type ClusterDocument struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Kind            string         `json:"kind"`
	Type            string         `json:"type"`
	ResourceOptions map[string]any `json:"resourceOptions"`
	Created         time.Time      `json:"created"`
	Lifetime        Lifetime       `json:"lifetime"`
}

// Document renders the cluster as seen at now.
func (c *Cluster) Document(now time.Time) ClusterDocument {
	remaining := math.Floor(c.Expires.Sub(now).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return ClusterDocument{
		ID:              c.ID,
		Name:            c.Name,
		Kind:            c.Kind,
		Type:            c.Type,
		ResourceOptions: c.Resources,
		Created:         c.Created.UTC(),
		Lifetime: Lifetime{
			SecondsRemaining: remaining,
			Expires:          c.Expires.UTC(),
		},
	}
}

type clusterKey struct {
	clusterType string
	name        string
}

// Registry is the in-memory cluster store. Clusters are scoped by type, so
// the same name may exist once per type. Expired clusters are dropped on
// access.
type Registry struct {
	mu       sync.Mutex
	clusters map[clusterKey]*Cluster
	lifetime time.Duration
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(lifetime time.Duration, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		clusters: make(map[clusterKey]*Cluster),
		lifetime: lifetime,
		now:      now,
	}
}

// Now returns the registry clock's current time.
func (r *Registry) Now() time.Time {
	return r.now()
}

// Provision creates a cluster that expires one lifetime from now.
func (r *Registry) Provision(clusterType, name, kind string, resources map[string]any) (*Cluster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)

	key := clusterKey{clusterType, name}
	if _, exists := r.clusters[key]; exists {
		return nil, ErrClusterExists
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	c := &Cluster{
		ID:        id,
		Name:      name,
		Kind:      kind,
		Type:      clusterType,
		Resources: resources,
		Created:   now,
		Expires:   now.Add(r.lifetime),
	}
	r.clusters[key] = c
	return c.copy(), nil
}

// Extend resets the cluster's expiry to one lifetime from now.
func (r *Registry) Extend(clusterType, name string) (*Cluster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)

	c, ok := r.clusters[clusterKey{clusterType, name}]
	if !ok {
		return nil, ErrClusterNotFound
	}
	c.Expires = now.Add(r.lifetime)
	return c.copy(), nil
}

// Get returns one cluster.
func (r *Registry) Get(clusterType, name string) (*Cluster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(r.now())

	c, ok := r.clusters[clusterKey{clusterType, name}]
	if !ok {
		return nil, ErrClusterNotFound
	}
	return c.copy(), nil
}

// List returns the live clusters of a type sorted by name.
func (r *Registry) List(clusterType string) []*Cluster {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(r.now())

	var out []*Cluster
	for key, c := range r.clusters {
		if key.clusterType == clusterType {
			out = append(out, c.copy())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of live clusters across all types.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(r.now())
	return len(r.clusters)
}

// pruneLocked drops expired clusters. Caller must hold r.mu.
func (r *Registry) pruneLocked(now time.Time) {
	for key, c := range r.clusters {
		if !now.Before(c.Expires) {
			delete(r.clusters, key)
		}
	}
}

func (c *Cluster) copy() *Cluster {
	cp := *c
	return &cp
}
