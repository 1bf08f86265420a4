package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testToken = "stub-token-1234"

// fakeClock is a settable clock for lifetime tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestServer(t *testing.T) (*Server, *fakeClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cfg := DefaultConfig()
	cfg.Token = testToken
	cfg.Now = clock.Now

	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv, clock
}

// do sends one request through the router.
func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeDoc(t *testing.T, w *httptest.ResponseRecorder) ClusterDocument {
	t.Helper()
	var doc ClusterDocument
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not a cluster document: %v (%s)", err, w.Body.String())
	}
	return doc
}

const prefix = "/olcf/v1alpha/streaming"

func provisionBody(name string) map[string]any {
	return map[string]any{
		"kind":            "dragonfly-general",
		"name":            name,
		"resourceOptions": map[string]any{"cpus": 2},
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	w := do(t, srv.Handler(), "GET", "/health", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" || resp.Version == "" {
		t.Errorf("health = %+v", resp)
	}
}

func TestAuth(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()
	path := prefix + "/rabbitmq/list_clusters"

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "missing token", token: "", want: http.StatusUnauthorized},
		{name: "wrong token", token: "nope", want: http.StatusForbidden},
		{name: "bearer prefix is not the raw token", token: "Bearer " + testToken, want: http.StatusForbidden},
		{name: "raw token", token: testToken, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(t, h, "GET", path, tt.token, nil); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestClusterLifecycle(t *testing.T) {
	srv, clock := newTestServer(t)
	h := srv.Handler()

	// Provision
	w := do(t, h, "POST", prefix+"/rabbitmq/provision_cluster", testToken, provisionBody("mq1"))
	if w.Code != http.StatusCreated {
		t.Fatalf("provision status = %d: %s", w.Code, w.Body.String())
	}
	doc := decodeDoc(t, w)
	if doc.Name != "mq1" || doc.Type != "rabbitmq" || doc.Kind != "dragonfly-general" || len(doc.ID) != 12 {
		t.Errorf("provisioned = %+v", doc)
	}
	if doc.Lifetime.SecondsRemaining != (7 * 24 * time.Hour).Seconds() {
		t.Errorf("secondsRemaining = %v", doc.Lifetime.SecondsRemaining)
	}

	// Duplicate
	w = do(t, h, "POST", prefix+"/rabbitmq/provision_cluster", testToken, provisionBody("mq1"))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate provision status = %d, want 409", w.Code)
	}

	// Time passes
	clock.Advance(24 * time.Hour)
	w = do(t, h, "GET", prefix+"/rabbitmq/cluster/mq1", testToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if got := decodeDoc(t, w).Lifetime.SecondsRemaining; got != (6 * 24 * time.Hour).Seconds() {
		t.Errorf("secondsRemaining after a day = %v", got)
	}

	// Extend resets the lifetime
	w = do(t, h, "POST", prefix+"/rabbitmq/extend/mq1", testToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("extend status = %d: %s", w.Code, w.Body.String())
	}
	if got := decodeDoc(t, w).Lifetime.SecondsRemaining; got != (7 * 24 * time.Hour).Seconds() {
		t.Errorf("secondsRemaining after extend = %v", got)
	}

	// List
	w = do(t, h, "GET", prefix+"/rabbitmq/list_clusters", testToken, nil)
	var list struct {
		Clusters []ClusterDocument `json:"clusters"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Clusters) != 1 || list.Clusters[0].Name != "mq1" {
		t.Errorf("list = %+v", list.Clusters)
	}

	// Other types do not see it
	w = do(t, h, "GET", prefix+"/redis/list_clusters", testToken, nil)
	if w.Body.String() != `{"clusters":[]}` {
		t.Errorf("other type list = %s", w.Body.String())
	}

	// Expiry
	clock.Advance(8 * 24 * time.Hour)
	if w := do(t, h, "GET", prefix+"/rabbitmq/cluster/mq1", testToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after expiry status = %d, want 404", w.Code)
	}
}

func TestExtendUnknownCluster(t *testing.T) {
	srv, _ := newTestServer(t)
	w := do(t, srv.Handler(), "POST", prefix+"/rabbitmq/extend/ghost", testToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestProvisionValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	tests := []struct {
		name string
		body any
		want int
	}{
		{name: "missing kind", body: map[string]any{"name": "a"}, want: http.StatusBadRequest},
		{name: "missing name", body: map[string]any{"kind": "k"}, want: http.StatusBadRequest},
		{name: "name with slash", body: map[string]any{"kind": "k", "name": "a/b"}, want: http.StatusBadRequest},
		{name: "not JSON object", body: []string{"a"}, want: http.StatusBadRequest},
		{name: "resourceSettings layout", body: map[string]any{"kind": "k", "name": "b", "resourceSettings": map[string]any{"cpus": 1}}, want: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, "POST", prefix+"/rabbitmq/provision_cluster", testToken, tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestProvisionInlineResources(t *testing.T) {
	srv, _ := newTestServer(t)
	body := map[string]any{"kind": "k", "name": "inline", "cpus": 4, "nodes": 2}

	w := do(t, srv.Handler(), "POST", prefix+"/rabbitmq/provision_cluster", testToken, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	doc := decodeDoc(t, w)
	if doc.ResourceOptions["cpus"] != float64(4) || doc.ResourceOptions["nodes"] != float64(2) {
		t.Errorf("resourceOptions = %v", doc.ResourceOptions)
	}
	if _, ok := doc.ResourceOptions["name"]; ok {
		t.Error("inline resources should not include name")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		valid  bool
	}{
		{name: "default", modify: func(c *Config) {}, valid: true},
		{name: "bad address", modify: func(c *Config) { c.BindAddr = "localhost" }},
		{name: "bad port", modify: func(c *Config) { c.BindPort = 70000 }},
		{name: "relative prefix", modify: func(c *Config) { c.Prefix = "api" }},
		{name: "zero lifetime", modify: func(c *Config) { c.Lifetime = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)
			err := c.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}

func TestStartAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := DefaultConfig()
	cfg.BindPort = 0

	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
