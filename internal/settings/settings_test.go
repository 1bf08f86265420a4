package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSettings = `token: "abc123 secret"
streaming_mq:
  cluster_name: flowcept-mq
  cluster_type: rabbitmq
  cluster_resources:
    cpus: 2
    ram-gbs: 4
    nodes: 1
  provision_cluster: "https://s3m.example.org/olcf/v1alpha/streaming/${CLUSTER_TYPE}/provision_cluster"
  get_cluster: "https://s3m.example.org/olcf/v1alpha/streaming/${CLUSTER_TYPE}/cluster/${CLUSTER_NAME}"
  list_clusters: "https://s3m.example.org/olcf/v1alpha/streaming/${CLUSTER_TYPE}/list_clusters"
`

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, sampleSettings)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
	if s.StreamingMQ.ClusterName != "flowcept-mq" {
		t.Errorf("ClusterName = %q", s.StreamingMQ.ClusterName)
	}
	if s.StreamingMQ.ClusterType != "rabbitmq" {
		t.Errorf("ClusterType = %q", s.StreamingMQ.ClusterType)
	}
	if got := s.StreamingMQ.ClusterResources["cpus"]; got != 2 {
		t.Errorf("ClusterResources[cpus] = %v (%T), want 2", got, got)
	}
	if s.StreamingMQ.Extend != "" {
		t.Errorf("Extend = %q, want empty", s.StreamingMQ.Extend)
	}
}

// TestHeadersAuthorizationIsToken checks the token is used verbatim
func TestHeadersAuthorizationIsToken(t *testing.T) {
	tokens := []string{"abc123 secret", "Bearer eyJhbGciOi.x.y", "  padded  ", "t"}

	for _, token := range tokens {
		s, err := Parse("inline", []byte("token: "+quote(token)+"\n"))
		if err != nil {
			t.Fatalf("Parse() unexpected error for %q: %v", token, err)
		}
		h := s.Headers()
		if h["Authorization"] != token {
			t.Errorf("Authorization = %q, want %q", h["Authorization"], token)
		}
		if h["Content-Type"] != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", h["Content-Type"])
		}
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantKind LoadErrorKind
		wantMsg  string
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantKind: ErrNotFound,
			wantMsg:  "settings file not found at",
		},
		{
			name:     "empty path",
			path:     func(t *testing.T) string { return "" },
			wantKind: ErrNotFound,
			wantMsg:  "settings file not found at",
		},
		{
			name:     "invalid yaml",
			path:     func(t *testing.T) string { return writeSettings(t, "token: [unclosed\n") },
			wantKind: ErrParse,
			wantMsg:  "error parsing settings file",
		},
		{
			name:     "not a mapping",
			path:     func(t *testing.T) string { return writeSettings(t, "- a\n- b\n") },
			wantKind: ErrParse,
			wantMsg:  "error parsing settings file",
		},
		{
			name:     "directory",
			path:     func(t *testing.T) string { return t.TempDir() },
			wantKind: ErrUnreadable,
			wantMsg:  "failed to read settings file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))

			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("Load() error = %v, want *LoadError", err)
			}
			if le.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", le.Kind, tt.wantKind)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadMissingToken(t *testing.T) {
	path := writeSettings(t, "streaming_mq:\n  cluster_type: rabbitmq\n")

	_, err := Load(path)

	var ke *KeyError
	if !errors.As(err, &ke) {
		t.Fatalf("Load() error = %v, want *KeyError", err)
	}
	if ke.Key != "token" {
		t.Errorf("Key = %q, want token", ke.Key)
	}
}

func TestRedacted(t *testing.T) {
	s := &Settings{Token: "abcdefgh1234"}
	r := s.Redacted()
	if r.Token != "****1234" {
		t.Errorf("Redacted().Token = %q", r.Token)
	}
	if s.Token != "abcdefgh1234" {
		t.Error("Redacted() modified the original")
	}
	if RedactToken("abc") != "****" {
		t.Errorf("RedactToken(short) = %q", RedactToken("abc"))
	}
}
