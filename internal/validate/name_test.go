package validate

import (
	"strings"
	"testing"
)

// TestClusterNameFormat tests ClusterNameFormat function
func TestClusterNameFormat(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "simple lowercase", input: "flowcept"},
		{name: "mixed case with digits", input: "FlowMQ01"},
		{name: "hyphens and underscores", input: "flow-mq_test"},
		{name: "dots", input: "mq.v2"},
		{name: "single character", input: "a"},
		{name: "empty", input: "", expectError: true},
		{name: "leading hyphen", input: "-mq", expectError: true},
		{name: "slash", input: "mq/../admin", expectError: true},
		{name: "space", input: "my cluster", expectError: true},
		{name: "query characters", input: "mq?x=1", expectError: true},
		{name: "too long", input: strings.Repeat("a", 129), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ClusterNameFormat(tt.input)
			if tt.expectError && err == nil {
				t.Errorf("ClusterNameFormat(%q) expected error", tt.input)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ClusterNameFormat(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}
