package settings

import (
	"errors"
	"testing"
)

func fullSettings() *Settings {
	return &Settings{
		Token: "tok",
		StreamingMQ: StreamingMQ{
			ClusterName:      "flow",
			ClusterType:      "mq",
			ClusterResources: map[string]any{"cpus": 1},
			ProvisionCluster: "http://x/${CLUSTER_TYPE}/provision_cluster",
			GetCluster:       "http://x/${CLUSTER_TYPE}/cluster/${CLUSTER_NAME}",
			ListClusters:     "http://x/${CLUSTER_TYPE}/list_clusters",
		},
	}
}

func TestRequire(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		mutate  func(s *Settings)
		wantKey string
	}{
		{name: "provision complete", op: OpProvision},
		{name: "extend complete", op: OpExtend},
		{name: "get complete", op: OpGetCluster},
		{name: "list complete", op: OpListClusters},
		{
			name:    "cluster type needed by all",
			op:      OpListClusters,
			mutate:  func(s *Settings) { s.StreamingMQ.ClusterType = "" },
			wantKey: "streaming_mq.cluster_type",
		},
		{
			name:    "provision needs name",
			op:      OpProvision,
			mutate:  func(s *Settings) { s.StreamingMQ.ClusterName = "" },
			wantKey: "streaming_mq.cluster_name",
		},
		{
			name:    "provision needs resources",
			op:      OpProvision,
			mutate:  func(s *Settings) { s.StreamingMQ.ClusterResources = nil },
			wantKey: "streaming_mq.cluster_resources",
		},
		{
			name:    "provision rejects unknown schema",
			op:      OpProvision,
			mutate:  func(s *Settings) { s.StreamingMQ.RequestSchema = "resources" },
			wantKey: "streaming_mq.request_schema",
		},
		{
			name:   "provision accepts inline schema",
			op:     OpProvision,
			mutate: func(s *Settings) { s.StreamingMQ.RequestSchema = SchemaInline },
		},
		{
			name:    "extend without any template",
			op:      OpExtend,
			mutate:  func(s *Settings) { s.StreamingMQ.ProvisionCluster = "" },
			wantKey: "streaming_mq.provision_cluster",
		},
		{
			name: "extend with own template",
			op:   OpExtend,
			mutate: func(s *Settings) {
				s.StreamingMQ.ProvisionCluster = ""
				s.StreamingMQ.Extend = "http://x/${CLUSTER_TYPE}/extend"
			},
		},
		{
			name:    "list ignores missing get template but needs its own",
			op:      OpListClusters,
			mutate:  func(s *Settings) { s.StreamingMQ.GetCluster = ""; s.StreamingMQ.ListClusters = "" },
			wantKey: "streaming_mq.list_clusters",
		},
		{
			name:   "get does not need cluster name setting",
			op:     OpGetCluster,
			mutate: func(s *Settings) { s.StreamingMQ.ClusterName = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fullSettings()
			if tt.mutate != nil {
				tt.mutate(s)
			}

			err := s.Require(tt.op)
			if tt.wantKey == "" {
				if err != nil {
					t.Fatalf("Require(%s) unexpected error: %v", tt.op, err)
				}
				return
			}

			var ke *KeyError
			if !errors.As(err, &ke) {
				t.Fatalf("Require(%s) error = %v, want *KeyError", tt.op, err)
			}
			if ke.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", ke.Key, tt.wantKey)
			}
			if ke.Operation != tt.op {
				t.Errorf("Operation = %q, want %q", ke.Operation, tt.op)
			}
		})
	}
}

func TestRequireUnknownOperation(t *testing.T) {
	if err := fullSettings().Require(Operation("delete")); err == nil {
		t.Error("Require(delete) expected error")
	}
}
