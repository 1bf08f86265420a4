package settings

import (
	"fmt"

	"github.com/concave-dev/s3mctl/internal/validate"
)

// Operation names an API operation for point-of-use settings checks.
type Operation string

const (
	OpProvision    Operation = "deploy"
	OpExtend       Operation = "extend"
	OpGetCluster   Operation = "get-cluster"
	OpListClusters Operation = "list-clusters"
)

// KeyError reports a settings key that an operation needs but that is missing
// or invalid.
type KeyError struct {
	Key       string
	Operation Operation
	Err       error
}

func (e *KeyError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("settings key %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("settings key %s (needed by %s): %v", e.Key, e.Operation, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// Require checks the keys read by op.
func (s *Settings) Require(op Operation) error {
	mq := s.StreamingMQ

	if err := s.requireKey("streaming_mq.cluster_type", mq.ClusterType, op); err != nil {
		return err
	}

	switch op {
	case OpProvision:
		if err := s.requireKey("streaming_mq.cluster_name", mq.ClusterName, op); err != nil {
			return err
		}
		if err := s.requireKey("streaming_mq.provision_cluster", mq.ProvisionCluster, op); err != nil {
			return err
		}
		if mq.ClusterResources == nil {
			return &KeyError{Key: "streaming_mq.cluster_resources", Operation: op,
				Err: fmt.Errorf("streaming_mq.cluster_resources cannot be empty")}
		}
		if err := validate.ValidateField(mq.RequestSchema,
			"omitempty,oneof=resourceOptions resourceSettings inline"); err != nil {
			return &KeyError{Key: "streaming_mq.request_schema", Operation: op,
				Err: fmt.Errorf("must be one of %s, %s, %s; got %q",
					SchemaResourceOptions, SchemaResourceSettings, SchemaInline, mq.RequestSchema)}
		}

	case OpExtend:
		if err := s.requireKey("streaming_mq.cluster_name", mq.ClusterName, op); err != nil {
			return err
		}
		// The extend URL falls back to the provisioning template
		if mq.Extend == "" {
			if err := s.requireKey("streaming_mq.provision_cluster", mq.ProvisionCluster, op); err != nil {
				return err
			}
		}

	case OpGetCluster:
		if err := s.requireKey("streaming_mq.get_cluster", mq.GetCluster, op); err != nil {
			return err
		}

	case OpListClusters:
		if err := s.requireKey("streaming_mq.list_clusters", mq.ListClusters, op); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	return nil
}

func (s *Settings) requireKey(key, value string, op Operation) error {
	if err := validate.ValidateRequiredString(value, key); err != nil {
		return &KeyError{Key: key, Operation: op, Err: err}
	}
	return nil
}
