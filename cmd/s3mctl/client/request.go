package client

import (
	defaults "github.com/concave-dev/s3mctl/internal/config"
	"github.com/concave-dev/s3mctl/internal/settings"
)

// ProvisionRequest builds the provisioning request body:
//
//	{"kind": ..., "name": ..., "resourceOptions": {...}}
//
// streaming_mq.request_schema selects where the resource block goes:
// resourceOptions (default), resourceSettings, or inline, which merges the
// resource keys into the top level. kind and name always win over inline keys
// of the same name.
func ProvisionRequest(s *settings.Settings) map[string]any {
	mq := s.StreamingMQ

	kind := mq.Kind
	if kind == "" {
		kind = defaults.DefaultClusterKind
	}

	body := make(map[string]any, len(mq.ClusterResources)+2)

	switch mq.RequestSchema {
	case settings.SchemaInline:
		for k, v := range mq.ClusterResources {
			body[k] = v
		}
	case settings.SchemaResourceSettings:
		body[settings.SchemaResourceSettings] = mq.ClusterResources
	default:
		body[settings.SchemaResourceOptions] = mq.ClusterResources
	}

	body["kind"] = kind
	body["name"] = mq.ClusterName
	return body
}
