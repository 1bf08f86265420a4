package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/concave-dev/s3mctl/internal/settings"
	"github.com/concave-dev/s3mctl/internal/urltemplate"
	"github.com/concave-dev/s3mctl/internal/validate"
)

// provisionSegment is the path segment the extend URL is derived from when no
// extend template is configured
const provisionSegment = "provision_cluster"

// ProvisionURL expands the provision_cluster template.
func ProvisionURL(s *settings.Settings) (string, error) {
	mq := s.StreamingMQ
	return expandEndpoint("streaming_mq.provision_cluster", mq.ProvisionCluster, urltemplate.Vars{
		urltemplate.ClusterType: mq.ClusterType,
	}, settings.OpProvision)
}

// ExtendURL builds the extend URL for the configured cluster.
//
// With an extend template the placeholders are substituted and, if the
// template has no ${CLUSTER_NAME}, the name is appended as a path segment.
// Without one the URL is derived from the provisioning URL by replacing its
// provision_cluster segment with "extend" and appending the name.
func ExtendURL(s *settings.Settings) (string, error) {
	mq := s.StreamingMQ
	if err := validate.ClusterNameFormat(mq.ClusterName); err != nil {
		return "", &settings.KeyError{Key: "streaming_mq.cluster_name", Operation: settings.OpExtend, Err: err}
	}

	vars := urltemplate.Vars{
		urltemplate.ClusterType: mq.ClusterType,
		urltemplate.ClusterName: mq.ClusterName,
	}

	if mq.Extend != "" {
		u, err := expandEndpoint("streaming_mq.extend", mq.Extend, vars, settings.OpExtend)
		if err != nil {
			return "", err
		}
		if urltemplate.References(mq.Extend, urltemplate.ClusterName) {
			return u, nil
		}
		return urltemplate.AppendSegment(u, url.PathEscape(mq.ClusterName))
	}

	base, err := expandEndpoint("streaming_mq.provision_cluster", mq.ProvisionCluster, vars, settings.OpExtend)
	if err != nil {
		return "", err
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return "", &settings.KeyError{Key: "streaming_mq.provision_cluster", Operation: settings.OpExtend, Err: err}
	}

	segments := strings.Split(parsed.Path, "/")
	replaced := false
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == provisionSegment {
			segments[i] = "extend"
			replaced = true
			break
		}
	}
	if !replaced {
		return "", &settings.KeyError{
			Key:       "streaming_mq.extend",
			Operation: settings.OpExtend,
			Err: fmt.Errorf("not set, and %q has no %s path segment to derive it from",
				base, provisionSegment),
		}
	}
	parsed.Path = strings.Join(segments, "/")
	parsed.RawPath = ""

	return urltemplate.AppendSegment(parsed.String(), url.PathEscape(mq.ClusterName))
}

// GetClusterURL expands the get_cluster template for the given cluster name.
// A template without ${CLUSTER_NAME} gets the name appended.
func GetClusterURL(s *settings.Settings, name string) (string, error) {
	mq := s.StreamingMQ
	u, err := expandEndpoint("streaming_mq.get_cluster", mq.GetCluster, urltemplate.Vars{
		urltemplate.ClusterType: mq.ClusterType,
		urltemplate.ClusterName: name,
	}, settings.OpGetCluster)
	if err != nil || urltemplate.References(mq.GetCluster, urltemplate.ClusterName) {
		return u, err
	}
	return urltemplate.AppendSegment(u, url.PathEscape(name))
}

// ListClustersURL expands the list_clusters template.
func ListClustersURL(s *settings.Settings) (string, error) {
	mq := s.StreamingMQ
	return expandEndpoint("streaming_mq.list_clusters", mq.ListClusters, urltemplate.Vars{
		urltemplate.ClusterType: mq.ClusterType,
	}, settings.OpListClusters)
}

// expandEndpoint substitutes vars into a settings URL template and checks the
// result is an absolute http(s) URL. Failures are reported against the
// settings key the template came from.
func expandEndpoint(key, tmpl string, vars urltemplate.Vars, op settings.Operation) (string, error) {
	u, err := urltemplate.Expand(tmpl, vars)
	if err != nil {
		return "", &settings.KeyError{Key: key, Operation: op, Err: err}
	}
	if err := validate.ValidateEndpointURL(u, key); err != nil {
		return "", &settings.KeyError{Key: key, Operation: op, Err: err}
	}
	return u, nil
}
