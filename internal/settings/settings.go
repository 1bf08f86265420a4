// Package settings loads the YAML settings file that drives every s3mctl
// operation: the API token, the cluster identity and sizing, and the endpoint
// URL templates of the provisioning service.
//
// SETTINGS LIFECYCLE:
// A Settings value is loaded once per invocation, derives the request header
// set from the token, and is then handed read-only to the API client. Nothing
// in this package keeps process-wide state.
//
// VALIDATION MODEL:
// Load only fails when the file is missing, unreadable, unparsable or lacks
// the token. Everything else is checked at the point of use by Require, which
// knows the keys each operation reads. A deploy therefore never fails because
// list_clusters is missing.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Provisioning request body layouts. The service has accepted the resource
// block under different keys over time; the settings file selects one.
const (
	SchemaResourceOptions  = "resourceOptions"
	SchemaResourceSettings = "resourceSettings"
	SchemaInline           = "inline"
)

// Settings is the parsed settings file.
type Settings struct {
	Token       string      `yaml:"token"`
	StreamingMQ StreamingMQ `yaml:"streaming_mq"`

	path string
}

// StreamingMQ holds the message-queue cluster section of the settings file.
type StreamingMQ struct {
	ClusterName      string         `yaml:"cluster_name"`
	ClusterType      string         `yaml:"cluster_type"`
	ClusterResources map[string]any `yaml:"cluster_resources"`

	// Kind and RequestSchema are optional and fall back to
	// config.DefaultClusterKind and SchemaResourceOptions.
	Kind          string `yaml:"kind,omitempty"`
	RequestSchema string `yaml:"request_schema,omitempty"`

	// Endpoint URL templates with ${CLUSTER_TYPE} / ${CLUSTER_NAME} placeholders
	ProvisionCluster string `yaml:"provision_cluster"`
	Extend           string `yaml:"extend,omitempty"`
	GetCluster       string `yaml:"get_cluster"`
	ListClusters     string `yaml:"list_clusters"`
}

// LoadErrorKind classifies settings file failures.
type LoadErrorKind int

const (
	ErrNotFound LoadErrorKind = iota
	ErrUnreadable
	ErrParse
)

// LoadError is returned by Load when the settings file cannot be used at all.
type LoadError struct {
	Path string
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("settings file not found at %s", e.Path)
	case ErrParse:
		return fmt.Sprintf("error parsing settings file: %v", e.Err)
	default:
		return fmt.Sprintf("failed to read settings file %s: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and parses the settings file at path.
func Load(path string) (*Settings, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Kind: ErrNotFound, Err: fs.ErrNotExist}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Kind: ErrNotFound, Err: err}
		}
		return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: err}
	}

	return Parse(path, data)
}

// Parse decodes settings from YAML bytes. path is only used in errors.
func Parse(path string, data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &LoadError{Path: path, Kind: ErrParse, Err: err}
	}
	s.path = path

	// The header set cannot be built without a token
	if err := s.requireKey("token", s.Token, ""); err != nil {
		return nil, err
	}

	return &s, nil
}

// Path returns the file the settings were loaded from.
func (s *Settings) Path() string {
	return s.path
}

// Headers returns the request header set derived from the token. The token is
// sent verbatim as the Authorization value, without a scheme prefix.
func (s *Settings) Headers() map[string]string {
	return map[string]string{
		"Authorization": s.Token,
		"Content-Type":  "application/json",
	}
}

// Redacted returns a copy safe to print, with the token masked.
func (s *Settings) Redacted() Settings {
	c := *s
	c.Token = RedactToken(s.Token)
	return c
}

// RedactToken masks all but the last four characters of a token.
func RedactToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
