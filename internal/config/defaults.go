// Package config provides shared default values for the s3mctl CLI and the
// s3mstub emulator.
package config

import "time"

const (
	// DefaultLogLevel is the default log level for all components
	DefaultLogLevel = "INFO"

	// DefaultClusterKind is the provisioning "kind" sent when the settings
	// file does not name one
	DefaultClusterKind = "dragonfly-general"

	// DefaultStubAddr is the listen address of the local API stub
	DefaultStubAddr = "127.0.0.1:8089"

	// DefaultStubPrefix is the route prefix the stub serves the streaming API under.
	// Matches the path layout of the production provisioning service.
	DefaultStubPrefix = "/olcf/v1alpha/streaming"

	// DefaultClusterLifetime is how long a stub cluster lives after provisioning
	// or extension
	DefaultClusterLifetime = 7 * 24 * time.Hour
)
