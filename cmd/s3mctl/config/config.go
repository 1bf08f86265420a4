// Package config provides configuration management for the s3mctl CLI.
package config

import "github.com/concave-dev/s3mctl/internal/version"

const (
	DefaultOutput  = "json" // Results are printed as the API returned them
	DefaultTimeout = 30     // Request timeout in seconds
)

// Version returns the current s3mctl CLI version from the centralized version package
var Version = version.S3mctlVersion

// Global holds the global CLI configuration
var Global struct {
	SettingsPath string // Path to the settings YAML file
	LogLevel     string // Log level for CLI operations
	Timeout      int    // Request timeout in seconds, 0 disables
	Verbose      bool   // Print the executed request as a curl command
	Output       string // Output format: json, yaml, table
}

// Action holds the mutually exclusive root action flags
var Action struct {
	DeployMQ     bool   // --deploy_mq
	Extend       bool   // --extend
	ListClusters bool   // --list_clusters
	GetCluster   string // --get_cluster NAME
}
