// Package commands provides the command tree for s3mctl.
//
// The root command carries the action flags of the original tool
// (--deploy_mq, --extend, --list_clusters, --get_cluster NAME). Exactly one
// of them must be given; cobra enforces this through a mutually exclusive,
// one-required flag group before any handler runs, so an invalid combination
// never reads the settings file.
//
// COMMAND STRUCTURE:
//   - (root): flag-driven dispatch to one operation
//   - cluster: kubectl-style aliases (deploy, extend, ls, get NAME)
//   - settings: settings file inspection (check)
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "s3mctl",
	Short: "Deploy, extend, list and inspect S3M streaming message-queue clusters",
	Long: `s3mctl drives the S3M streaming provisioning API from a YAML settings
file holding the API token, the cluster definition and the endpoint URL
templates.

Each invocation performs exactly one operation, prints the JSON answer of the
service and exits.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	Example: `  # Provision the cluster described in the settings file
  s3mctl --settings settings.yaml --deploy_mq

  # Extend its lifetime
  s3mctl --settings settings.yaml --extend

  # List clusters with remaining lifetime
  s3mctl --settings settings.yaml --list_clusters

  # Fetch one cluster
  s3mctl --settings settings.yaml --get_cluster flowcept-mq

  # Same operations, kubectl style
  s3mctl --settings settings.yaml cluster ls -o table
  s3mctl --settings settings.yaml cluster get flowcept-mq -o yaml

  # Show the request that was sent
  s3mctl --settings settings.yaml --extend --verbose

  # Check which operations the settings file supports
  s3mctl --settings settings.yaml settings check`,
	// RunE will be set by the main package that imports this
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(clusterCmd)
	RootCmd.AddCommand(settingsCmd)
}

// SetupGlobalFlags configures all global persistent flags. --settings is
// required by every command.
func SetupGlobalFlags(rootCmd *cobra.Command, settingsPathPtr *string, logLevelPtr *string,
	timeoutPtr *int, verbosePtr *bool, outputPtr *string,
	defaultTimeout int, defaultOutput string) {
	rootCmd.PersistentFlags().StringVar(settingsPathPtr, "settings", "",
		"Path to the settings YAML file")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", defaultTimeout,
		"Request timeout in seconds (0 disables)")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Print each executed request as a curl command (token redacted)")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", defaultOutput,
		"Output format: json, yaml, table")

	_ = rootCmd.MarkPersistentFlagRequired("settings")
}

// SetupActionFlags binds the root action flags and declares them as a group
// of which exactly one must be set.
func SetupActionFlags(rootCmd *cobra.Command, deployPtr, extendPtr, listPtr *bool, getPtr *string) {
	rootCmd.Flags().BoolVar(deployPtr, "deploy_mq", false,
		"Provision the cluster defined in the settings file")
	rootCmd.Flags().BoolVar(extendPtr, "extend", false,
		"Extend the lifetime of the cluster defined in the settings file")
	rootCmd.Flags().BoolVar(listPtr, "list_clusters", false,
		"List all clusters and their remaining lifetime")
	rootCmd.Flags().StringVar(getPtr, "get_cluster", "",
		"Get the cluster with the given name")

	rootCmd.MarkFlagsMutuallyExclusive("deploy_mq", "extend", "list_clusters", "get_cluster")
	rootCmd.MarkFlagsOneRequired("deploy_mq", "extend", "list_clusters", "get_cluster")
}
