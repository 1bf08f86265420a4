// Package commands contains all CLI command definitions for s3mctl.
package commands

import (
	"github.com/spf13/cobra"
)

// Cluster command group
var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Manage streaming message-queue clusters",
	Long:  "Subcommand form of the root action flags. Each subcommand runs the same operation.",
}

// Cluster deploy command
var clusterDeployCmd = &cobra.Command{
	Use:     "deploy",
	Aliases: []string{"provision"},
	Short:   "Provision the cluster defined in the settings file",
	Long:    "Provision the cluster defined in the settings file (same as --deploy_mq).",
	Args:    cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Cluster extend command
var clusterExtendCmd = &cobra.Command{
	Use:   "extend",
	Short: "Extend the lifetime of the cluster defined in the settings file",
	Long:  "Extend the lifetime of the cluster defined in the settings file (same as --extend).",
	Args:  cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Cluster list command
var clusterLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List clusters and their remaining lifetime",
	Long:    "List all clusters of the configured type (same as --list_clusters).",
	Args:    cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Cluster get command
var clusterGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one cluster",
	Long:  "Fetch a single cluster by name (same as --get_cluster NAME).",
	Args:  cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// SetupClusterCommands initializes cluster commands
func SetupClusterCommands() {
	clusterCmd.AddCommand(clusterDeployCmd)
	clusterCmd.AddCommand(clusterExtendCmd)
	clusterCmd.AddCommand(clusterLsCmd)
	clusterCmd.AddCommand(clusterGetCmd)
}

// GetClusterCommands returns the cluster command structures for handler assignment
func GetClusterCommands() (*cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command) {
	return clusterDeployCmd, clusterExtendCmd, clusterLsCmd, clusterGetCmd
}
