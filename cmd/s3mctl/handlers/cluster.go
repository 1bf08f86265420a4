// Package handlers provides command handler functions for s3mctl cluster
// operations.
//
// The root command's action flags and the "cluster" subcommands land on the
// same handlers, so both spellings behave identically.
package handlers

import (
	"fmt"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/config"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/display"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/utils"
	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/concave-dev/s3mctl/internal/validate"
	"github.com/spf13/cobra"
)

// HandleDispatch runs the operation selected by the root action flags. Cobra
// has already guaranteed that exactly one of them is set.
func HandleDispatch(cmd *cobra.Command, args []string) error {
	switch {
	case config.Action.DeployMQ:
		return HandleDeploy(cmd, args)
	case config.Action.Extend:
		return HandleExtend(cmd, args)
	case config.Action.ListClusters:
		return HandleList(cmd, args)
	default:
		return HandleGet(cmd, []string{config.Action.GetCluster})
	}
}

// HandleDeploy handles --deploy_mq and "cluster deploy".
func HandleDeploy(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := apiClient.ProvisionCluster(cmd.Context())
	if err != nil {
		return withHints(err)
	}

	if err := display.PrintDocument(raw); err != nil {
		return err
	}
	logging.Success("Provisioning request accepted")
	return nil
}

// HandleExtend handles --extend and "cluster extend".
func HandleExtend(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := apiClient.ExtendCluster(cmd.Context())
	if err != nil {
		return withHints(err)
	}

	if err := display.PrintDocument(raw); err != nil {
		return err
	}
	logging.Success("Cluster lifetime extended")
	return nil
}

// HandleGet handles --get_cluster NAME and "cluster get NAME". The name is
// checked before the settings file is read.
func HandleGet(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	// args[0] is safe - argument validation handled by Cobra command definition
	name := args[0]
	if err := validate.ClusterNameFormat(name); err != nil {
		return fmt.Errorf("invalid cluster name %q: %w", name, err)
	}

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := apiClient.GetCluster(cmd.Context(), name)
	if err != nil {
		return withHints(err)
	}

	if err := display.PrintDocument(raw); err != nil {
		return err
	}
	logging.Success("Retrieved cluster %s", name)
	return nil
}

// HandleList handles --list_clusters and "cluster ls".
func HandleList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := apiClient.ListClusters(cmd.Context())
	if err != nil {
		return withHints(err)
	}

	if err := display.PrintClusterList(list); err != nil {
		return err
	}
	logging.Success("Successfully retrieved %d clusters", len(list.Clusters))
	return nil
}
