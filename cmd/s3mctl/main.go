// Package main provides the entry point for the s3mctl CLI.
//
// s3mctl issues single REST calls against the S3M streaming provisioning
// API to deploy, extend, list and inspect message-queue clusters, driven by
// a YAML settings file.
//
// INITIALIZATION FLOW:
// 1. Command structure setup (root, cluster, settings)
// 2. Global and action flag binding into the config package
// 3. Handler assignment linking commands to operations
// 4. Execution under a signal-aware context, with the returned error mapped
// to an exit status (see exit.go)
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/commands"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/config"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/handlers"
)

func init() {
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupClusterCommands()
	commands.SetupSettingsCommands()

	// Setup flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.SettingsPath, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Verbose, &config.Global.Output,
		config.DefaultTimeout, config.DefaultOutput)
	commands.SetupActionFlags(rootCmd, &config.Action.DeployMQ, &config.Action.Extend,
		&config.Action.ListClusters, &config.Action.GetCluster)

	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	deployCmd, extendCmd, lsCmd, getCmd := commands.GetClusterCommands()

	commands.RootCmd.RunE = handlers.HandleDispatch
	deployCmd.RunE = handlers.HandleDeploy
	extendCmd.RunE = handlers.HandleExtend
	lsCmd.RunE = handlers.HandleList
	getCmd.RunE = handlers.HandleGet
	commands.GetSettingsCheckCommand().RunE = handlers.HandleSettingsCheck
}

// main is the main entry point
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(ExitCode(err))
	}
}
