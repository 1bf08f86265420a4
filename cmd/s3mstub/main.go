// Package main implements s3mstub, a local emulator of the S3M streaming
// provisioning API for developing and testing s3mctl without facility
// credentials.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/concave-dev/s3mctl/internal/config"
	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/concave-dev/s3mctl/internal/netutil"
	"github.com/concave-dev/s3mctl/internal/stub"
	"github.com/concave-dev/s3mctl/internal/validate"
	"github.com/concave-dev/s3mctl/internal/version"
	"github.com/spf13/cobra"
)

// Global configuration
var flags struct {
	Listen   string        // host:port to serve on
	Prefix   string        // Route prefix of the streaming API
	Token    string        // Expected Authorization value
	Lifetime time.Duration // Cluster lifetime after provision or extend
	LogLevel string        // Log level: DEBUG, INFO, WARN, ERROR
	LogFile  string        // Optional log file, replaces stdout/stderr
}

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// Root command
var rootCmd = &cobra.Command{
	Use:   "s3mstub",
	Short: "In-memory emulator of the S3M streaming provisioning API",
	Long: `s3mstub serves the provision_cluster, extend, cluster and list_clusters
endpoints of the S3M streaming API from memory. Point the URL templates of an
s3mctl settings file at it to exercise every operation locally.

Clusters expire after --lifetime; extending a cluster resets its lifetime.`,
	Version:      version.S3mstubVersion,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	Example: `  # Serve on the default address, accepting any token
  s3mstub

  # Require a token and use short-lived clusters
  s3mstub --listen=127.0.0.1:9000 --token=dev-token --lifetime=2h

  # Matching settings file URL template
  #   provision_cluster: http://127.0.0.1:9000/olcf/v1alpha/streaming/${CLUSTER_TYPE}/provision_cluster`,
	PreRunE: validateFlags,
	RunE:    runStub,
}

func init() {
	rootCmd.Flags().StringVar(&flags.Listen, "listen", config.DefaultStubAddr,
		"Address and port to serve on (port 0 picks a free port)")
	rootCmd.Flags().StringVar(&flags.Prefix, "prefix", config.DefaultStubPrefix,
		"Route prefix of the streaming API")
	rootCmd.Flags().StringVar(&flags.Token, "token", "",
		"Required Authorization header value (empty accepts any non-empty token)")
	rootCmd.Flags().DurationVar(&flags.Lifetime, "lifetime", config.DefaultClusterLifetime,
		"Cluster lifetime after provisioning or extension")
	rootCmd.Flags().StringVar(&flags.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.Flags().StringVar(&flags.LogFile, "log-file", "",
		"Write logs to this file instead of stdout/stderr")
}

// validateFlags checks flags and sets up logging before the server starts
func validateFlags(cmd *cobra.Command, args []string) error {
	if err := logging.ValidateLogLevel(flags.LogLevel); err != nil {
		return fmt.Errorf("%w - valid: DEBUG, INFO, WARN, ERROR", err)
	}
	if _, err := validate.ParseBindAddress(flags.Listen); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	if flags.LogFile != "" {
		logDir := filepath.Dir(flags.LogFile)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		var err error
		logFileHandle, err = os.OpenFile(flags.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", flags.LogFile, err)
		}
		logging.SetOutput(logFileHandle)
	}

	logging.SetLevel(flags.LogLevel)
	logging.RedirectStandardLog(logging.NewLevelWriter("WARN", "http"))
	return nil
}

// cleanupLogFile closes the log file handle if it exists
func cleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

func runStub(cmd *cobra.Command, args []string) error {
	defer cleanupLogFile()

	addr, err := validate.ParseBindAddress(flags.Listen)
	if err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	cfg := stub.DefaultConfig()
	cfg.BindAddr = addr.Host
	cfg.BindPort = addr.Port
	cfg.Prefix = flags.Prefix
	cfg.Token = flags.Token
	cfg.Lifetime = flags.Lifetime

	server, err := stub.NewServer(cfg)
	if err != nil {
		return err
	}

	if err := server.Start(); err != nil {
		if netutil.IsAddressInUseError(err) {
			logging.Error("TIP: another process is using %s; pick a free port with --listen", flags.Listen)
		}
		return err
	}

	if flags.Token == "" {
		logging.Warn("No --token set: any non-empty Authorization header is accepted")
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logging.Info("Stub running... Press Ctrl+C to shutdown")
	sig := <-sigCh
	logging.Info("Received signal: %v", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down stub server: %v", err)
	}

	logging.Success("S3M API stub shutdown completed")
	return nil
}

// Main entry point
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
