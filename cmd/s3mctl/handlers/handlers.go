// Package handlers provides command handler functions for s3mctl.
//
// Each handler loads the settings file, builds an API client, runs one
// operation and hands the result to the display package. Handlers never
// exit the process; they return typed errors that the main package maps to
// exit statuses.
//
// The package is organized as follows:
//   - cluster.go: root flag dispatch and the four cluster operations
//   - settings.go: the settings check report
package handlers

import (
	"errors"
	"os"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/client"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/config"
	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/concave-dev/s3mctl/internal/netutil"
	"github.com/concave-dev/s3mctl/internal/settings"
)

// newAPIClient loads the settings file named by --settings and returns a
// client configured from the global flags.
func newAPIClient() (*client.S3MClient, error) {
	s, err := settings.Load(config.Global.SettingsPath)
	if err != nil {
		return nil, err
	}
	logging.Debug("Loaded settings from %s", s.Path())

	apiClient := client.NewS3MClient(s, config.Global.Timeout)
	if config.Global.Verbose {
		apiClient.EchoCurl(os.Stderr)
	}
	return apiClient, nil
}

// withHints logs a troubleshooting tip for common transport failures and
// returns err unchanged.
func withHints(err error) error {
	var transportErr *client.TransportError
	if !errors.As(err, &transportErr) {
		return err
	}

	switch {
	case netutil.IsConnectionRefusedError(err):
		logging.Error("TIP: nothing is listening at %s", transportErr.URL)
		logging.Error("     Check the endpoint URLs in %s", config.Global.SettingsPath)
	case netutil.IsTimeoutError(err):
		logging.Error("TIP: no answer within %ds; raise --timeout or pass --timeout=0 to wait indefinitely",
			config.Global.Timeout)
	}
	return err
}
