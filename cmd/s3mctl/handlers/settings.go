package handlers

import (
	"fmt"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/client"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/config"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/display"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/utils"
	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/concave-dev/s3mctl/internal/settings"
	"github.com/spf13/cobra"
)

// exampleClusterName stands in for the caller-supplied name when checking
// the get_cluster template
const exampleClusterName = "example"

// HandleSettingsCheck loads the settings file and reports which operations it
// supports, without any network activity. Returns the first failure wrapped,
// so an incomplete file exits like a missing key would.
func HandleSettingsCheck(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	s, err := settings.Load(config.Global.SettingsPath)
	if err != nil {
		return err
	}

	checks := []struct {
		op  settings.Operation
		url func(*settings.Settings) (string, error)
	}{
		{settings.OpProvision, client.ProvisionURL},
		{settings.OpExtend, client.ExtendURL},
		{settings.OpGetCluster, func(s *settings.Settings) (string, error) {
			return client.GetClusterURL(s, exampleClusterName)
		}},
		{settings.OpListClusters, client.ListClustersURL},
	}

	report := display.SettingsReport{
		Path:        s.Path(),
		Token:       settings.RedactToken(s.Token),
		ClusterName: s.StreamingMQ.ClusterName,
		ClusterType: s.StreamingMQ.ClusterType,
	}

	var firstErr error
	failed := 0
	for _, check := range checks {
		result := display.CheckResult{Operation: string(check.op)}

		err := s.Require(check.op)
		if err == nil {
			result.URL, err = check.url(s)
		}
		if err != nil {
			result.Error = err.Error()
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
		report.Operations = append(report.Operations, result)
	}

	if err := display.PrintSettingsReport(report); err != nil {
		return err
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d operations cannot run: %w", failed, len(checks), firstErr)
	}
	logging.Success("Settings file %s supports all operations", s.Path())
	return nil
}
