package config

import (
	"fmt"

	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/concave-dev/s3mctl/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command.
// It never touches the settings file.
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := ValidateLogLevel(); err != nil {
		return err
	}

	return ValidateTimeout()
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"json":  true,
		"yaml":  true,
		"table": true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: json, yaml, table", Global.Output)
		return fmt.Errorf("invalid output format - valid: json, yaml, table")
	}
	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return fmt.Errorf("%w - valid: DEBUG, INFO, WARN, ERROR", err)
	}
	return nil
}

// ValidateTimeout validates the --timeout flag
func ValidateTimeout() error {
	return validate.ValidateTimeoutSeconds(Global.Timeout, "--timeout")
}
