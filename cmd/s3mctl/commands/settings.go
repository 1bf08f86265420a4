package commands

import (
	"github.com/spf13/cobra"
)

// Settings command group
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect the settings file",
}

// Settings check command
var settingsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the settings file without contacting the API",
	Long: `Load the settings file and report, for each operation, either the URL it
would call or the key it is missing. The token is shown redacted.
Exits with status 1 when any operation cannot run.`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// SetupSettingsCommands initializes settings commands
func SetupSettingsCommands() {
	settingsCmd.AddCommand(settingsCheckCmd)
}

// GetSettingsCheckCommand returns the settings check command for handler assignment
func GetSettingsCheckCommand() *cobra.Command {
	return settingsCheckCmd
}
