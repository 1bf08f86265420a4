package config

import (
	"testing"
)

func TestValidateGlobalFlags(t *testing.T) {
	saved := Global
	defer func() { Global = saved }()

	tests := []struct {
		name     string
		output   string
		logLevel string
		timeout  int
		wantErr  bool
	}{
		{name: "defaults", output: "json", logLevel: "ERROR", timeout: 30},
		{name: "yaml output", output: "yaml", logLevel: "DEBUG", timeout: 0},
		{name: "table output", output: "table", logLevel: "INFO", timeout: 5},
		{name: "unknown output", output: "xml", logLevel: "ERROR", timeout: 30, wantErr: true},
		{name: "lowercase log level", output: "json", logLevel: "debug", timeout: 30, wantErr: true},
		{name: "negative timeout", output: "json", logLevel: "ERROR", timeout: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.Output = tt.output
			Global.LogLevel = tt.logLevel
			Global.Timeout = tt.timeout

			err := ValidateGlobalFlags(nil, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGlobalFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
