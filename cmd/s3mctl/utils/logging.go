// Package utils provides utility functions for the s3mctl CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/config"
	"github.com/concave-dev/s3mctl/internal/logging"
)

// RestyLogger implements resty.Logger interface and routes logs through structured logging.
// Resty's debug output includes raw request headers and the generated curl
// command, so Secrets (when set) is applied to every message before logging.
type RestyLogger struct {
	Secrets *strings.Replacer
}

// Errorf routes error messages through structured logging.
func (s RestyLogger) Errorf(format string, v ...interface{}) {
	logging.Error("%s", s.mask(format, v))
}

// Warnf routes warning messages through structured logging.
func (s RestyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn("%s", s.mask(format, v))
}

// Debugf routes debug messages through structured logging.
func (s RestyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug("%s", s.mask(format, v))
}

func (s RestyLogger) mask(format string, v []interface{}) string {
	msg := fmt.Sprintf(format, v...)
	if s.Secrets != nil {
		msg = s.Secrets.Replace(msg)
	}
	return msg
}

// SetupLogging configures CLI logging from DEBUG=true or the --log-level
// flag. The flag defaults to ERROR so stdout carries only command results.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}
	logging.SetLevel(config.Global.LogLevel)
}
