// Package validate provides settings and flag validation helpers.
//
// These wrap single-field validator checks with error messages that name the
// offending settings key or flag, so the CLI can report exactly what to fix.
package validate

import (
	"fmt"
)

// ValidateRequiredString validates that a string value is not empty. fieldName
// is reported verbatim in the error, so callers pass the YAML key or flag name.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateEndpointURL validates that an expanded request URL is an absolute
// http or https URL.
func ValidateEndpointURL(value, fieldName string) error {
	if err := ValidateField(value, "required,url,startswith=http"); err != nil {
		return fmt.Errorf("%s is not a valid http(s) URL: %q", fieldName, value)
	}
	return nil
}

// ValidateTimeoutSeconds validates a timeout flag given in whole seconds.
// Zero is allowed and disables the timeout.
func ValidateTimeoutSeconds(seconds int, fieldName string) error {
	if err := ValidateField(seconds, "min=0,max=86400"); err != nil {
		return fmt.Errorf("%s must be between 0 and 86400 seconds", fieldName)
	}
	return nil
}
