package validate

import (
	"fmt"
	"regexp"
)

var clusterNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ClusterNameFormat validates a cluster name before it is substituted into a
// request URL. Names must start with a letter or digit and may contain only
// letters, digits, dots, hyphens and underscores, which keeps them a single
// path segment. The provisioning service applies its own, stricter rules.
func ClusterNameFormat(name string) error {
	if name == "" {
		return fmt.Errorf("cluster name cannot be empty")
	}

	if err := ValidateField(name, "max=128"); err != nil {
		return fmt.Errorf("cluster name '%s' is longer than 128 characters", name)
	}

	if !clusterNameRegex.MatchString(name) {
		return fmt.Errorf("cluster name '%s' must start with a letter or digit and contain only letters, digits, '.', '-' and '_'", name)
	}

	return nil
}
