// Package urltemplate expands "${NAME}" placeholders in endpoint URL templates.
//
// Substitution is explicit: every placeholder referenced by a template must be
// supplied, otherwise Expand fails with a MissingVarError instead of leaving
// the placeholder in the URL. Values are path-escaped before insertion.
package urltemplate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Placeholder names used by the settings file URL templates.
const (
	ClusterType = "CLUSTER_TYPE"
	ClusterName = "CLUSTER_NAME"
)

var placeholderRegex = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// MissingVarError reports a placeholder that had no (or an empty) value.
type MissingVarError struct {
	Name     string
	Template string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("no value for placeholder ${%s} in URL template %q", e.Name, e.Template)
}

// Vars maps placeholder names to substitution values.
type Vars map[string]string

// Expand replaces every ${NAME} in tmpl with the path-escaped value of
// vars[NAME]. Variables not referenced by the template are ignored.
func Expand(tmpl string, vars Vars) (string, error) {
	var missing *MissingVarError

	out := placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := placeholderRegex.FindStringSubmatch(match)[1]
		value, ok := vars[name]
		if !ok || value == "" {
			if missing == nil {
				missing = &MissingVarError{Name: name, Template: tmpl}
			}
			return match
		}
		return url.PathEscape(value)
	})

	if missing != nil {
		return "", missing
	}
	return out, nil
}

// Placeholders returns the distinct placeholder names referenced by tmpl in
// order of first appearance.
func Placeholders(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderRegex.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// References reports whether tmpl contains the ${name} placeholder.
func References(tmpl, name string) bool {
	return strings.Contains(tmpl, "${"+name+"}")
}

// AppendSegment joins segment onto the path of base with exactly one slash
// between them. Query strings and fragments on base are preserved. segment
// must already be a single valid path segment.
func AppendSegment(base, segment string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", base, err)
	}
	return u.JoinPath(segment).String(), nil
}
