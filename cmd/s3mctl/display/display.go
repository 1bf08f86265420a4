// Package display provides output formatting and display functions for s3mctl.
//
// The provisioning service owns the shape of its responses, so documents are
// passed through rather than modeled: JSON output re-indents the response
// bytes without changing them, YAML output converts the same document, and
// table output flattens it into FIELD/VALUE rows. Only the cluster list has a
// dedicated layout.
//
// The display functions handle:
//   - Pass-through of API documents in json, yaml and table form
//   - The per-cluster "still has ... remaining" summary of the list operation
//   - The per-operation report of the settings check command
//
// All functions write to the package writer (stdout unless a test swaps it)
// and honor config.Global.Output.
package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/client"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/config"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// out is where results are written
var out io.Writer = os.Stdout

// PrintDocument writes an API response in the configured output format.
func PrintDocument(raw json.RawMessage) error {
	switch config.Global.Output {
	case "yaml":
		return printYAML(raw)
	case "table":
		return printFieldTable(raw)
	default:
		return printJSON(raw)
	}
}

// PrintClusterList writes the list operation result. In json and yaml mode
// one summary line per cluster precedes the full, unmodified response. In
// table mode a cluster table replaces both.
func PrintClusterList(list *client.ClusterList) error {
	if config.Global.Output == "table" {
		printClusterTable(list.Clusters)
		return nil
	}

	for _, c := range list.Clusters {
		fmt.Fprintf(out, "Cluster %s still has %s remaining.\n", c.Name, c.Remaining())
	}
	if len(list.Clusters) > 0 {
		fmt.Fprintln(out)
	}
	return PrintDocument(list.Raw)
}

// printClusterTable renders NAME/KIND/REMAINING/EXPIRES rows.
func printClusterTable(clusters []client.ClusterSummary) {
	if len(clusters) == 0 {
		fmt.Fprintln(out, "No clusters found")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Kind", "Remaining", "Expires"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, c := range clusters {
		expires := "-"
		if !c.Expires.IsZero() {
			expires = humanize.Time(c.Expires)
		}
		kind := c.Kind
		if kind == "" {
			kind = "-"
		}
		table.Append([]string{c.Name, kind, c.Remaining(), expires})
	}
	table.Render()
}

// CheckResult is one row of the settings check report.
type CheckResult struct {
	Operation string `json:"operation" yaml:"operation"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SettingsReport is the settings check output: where the file came from, the
// redacted token and the readiness of each operation.
type SettingsReport struct {
	Path        string        `json:"path" yaml:"path"`
	Token       string        `json:"token" yaml:"token"`
	ClusterName string        `json:"clusterName" yaml:"clusterName"`
	ClusterType string        `json:"clusterType" yaml:"clusterType"`
	Operations  []CheckResult `json:"operations" yaml:"operations"`
}

// PrintSettingsReport writes the settings check result.
func PrintSettingsReport(report SettingsReport) error {
	switch config.Global.Output {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(report)
	case "table":
		fmt.Fprintf(out, "Settings: %s\n", report.Path)
		fmt.Fprintf(out, "Token:    %s\n", report.Token)
		fmt.Fprintf(out, "Cluster:  %s (%s)\n\n", report.ClusterName, report.ClusterType)

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Operation", "Status", "URL / Error"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, r := range report.Operations {
			if r.Error != "" {
				table.Append([]string{r.Operation, "MISSING", r.Error})
			} else {
				table.Append([]string{r.Operation, "OK", r.URL})
			}
		}
		table.Render()
		return nil
	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
}

func printJSON(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format JSON output: %w", err)
	}
	buf.WriteByte('\n')
	_, err := out.Write(buf.Bytes())
	return err
}

func printYAML(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode response for YAML output: %w", err)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML output: %w", err)
	}
	return enc.Close()
}

// printFieldTable flattens a document into dotted FIELD/VALUE rows, e.g.
// lifetime.secondsRemaining or clusters[0].name.
func printFieldTable(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode response for table output: %w", err)
	}

	var rows [][]string
	flatten("", doc, &rows)
	if len(rows) == 0 {
		fmt.Fprintln(out, "(empty response)")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func flatten(prefix string, v any, rows *[][]string) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, val[k], rows)
		}
	case []any:
		if len(val) == 0 {
			*rows = append(*rows, []string{prefix, "[]"})
		}
		for i, item := range val {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), item, rows)
		}
	default:
		*rows = append(*rows, []string{prefix, scalarString(val)})
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
