// Package render turns lookup results into display text. Output is
// pure and deterministic for a given result, which keeps golden-output
// tests stable.
package render

import (
	"fmt"
	"sort"
	"strings"

	"sleuthbot/internal/lookup"
)

const dividerWidth = 30

var divider = strings.Repeat("-", dividerWidth)

// Findings renders a result set for display. An empty result yields a
// single "no results" line; otherwise a header, one block per finding
// with its detail lines indented, and a trailing count summary.
func Findings(result *lookup.Result, query string) string {
	if result == nil || len(result.Findings) == 0 {
		return fmt.Sprintf("no results found for: %s", query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "results for: %s\n\n", query)

	for _, f := range result.Findings {
		typ := f.Type
		if typ == "" {
			typ = "unknown"
		}
		val := f.Value
		if val == "" {
			val = "n/a"
		}
		fmt.Fprintf(&sb, "type: %s\n", typ)
		fmt.Fprintf(&sb, "value: %s\n", val)

		// Detail insertion order is not meaningful; sort for stable output.
		keys := make([]string, 0, len(f.Details))
		for k := range f.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %s: %s\n", k, f.Details[k])
		}

		sb.WriteString(divider)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "found %d result(s)", len(result.Findings))
	return sb.String()
}
