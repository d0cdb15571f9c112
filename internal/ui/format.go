package ui

import (
	"fmt"

	"cascade-ca/internal/core"
)

// FormatSnapshot flattens a snapshot into "Label: value" lines, each group
// preceded by a blank line and its name.
func FormatSnapshot(snap core.ParameterSnapshot) []string {
	var out []string
	for _, g := range snap.Groups {
		out = append(out, "", g.Name)
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return out
}
