// Package narrator composes badge assets into README content.
//
// Modules render a single asset as inline markdown or HTML. Compose lays
// them out in rows and the result gets injected into
// <!-- badgekit:<name> --> sections via the section primitives.
//
// Items within a row are space-joined (inline).
// Rows are newline-joined (line breaks).
// Break modules force a new row.
package narrator

import "strings"

// Module produces inline content for a single item.
type Module interface {
	Render() string
}

// BreakModule ends the current row of badges.
type BreakModule struct{}

// Render is empty; Compose treats breaks as row boundaries.
func (BreakModule) Render() string { return "" }

// Rows groups rendered modules into rows split at each BreakModule.
// Nil modules and blank renders are dropped, and empty rows are never
// produced, so leading, trailing or repeated breaks have no effect.
func Rows(modules []Module) [][]string {
	var rows [][]string
	var row []string
	flush := func() {
		if len(row) > 0 {
			rows = append(rows, row)
			row = nil
		}
	}

	for _, m := range modules {
		switch m.(type) {
		case nil:
			continue
		case BreakModule:
			flush()
			continue
		}
		if s := strings.TrimSpace(m.Render()); s != "" {
			row = append(row, s)
		}
	}
	flush()
	return rows
}

// Compose renders modules as space-joined rows separated by newlines.
func Compose(modules []Module) string {
	rows := Rows(modules)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}
