// Package report renders dashboard views for terminal and machine consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"launch_dash/internal/analytics"
)

// Format controls the output encoding
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

// ParseFormat accepts the names listed above, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Table, Markdown, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q (must be table, markdown, json, or yaml)", s)
	}
}

// Write renders view to w in the given format
func Write(w io.Writer, f Format, view analytics.DashboardView) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case Table, Markdown:
		_, err := io.WriteString(w, renderTables(f, view))
		return err
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

func renderTables(f Format, view analytics.DashboardView) string {
	outcomes := newWriter(f)
	outcomes.AppendHeader(table.Row{"Label", "Count"})
	for _, s := range view.Outcomes.Slices {
		outcomes.AppendRow(table.Row{s.Label, s.Count})
	}
	outcomes.AppendFooter(table.Row{"Total", view.Outcomes.Total()})
	outcomes.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	scatter := newWriter(f)
	scatter.AppendHeader(table.Row{"Payload Mass (kg)", "Class", "Booster Version Category"})
	for _, p := range view.Scatter.Points {
		scatter.AppendRow(table.Row{p.PayloadMassKg, p.Class, p.BoosterVersionCategory})
	}
	scatter.AppendFooter(table.Row{"Points", len(view.Scatter.Points), ""})
	scatter.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignCenter},
	})

	return renderTitled(f, view.Outcomes.Title, outcomes) + "\n\n" + renderTitled(f, view.Scatter.Title, scatter) + "\n"
}

func newWriter(f Format) table.Writer {
	w := table.NewWriter()
	if f == Table {
		w.SetStyle(table.StyleLight)
	}
	return w
}

// renderTitled prints the title on its own line; go-pretty wraps SetTitle text
// to the table width, which breaks titles wider than the columns
func renderTitled(f Format, title string, w table.Writer) string {
	if f == Markdown {
		return "### " + title + "\n\n" + render(f, w)
	}
	return title + "\n" + render(f, w)
}

func render(f Format, w table.Writer) string {
	if f == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
