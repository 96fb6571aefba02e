// Package report renders the statistics store as a multi-section
// plain-text summary. Rendering is a pure function of the store.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/charmkit/logstats/internal/model"
	"github.com/charmkit/logstats/internal/stats"
)

// Options controls presentation only; the report content is identical
// either way.
type Options struct {
	// Color styles section headers. Data lines are never styled so the
	// report stays grep-friendly.
	Color bool
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func (o Options) header(text string) string {
	if !o.Color {
		return text
	}
	return headerStyle.Render(text)
}

// Render produces the report text. Sections appear in fixed order:
// warning charms, severity totals, duplicate messages, per-charm severity
// ratios, overall totals. All iteration follows the store's first-seen
// ordering, so identical input yields identical output.
func Render(store *stats.Store, opts Options) string {
	var b strings.Builder

	var warningCharms []string
	for _, cc := range store.Charms() {
		if cc.Has(model.SeverityWarning) {
			warningCharms = append(warningCharms, cc.Name)
		}
	}
	fmt.Fprintf(&b, "%s %s\n",
		opts.header("Charms that produced warning messages: "),
		strings.Join(warningCharms, ", "))

	fmt.Fprintf(&b, "%s\n", opts.header("Severity counts: "))
	for _, sc := range severityTotals(store) {
		fmt.Fprintf(&b, "  %s: %d\n", sc.sev, sc.count)
	}

	fmt.Fprintf(&b, "%s\n", opts.header("Duplicate messages:"))
	for _, mc := range store.Messages() {
		if mc.Count < 2 { // not a duplicate
			continue
		}
		fmt.Fprintf(&b, "  %s: %d -- '%s'\n", mc.Key.Severity, mc.Count, mc.Key.Message)
	}

	fmt.Fprintf(&b, "%s\n", opts.header("Message severity ratios per charm:"))
	overall := 0
	for _, cc := range store.Charms() {
		fmt.Fprintf(&b, "  %s\n", cc.Name)
		total := cc.Total()
		overall += total
		fmt.Fprintf(&b, "    Total messages: %d\n", total)
		for _, sev := range cc.Severities() {
			ratio := float64(cc.Count(sev)) / float64(total)
			fmt.Fprintf(&b, "    %s: %.2f%%\n", sev, ratio*100)
		}
	}

	fmt.Fprintf(&b, "Total analyzed log messages: %d\n", overall)
	fmt.Fprintf(&b, "Dropped log messages: %d\n", store.Dropped())

	return b.String()
}

type severityCount struct {
	sev   model.Severity
	count int
}

// severityTotals sums counts per severity across all charms, keeping the
// order in which each severity is first encountered during the sweep.
func severityTotals(store *stats.Store) []severityCount {
	var order []model.Severity
	totals := make(map[model.Severity]int)
	for _, cc := range store.Charms() {
		for _, sev := range cc.Severities() {
			if _, ok := totals[sev]; !ok {
				order = append(order, sev)
			}
			totals[sev] += cc.Count(sev)
		}
	}
	out := make([]severityCount, 0, len(order))
	for _, sev := range order {
		out = append(out, severityCount{sev: sev, count: totals[sev]})
	}
	return out
}
