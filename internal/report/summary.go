package report

import (
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/phobologic/widgetlint/internal/rule"
)

// WriteSummary renders a per-rule count table after a run.
func WriteSummary(out io.Writer, diags []rule.Diagnostic) {
	type row struct {
		name     string
		severity rule.Severity
		count    int
	}
	byRule := map[string]*row{}
	for _, d := range diags {
		r, ok := byRule[d.Rule]
		if !ok {
			r = &row{name: d.Rule, severity: d.Severity}
			byRule[d.Rule] = r
		}
		r.count++
	}

	rows := make([]*row, 0, len(byRule))
	for _, r := range byRule {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].name < rows[j].name
	})

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Rule", "Severity", "Count"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.name, r.severity.String(), r.count})
	}
	tw.AppendFooter(table.Row{"total", "", len(diags)})
	tw.Render()
}

// RuleTable renders the registered rule set, for `widgetlint rules`.
func RuleTable(out io.Writer, rules []rule.Rule) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Rule", "Severity", "Description"})
	for _, r := range rules {
		tw.AppendRow(table.Row{r.Name(), r.Severity().String(), r.Description()})
	}
	tw.Render()
}
