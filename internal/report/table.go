package report

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable renders the per-case breakdown as a text table.
func RenderTable(s Summary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Regex", "Total", "Passed", "Failed", "Stage Error"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Regex", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Total", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
	})

	for _, c := range s.Cases {
		t.AppendRow(table.Row{c.Regex, c.Total, c.Passed, c.Failed, c.Tag})
	}

	t.AppendFooter(table.Row{"TOTAL", s.Total, s.Passed, s.Failed, ""})
	t.SetStyle(table.StyleLight)
	return t.Render()
}
