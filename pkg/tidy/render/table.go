package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/tidy/pkg/tidy/types"
)

const defaultMaxColWidth = 40

type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, res types.Result, opts RenderOptions) error {
	if strings.TrimSpace(res.Name) != "" {
		if _, err := fmt.Fprintln(w, text.Bold.Sprint(strings.ToUpper(res.Name))); err != nil {
			return err
		}
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	if !opts.Color {
		tw.SetStyle(table.StyleLight)
	}
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false

	tw.AppendHeader(table.Row{"#", "RAW", "CLEAN"})

	// Wrap text to MaxColWidth, no truncation
	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = defaultMaxColWidth
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 2, WidthMax: maxWidth},
		{Number: 3, WidthMax: maxWidth},
	})

	for _, row := range res.Rows {
		raw := fmt.Sprintf("%q", row.Raw)
		clean := row.Clean
		if opts.Color && row.Changed() {
			raw = text.Colors{text.FgYellow}.Sprint(raw)
		}
		tw.AppendRow(table.Row{row.Index, raw, clean})
	}
	tw.AppendFooter(table.Row{"", "", fmt.Sprintf("%d records", len(res.Rows))})

	tw.Render()
	return nil
}
