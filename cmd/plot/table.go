package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/plotgraph"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func tableCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the records as drawn with their colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			b, err := opts.board(cfg, nil)
			if err != nil {
				return err
			}
			pass := b.Pass()
			if pass.Err != nil {
				return pass.Err
			}
			x, y := b.Keys()
			printTable(os.Stdout, x, y, pass.Geometry.Rows)
			return nil
		},
	}
}

func printTable(w io.Writer, xKey, yKey string, rows []plotgraph.TableRow) {
	var (
		header = []string{xKey, yKey}
		pct    = len(rows) > 0 && rows[0].Percent != nil
		lines  [][]string
	)
	if pct {
		header = append(header, "Percentage")
	}
	header = append(header, "Color")
	for _, r := range rows {
		line := []string{r.X, r.Y}
		if pct {
			line = append(line, fmt.Sprintf("%d%%", *r.Percent))
		}
		line = append(line, r.Color)
		lines = append(lines, line)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, line := range lines {
		for i, c := range line {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	var cells []string
	for i, h := range header {
		cells = append(cells, headerStyle.Width(widths[i]+2).Render(h))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	for j, line := range lines {
		cells = cells[:0]
		for i, c := range line {
			st := cellStyle.Width(widths[i] + 2)
			if i == len(line)-1 {
				st = st.Background(lipgloss.Color(rows[j].Color)).Foreground(lipgloss.Color("#000000"))
			}
			cells = append(cells, st.Render(c))
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	if len(lines) == 0 {
		fmt.Fprintln(w, cellStyle.Render(strings.Repeat("-", 3)))
	}
}
