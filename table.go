package plotgraph

import (
	"math"
)

// TableRow is one line of the side table listing the normalized records
// with the color used to draw them.
type TableRow struct {
	X       string `json:"x"`
	Y       string `json:"y"`
	Color   string `json:"color"`
	Percent *int   `json:"percent,omitempty"`
}

type LegendEntry struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Color string `json:"color"`
	Pos   Pos    `json:"pos"`
}

func tableRows(kind ChartKind, norm Normalized, colors Colorer) []TableRow {
	var (
		list  = make([]TableRow, norm.Len())
		ys    = norm.YFloats()
		total float64
	)
	for _, y := range ys {
		total += y
	}
	for i := range list {
		list[i] = TableRow{
			X:     norm.X(i).String(),
			Y:     norm.Y(i).String(),
			Color: colors.Color(i, norm.Len()),
		}
		if kind != Pie {
			continue
		}
		var pct int
		if total > 0 {
			pct = int(math.Floor(ys[i] / total * 100))
		}
		list[i].Percent = &pct
	}
	return list
}
