package dataset

import (
	"io"

	"github.com/midbel/plotgraph"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the rows of a sheet of a workbook. The first sheet is used
// when none is given and the first non-empty row names the columns.
func ReadXLSX(r io.Reader, opts Options) (plotgraph.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSheet(f, opts)
}

func readSheet(f *excelize.File, opts Options) (plotgraph.Dataset, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	for len(rows) > 0 && len(rows[0]) == 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, nil
	}
	var (
		header = rows[0]
		sel    = opts.selector()
		list   plotgraph.Dataset
	)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		list = append(list, makeRecord(header, row, sel))
	}
	return list, nil
}
