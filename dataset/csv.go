package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/midbel/plotgraph"
)

// ReadCSV reads a delimited text where the first row names the columns.
func ReadCSV(r io.Reader, opts Options) (plotgraph.Dataset, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if opts.Delimiter != "" {
		d, _ := utf8.DecodeRuneInString(opts.Delimiter)
		rs.Comma = d
	}
	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var (
		sel  = opts.selector()
		list plotgraph.Dataset
	)
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("csv: %w", err)
		}
		list = append(list, makeRecord(header, row, sel))
	}
	return list, nil
}
