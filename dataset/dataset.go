package dataset

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/plotgraph"
)

var (
	ErrFormat = errors.New("unsupported format")
	ErrHeader = errors.New("missing header")
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(str string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(str, "."))); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	case "tsv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%s: %w", str, ErrFormat)
	}
}

// FormatOf guesses the format of a file from its extension.
func FormatOf(file string) (Format, error) {
	return ParseFormat(filepath.Ext(file))
}

type Limit struct {
	Offset int `yaml:"offset"`
	Count  int `yaml:"count"`
}

// Apply keeps Count records starting at Offset. A negative offset counts
// from the end of the list.
func (lim Limit) Apply(data plotgraph.Dataset) plotgraph.Dataset {
	z := len(data)
	if lim.Offset < 0 {
		lim.Offset = max(0, z+lim.Offset)
	}
	if lim.Offset > 0 {
		if lim.Offset >= z {
			return nil
		}
		data = data[lim.Offset:]
	}
	if lim.Count > 0 && lim.Count < len(data) {
		data = data[:lim.Count]
	}
	return data
}

type Options struct {
	Format    Format   `yaml:"format"`
	Delimiter string   `yaml:"delimiter"`
	Sheet     string   `yaml:"sheet"`
	Columns   []string `yaml:"columns"`
	Limit     `yaml:",inline"`
}

func (o Options) selector() Selector {
	if len(o.Columns) == 0 {
		return SelectAll()
	}
	return SelectNames(o.Columns...)
}

// Load reads the dataset stored in file. The format is taken from the
// options or guessed from the extension of file.
func Load(file string, opts Options) (plotgraph.Dataset, error) {
	if opts.Format == "" {
		f, err := FormatOf(file)
		if err != nil {
			return nil, err
		}
		opts.Format = f
		if strings.EqualFold(filepath.Ext(file), ".tsv") && opts.Delimiter == "" {
			opts.Delimiter = "\t"
		}
	}
	r, err := readFrom(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := Read(r, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return data, nil
}

func Read(r io.Reader, opts Options) (plotgraph.Dataset, error) {
	var (
		data plotgraph.Dataset
		err  error
	)
	switch opts.Format {
	case FormatCSV, "":
		data, err = ReadCSV(r, opts)
	case FormatJSON:
		data, err = ReadJSON(r, opts)
	case FormatXLSX:
		data, err = ReadXLSX(r, opts)
	default:
		err = fmt.Errorf("%s: %w", opts.Format, ErrFormat)
	}
	if err != nil {
		return nil, err
	}
	return opts.Limit.Apply(data), nil
}

func readFrom(location string) (io.ReadCloser, error) {
	if location == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

// makeRecord builds a record from a row of cells named after header. Empty
// cells give an absent value.
func makeRecord(header []string, row []string, sel Selector) plotgraph.Record {
	var fields []plotgraph.Field
	for _, i := range sel.Select(header) {
		var (
			name = header[i]
			val  plotgraph.Value
		)
		if i < len(row) && strings.TrimSpace(row[i]) != "" {
			val = plotgraph.Parse(row[i])
		}
		fields = append(fields, plotgraph.Field{
			Name:  name,
			Value: val,
		})
	}
	return plotgraph.MakeRecord(fields...)
}
