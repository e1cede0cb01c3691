package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/midbel/plotgraph"
)

var ErrJSON = errors.New("json: array of flat objects expected")

// ReadJSON reads an array of flat objects. The order of the keys in each
// object is kept. Numbers give numeric values, strings and booleans give
// texts and null gives an absent value.
func ReadJSON(r io.Reader, opts Options) (plotgraph.Dataset, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var list plotgraph.Dataset
	for dec.More() {
		rec, err := readObject(dec, opts.Columns)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return list, nil
}

func readObject(dec *json.Decoder, columns []string) (plotgraph.Record, error) {
	var rec plotgraph.Record
	if err := expectDelim(dec, '{'); err != nil {
		return rec, err
	}
	var fields []plotgraph.Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return rec, err
		}
		name, ok := tok.(string)
		if !ok {
			return rec, ErrJSON
		}
		val, err := readValue(dec)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", name, err)
		}
		if len(columns) > 0 && !slices.Contains(columns, name) {
			continue
		}
		fields = append(fields, plotgraph.Field{
			Name:  name,
			Value: val,
		})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return rec, err
	}
	return plotgraph.MakeRecord(fields...), nil
}

func readValue(dec *json.Decoder) (plotgraph.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return plotgraph.Value{}, err
	}
	switch v := tok.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return plotgraph.Value{}, err
		}
		return plotgraph.Number(f), nil
	case string:
		return plotgraph.Text(v), nil
	case bool:
		return plotgraph.Text(strconv.FormatBool(v)), nil
	case nil:
		return plotgraph.Value{}, nil
	default:
		return plotgraph.Value{}, ErrJSON
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return ErrJSON
	}
	return nil
}
