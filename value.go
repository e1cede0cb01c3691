package plotgraph

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindNumber
	KindText
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Value is a single cell of a dataset. It holds either a number or a text;
// the zero Value is invalid and stands for a missing cell.
type Value struct {
	kind ValueKind
	num  float64
	str  string
}

func Number(f float64) Value {
	return Value{
		kind: KindNumber,
		num:  f,
	}
}

func Text(s string) Value {
	return Value{
		kind: KindText,
		str:  s,
	}
}

// Parse returns a number when str is a valid float and a text otherwise.
// NaN and infinities give an invalid Value, like a blank cell.
func Parse(str string) Value {
	str = strings.TrimSpace(str)
	if f, err := strconv.ParseFloat(str, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}
		}
		return Number(f)
	}
	return Text(str)
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) Valid() bool {
	return v.kind != KindInvalid
}

func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

func (v Value) IsText() bool {
	return v.kind == KindText
}

// Float returns the numeric content of v. Text and invalid values contribute 0.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.str
	default:
		return ""
	}
}

func (v Value) Equal(other Value) bool {
	return v == other
}

// Compare orders two values of the same kind. Values of different kinds can
// not be compared and a MixedKindError is returned.
func (v Value) Compare(other Value) (int, error) {
	if v.kind != other.kind {
		return 0, &MixedKindError{
			Want: v.kind,
			Got:  other.kind,
		}
	}
	switch v.kind {
	case KindNumber:
		return cmp.Compare(v.num, other.num), nil
	case KindText:
		return strings.Compare(v.str, other.str), nil
	default:
		return 0, nil
	}
}

type MixedKindError struct {
	Column string
	Want   ValueKind
	Got    ValueKind
}

func (e *MixedKindError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("can not compare %s with %s", e.Want, e.Got)
	}
	return fmt.Sprintf("%s: column mixes %s and %s values", e.Column, e.Want, e.Got)
}

type Field struct {
	Name  string
	Value Value
}

// Record is an ordered list of named values. Column order is kept as given.
type Record struct {
	fields []Field
}

func MakeRecord(fields ...Field) Record {
	r := Record{
		fields: make([]Field, 0, len(fields)),
	}
	for _, f := range fields {
		r = r.With(f.Name, f.Value)
	}
	return r
}

// With returns a copy of r where name is set to value.
func (r Record) With(name string, value Value) Record {
	x := Record{
		fields: make([]Field, len(r.fields), len(r.fields)+1),
	}
	copy(x.fields, r.fields)
	for i := range x.fields {
		if x.fields[i].Name == name {
			x.fields[i].Value = value
			return x
		}
	}
	x.fields = append(x.fields, Field{Name: name, Value: value})
	return x
}

func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

func (r Record) Columns() []string {
	list := make([]string, len(r.fields))
	for i, f := range r.fields {
		list[i] = f.Name
	}
	return list
}

func (r Record) Fields() []Field {
	list := make([]Field, len(r.fields))
	copy(list, r.fields)
	return list
}

func (r Record) Len() int {
	return len(r.fields)
}

type Dataset []Record

// Columns returns the columns of the first record. All records of a dataset
// are expected to share the same columns.
func (d Dataset) Columns() []string {
	if len(d) == 0 {
		return nil
	}
	return d[0].Columns()
}

func (d Dataset) HasColumn(name string) bool {
	if len(d) == 0 {
		return false
	}
	return d[0].Has(name)
}
