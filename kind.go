package plotgraph

import (
	"fmt"
	"strings"
)

type ChartKind int

const (
	Scatter ChartKind = iota
	Line
	Bar
	Pie
)

// Priority is the order used to pick a default chart kind among the enabled
// ones.
var Priority = []ChartKind{Scatter, Line, Bar, Pie}

func (k ChartKind) String() string {
	switch k {
	case Scatter:
		return "scatter"
	case Line:
		return "line"
	case Bar:
		return "bar"
	case Pie:
		return "pie"
	default:
		return "unknown"
	}
}

func (k ChartKind) Valid() bool {
	return k >= Scatter && k <= Pie
}

// Cartesian reports whether charts of this kind are drawn against x/y axes.
func (k ChartKind) Cartesian() bool {
	return k != Pie
}

func (k ChartKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%d: invalid chart kind", int(k))
	}
	return []byte(k.String()), nil
}

func (k *ChartKind) UnmarshalText(str []byte) error {
	x, err := ParseKind(string(str))
	if err == nil {
		*k = x
	}
	return err
}

func ParseKind(str string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "scatter":
		return Scatter, nil
	case "line":
		return Line, nil
	case "bar":
		return Bar, nil
	case "pie":
		return Pie, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized chart kind", str)
	}
}

type KindSet uint8

func MakeKindSet(kinds ...ChartKind) KindSet {
	var set KindSet
	for _, k := range kinds {
		set = set.Enable(k)
	}
	return set
}

func AllKinds() KindSet {
	return MakeKindSet(Priority...)
}

func (s KindSet) Enable(k ChartKind) KindSet {
	if !k.Valid() {
		return s
	}
	return s | 1<<k
}

func (s KindSet) Disable(k ChartKind) KindSet {
	if !k.Valid() {
		return s
	}
	return s &^ (1 << k)
}

func (s KindSet) Has(k ChartKind) bool {
	return k.Valid() && s&(1<<k) != 0
}

func (s KindSet) Empty() bool {
	return s == 0
}

// First returns the first enabled kind according to Priority.
func (s KindSet) First() (ChartKind, bool) {
	for _, k := range Priority {
		if s.Has(k) {
			return k, true
		}
	}
	return 0, false
}

func (s KindSet) Kinds() []ChartKind {
	var list []ChartKind
	for _, k := range Priority {
		if s.Has(k) {
			list = append(list, k)
		}
	}
	return list
}

func (s KindSet) String() string {
	var list []string
	for _, k := range s.Kinds() {
		list = append(list, k.String())
	}
	return strings.Join(list, ",")
}
