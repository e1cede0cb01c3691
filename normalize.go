package plotgraph

import (
	"sort"
)

// Normalized is the deduplicated and ordered view of a Dataset for one pair
// of axis keys. It is rebuilt on each change and never updated in place.
type Normalized struct {
	XKey    string
	YKey    string
	Records []Record
}

func (n Normalized) Len() int {
	return len(n.Records)
}

func (n Normalized) Empty() bool {
	return len(n.Records) == 0
}

func (n Normalized) X(i int) Value {
	v, _ := n.Records[i].Get(n.XKey)
	return v
}

func (n Normalized) Y(i int) Value {
	v, _ := n.Records[i].Get(n.YKey)
	return v
}

// XFloats returns the numeric x values. Non numeric values count as 0.
func (n Normalized) XFloats() []float64 {
	return n.floats(n.X)
}

// YFloats returns the numeric y values. Non numeric values count as 0.
func (n Normalized) YFloats() []float64 {
	return n.floats(n.Y)
}

func (n Normalized) floats(get func(int) Value) []float64 {
	list := make([]float64, n.Len())
	for i := range list {
		list[i], _ = get(i).Float()
	}
	return list
}

// Labels returns the distinct x values in normalized order.
func (n Normalized) Labels() []string {
	var (
		list []string
		seen = make(map[string]struct{})
	)
	for i := 0; i < n.Len(); i++ {
		str := n.X(i).String()
		if _, ok := seen[str]; ok {
			continue
		}
		seen[str] = struct{}{}
		list = append(list, str)
	}
	return list
}

type pairKey struct {
	x Value
	y Value
}

// Normalize drops the records that repeat an earlier (x, y) pair and sorts
// the remaining ones by x then y. A missing key gives an empty result and a
// record without a valid x is left out. A blank or absent y is kept, it sorts before
// the other values of its x and counts as 0. A column holding both numbers
// and texts can not be ordered and is reported with a MixedKindError.
func Normalize(data Dataset, xKey, yKey string) (Normalized, error) {
	norm := Normalized{
		XKey: xKey,
		YKey: yKey,
	}
	if len(data) == 0 || !data.HasColumn(xKey) || !data.HasColumn(yKey) {
		return norm, nil
	}
	var (
		seen = make(map[pairKey]struct{})
		list = make([]Record, 0, len(data))
	)
	for _, r := range data {
		x, _ := r.Get(xKey)
		if !x.Valid() {
			continue
		}
		y, _ := r.Get(yKey)
		k := pairKey{x: x, y: y}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		list = append(list, r)
	}
	if err := checkKinds(list, xKey); err != nil {
		return norm, err
	}
	if err := checkKinds(list, yKey); err != nil {
		return norm, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return lessRecord(list[i], list[j], xKey, yKey)
	})
	norm.Records = list
	return norm, nil
}

// lessRecord expects columns checked with checkKinds: values of a column
// are then either invalid or all of the same kind.
func lessRecord(a, b Record, xKey, yKey string) bool {
	ax, _ := a.Get(xKey)
	bx, _ := b.Get(xKey)
	if c := orderValues(ax, bx); c != 0 {
		return c < 0
	}
	ay, _ := a.Get(yKey)
	by, _ := b.Get(yKey)
	return orderValues(ay, by) < 0
}

func orderValues(a, b Value) int {
	switch {
	case !a.Valid() && !b.Valid():
		return 0
	case !a.Valid():
		return -1
	case !b.Valid():
		return 1
	}
	c, _ := a.Compare(b)
	return c
}

func checkKinds(list []Record, key string) error {
	var kind ValueKind
	for _, r := range list {
		v, _ := r.Get(key)
		if !v.Valid() {
			continue
		}
		if kind == KindInvalid {
			kind = v.Kind()
			continue
		}
		if v.Kind() != kind {
			return &MixedKindError{
				Column: key,
				Want:   kind,
				Got:    v.Kind(),
			}
		}
	}
	return nil
}
