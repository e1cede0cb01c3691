package dataset

import (
	"slices"
)

// Selector picks the indices of the columns to keep from a header.
type Selector interface {
	Select([]string) []int
}

type all struct{}

func SelectAll() Selector {
	return all{}
}

func (all) Select(header []string) []int {
	list := make([]int, len(header))
	for i := range header {
		list[i] = i
	}
	return list
}

type names struct {
	names []string
}

// SelectNames keeps the named columns in the order they appear in the
// header. Unknown names are ignored.
func SelectNames(list ...string) Selector {
	return names{
		names: list,
	}
}

func (n names) Select(header []string) []int {
	var list []int
	for i, h := range header {
		if slices.Contains(n.names, h) {
			list = append(list, i)
		}
	}
	return list
}

type multi struct {
	index []int
}

func SelectIndex(list ...int) Selector {
	return multi{
		index: list,
	}
}

func (m multi) Select(header []string) []int {
	list := make([]int, 0, len(m.index))
	for _, i := range m.index {
		if i < 0 || i >= len(header) {
			continue
		}
		list = append(list, i)
	}
	return list
}

func ExpandRange(fst, lst int) []int {
	var list []int
	for i := fst; i <= lst; i++ {
		list = append(list, i)
	}
	return list
}
