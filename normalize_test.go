package plotgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeXY(x, y Value) Record {
	return MakeRecord(
		Field{Name: "x", Value: x},
		Field{Name: "y", Value: y},
	)
}

func numbers(pairs ...float64) Dataset {
	var data Dataset
	for i := 0; i+1 < len(pairs); i += 2 {
		data = append(data, makeXY(Number(pairs[i]), Number(pairs[i+1])))
	}
	return data
}

func pairs(n Normalized) [][2]string {
	var list [][2]string
	for i := range n.Records {
		list = append(list, [2]string{n.X(i).String(), n.Y(i).String()})
	}
	return list
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		Name string
		Data Dataset
		Want [][2]string
	}{
		{
			Name: "dedup-and-sort",
			Data: numbers(3, 1, 1, 5, 3, 1, 2, 2),
			Want: [][2]string{{"1", "5"}, {"2", "2"}, {"3", "1"}},
		},
		{
			Name: "ties-by-y",
			Data: numbers(1, 9, 1, 3, 1, 5),
			Want: [][2]string{{"1", "3"}, {"1", "5"}, {"1", "9"}},
		},
		{
			Name: "text",
			Data: Dataset{
				makeXY(Text("b"), Number(2)),
				makeXY(Text("a"), Number(1)),
				makeXY(Text("b"), Number(2)),
			},
			Want: [][2]string{{"a", "1"}, {"b", "2"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			n, err := Normalize(tt.Data, "x", "y")
			require.NoError(t, err)
			assert.Equal(t, tt.Want, pairs(n))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	data := numbers(5, 1, 2, 2, 5, 1, 0, 7, 2, 1)
	fst, err := Normalize(data, "x", "y")
	require.NoError(t, err)

	snd, err := Normalize(Dataset(fst.Records), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, fst, snd)
	assert.LessOrEqual(t, fst.Len(), len(data))
}

func TestNormalizeFirstSeenWins(t *testing.T) {
	data := Dataset{
		MakeRecord(Field{"x", Number(1)}, Field{"y", Number(1)}, Field{"id", Text("first")}),
		MakeRecord(Field{"x", Number(1)}, Field{"y", Number(1)}, Field{"id", Text("second")}),
	}
	n, err := Normalize(data, "x", "y")
	require.NoError(t, err)
	require.Equal(t, 1, n.Len())

	id, _ := n.Records[0].Get("id")
	assert.Equal(t, Text("first"), id)
}

func TestNormalizeEmpty(t *testing.T) {
	n, err := Normalize(nil, "x", "y")
	require.NoError(t, err)
	assert.True(t, n.Empty())

	n, err = Normalize(numbers(1, 2), "x", "missing")
	require.NoError(t, err)
	assert.True(t, n.Empty())
}

func TestNormalizeMixedKinds(t *testing.T) {
	data := Dataset{
		makeXY(Number(1), Number(1)),
		makeXY(Text("a"), Number(2)),
	}
	_, err := Normalize(data, "x", "y")

	var mixed *MixedKindError
	require.ErrorAs(t, err, &mixed)
	assert.Equal(t, "x", mixed.Column)
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	data := numbers(3, 1, 1, 1)
	before := pairs(Normalized{XKey: "x", YKey: "y", Records: data})

	_, err := Normalize(data, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, before, pairs(Normalized{XKey: "x", YKey: "y", Records: data}))
}

func TestNormalizeBlankCells(t *testing.T) {
	tests := []struct {
		Name string
		Data Dataset
		Want [][2]string
	}{
		{
			Name: "blank-x",
			Data: Dataset{
				makeXY(Number(3), Number(1)),
				makeXY(Value{}, Number(5)),
				makeXY(Number(1), Number(9)),
			},
			Want: [][2]string{{"1", "9"}, {"3", "1"}},
		},
		{
			Name: "nan-x",
			Data: Dataset{
				makeXY(Number(3), Number(1)),
				makeXY(Parse("NaN"), Number(5)),
				makeXY(Number(1), Number(9)),
			},
			Want: [][2]string{{"1", "9"}, {"3", "1"}},
		},
		{
			Name: "blank-y",
			Data: Dataset{
				makeXY(Number(2), Number(4)),
				makeXY(Number(2), Value{}),
				makeXY(Number(1), Number(9)),
				makeXY(Number(2), Number(1)),
			},
			Want: [][2]string{{"1", "9"}, {"2", ""}, {"2", "1"}, {"2", "4"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			n, err := Normalize(tt.Data, "x", "y")
			require.NoError(t, err)
			assert.Equal(t, tt.Want, pairs(n))

			for i := 1; i < n.Len(); i++ {
				c := orderValues(n.X(i-1), n.X(i))
				if c == 0 {
					c = orderValues(n.Y(i-1), n.Y(i))
				}
				assert.LessOrEqual(t, c, 0, "records %d and %d out of order", i-1, i)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		Input string
		Want  Value
	}{
		{Input: "12.5", Want: Number(12.5)},
		{Input: " 3 ", Want: Number(3)},
		{Input: "abc", Want: Text("abc")},
		{Input: "NaN", Want: Value{}},
		{Input: "+Inf", Want: Value{}},
		{Input: "-inf", Want: Value{}},
	}
	for _, tt := range tests {
		t.Run(tt.Input, func(t *testing.T) {
			assert.Equal(t, tt.Want, Parse(tt.Input))
		})
	}
}
