package plotgraph

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/aclements/go-gg/palette"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette

	Warm    palette.Continuous
	Rainbow palette.Continuous
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")

	Warm = makeGradient("6e40aa963db3bf3cafe4419dfe4b83ff5e63ff7847fb9633e2b72fc6d63caff05b")
	Rainbow = makeGradient("6e40aabf3caffe4b83ff7847e2b72faff05b52f6671ddfa323abd84c6edb6e40aa")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

func makeGradient(str string) palette.Continuous {
	var g palette.RGBGradient
	for _, s := range splitColorString(str) {
		c, err := ParseHex(s)
		if err != nil {
			panic(err)
		}
		g.Colors = append(g.Colors, c)
	}
	return g
}

// Colorer gives the color of the i-th record among n. The same (i, n) always
// gives the same color.
type Colorer interface {
	Color(i, n int) string
}

// Sequential interpolates a continuous palette at i/n.
type Sequential struct {
	palette.Continuous
}

func (s Sequential) Color(i, n int) string {
	var x float64
	if n > 0 {
		x = float64(i) / float64(n)
	}
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return Hex(s.Map(x))
}

// Ordinal cycles through a discrete palette.
type Ordinal struct {
	Palette
}

func (o Ordinal) Color(i, _ int) string {
	if len(o.Palette) == 0 {
		return "black"
	}
	if i < 0 {
		i = -i
	}
	return o.Palette[i%len(o.Palette)]
}

func DefaultColorer(kind ChartKind) Colorer {
	if kind == Bar {
		return Sequential{Rainbow}
	}
	return Sequential{Warm}
}

func GetColorer(name string) (Colorer, error) {
	switch name {
	case "", "warm":
		return Sequential{Warm}, nil
	case "rainbow":
		return Sequential{Rainbow}, nil
	case "category10":
		return Ordinal{Category10}, nil
	case "tableau10":
		return Ordinal{Tableau10}, nil
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrPalette)
	}
}

func Hex(c color.Color) string {
	rgb := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

func ParseHex(str string) (color.RGBA, error) {
	if len(str) != 7 || str[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%s: invalid hex color", str)
	}
	n, err := strconv.ParseUint(str[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: invalid hex color: %w", str, err)
	}
	c := color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}
	return c, nil
}
