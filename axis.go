package plotgraph

import (
	"strconv"

	"github.com/midbel/svg"
)

const FontSize = 12.0

// Orientation tells on which side of the drawing area an axis is drawn.
// Cartesian charts put the category or x values at the bottom and the
// numeric y values on the left.
type Orientation int

const (
	OrientBottom Orientation = iota
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft
}

func (o Orientation) String() string {
	switch o {
	case OrientBottom:
		return "bottom"
	case OrientLeft:
		return "left"
	default:
		return "none"
	}
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

type Tick struct {
	Pos   float64 `json:"pos"`
	Label string  `json:"label"`
}

// Axis describes an axis of a cartesian chart. Origin is relative to the
// drawing area, Length is the length of the domain line and Size the extent
// of the drawing area across the axis.
type Axis struct {
	Label  string      `json:"label"`
	Orient Orientation `json:"orient"`
	Origin Pos         `json:"origin"`
	Length float64     `json:"length"`
	Size   float64     `json:"size"`
	Ticks  []Tick      `json:"ticks"`
}

func NumberAxis(scaler Scaler[float64], ticks int, orient Orientation, label string, length, size float64) Axis {
	a := makeAxis(orient, label, length, size)
	for _, f := range scaler.Values(ticks) {
		a.Ticks = append(a.Ticks, Tick{
			Pos:   scaler.Scale(f),
			Label: strconv.FormatFloat(f, 'f', -1, 64),
		})
	}
	return a
}

func CategoryAxis(scaler BandScaler, orient Orientation, label string, length, size float64) Axis {
	var (
		a     = makeAxis(orient, label, length, size)
		align = scaler.Bandwidth() / 2
	)
	for _, s := range scaler.Values(0) {
		a.Ticks = append(a.Ticks, Tick{
			Pos:   scaler.Scale(s) + align,
			Label: s,
		})
	}
	return a
}

func makeAxis(orient Orientation, label string, length, size float64) Axis {
	a := Axis{
		Label:  label,
		Orient: orient,
		Length: length,
		Size:   size,
	}
	if orient == OrientBottom {
		a.Origin = NewPos(0, size)
	}
	return a
}

func (a Axis) Render(left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left+a.Origin.X, top+a.Origin.Y))
	d := domainLine(a.Orient, a.Length, svg.NewStroke("black", 1))
	g.Append(d.AsElement())

	font := svg.NewFont(FontSize)
	for _, t := range a.Ticks {
		grp := svg.NewGroup(svg.WithTranslate(t.Pos, 0))
		if a.Orient.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = t.Pos
		}
		tick := lineTick(a.Orient, FontSize*0.5, d.Stroke)
		grp.Append(tick.AsElement())

		text := tickText(a.Orient, t.Label, font)
		grp.Append(text.AsElement())
		g.Append(grp.AsElement())
	}
	if a.Label != "" {
		g.Append(a.title(font))
	}
	return g.AsElement()
}

func (a Axis) title(font svg.Font) svg.Element {
	text := svg.NewText(a.Label)
	text.Font = font
	text.Anchor = "middle"

	grp := svg.NewGroup(svg.WithTranslate(a.Length/2, FontSize*3.5))
	if a.Orient.Vertical() {
		grp.Transform.TX = -FontSize * 3.5
		grp.Transform.TY = a.Length / 2
		grp.Transform.RA = -90
	}
	grp.Append(text.AsElement())
	return grp.AsElement()
}

// domainLine, lineTick and tickText draw in the frame of the axis: along x
// for a bottom axis, along y for a left one. Ticks and labels are put
// outside of the drawing area.
func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	end := svg.NewPos(length, 0)
	if orient.Vertical() {
		end = svg.NewPos(0, length)
	}
	d := svg.NewLine(svg.NewPos(0, 0), end)
	d.Stroke = stroke
	return d
}

func lineTick(orient Orientation, size float64, stroke svg.Stroke) svg.Line {
	end := svg.NewPos(0, size)
	if orient.Vertical() {
		end = svg.NewPos(-size, 0)
	}
	tick := svg.NewLine(svg.NewPos(0, 0), end)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, font svg.Font) svg.Text {
	gap := FontSize * 0.8

	text := svg.NewText(str)
	text.Font = font
	if orient.Vertical() {
		text.Pos = svg.NewPos(-gap, 0)
		text.Anchor = "end"
		text.Baseline = "middle"
	} else {
		text.Pos = svg.NewPos(0, gap)
		text.Anchor = "middle"
		text.Baseline = "hanging"
	}
	return text
}
