package plotgraph

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const (
	DefaultWidth     = 700.0
	DefaultHeight    = 600.0
	DefaultPieHeight = 800.0

	// PieShrinkWidth is the screen width under which a pie chart takes the
	// width of the screen.
	PieShrinkWidth = 800.0
)

type Padding struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Padding `json:"padding"`
}

// DefaultLayout gives the layout used for kind on a screen of the given
// width. Screens narrower than the default width (PieShrinkWidth for pie
// charts) shrink the chart to fit, a screen of 0 means unknown.
func DefaultLayout(kind ChartKind, screen float64) Layout {
	lay := Layout{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: kindPadding(kind),
	}
	threshold := DefaultWidth
	if kind == Pie {
		lay.Height = DefaultPieHeight
		threshold = PieShrinkWidth
	}
	if screen > 0 && screen < threshold {
		lay.Width = screen
	}
	return lay
}

func kindPadding(kind ChartKind) Padding {
	switch kind {
	case Line, Bar:
		return Padding{
			Top:    20,
			Right:  30,
			Bottom: 60,
			Left:   60,
		}
	default:
		return Padding{
			Top:    40,
			Right:  60,
			Bottom: 60,
			Left:   60,
		}
	}
}

func (l Layout) DrawingWidth() float64 {
	return math.Max(0, l.Width-l.Padding.Horizontal())
}

func (l Layout) DrawingHeight() float64 {
	return math.Max(0, l.Height-l.Padding.Vertical())
}

// Chart draws geometry as a SVG document.
type Chart struct {
	Title  string
	Swatch float64
}

func (c Chart) Render(w io.Writer, g Geometry, tip Tooltip) {
	lay := g.Layout
	el := svg.NewSVG(svg.WithDimension(lay.Width, lay.Height))
	el.OmitProlog = true

	if c.Title != "" {
		el.Append(c.drawTitle(lay))
	}
	el.Append(c.drawAxis(g))

	area := svg.NewGroup(svg.WithID("area"), svg.WithTranslate(lay.Padding.Left, lay.Padding.Top))
	area.Class = append(area.Class, g.Kind.String())
	for _, s := range g.Shapes {
		if e := drawShape(s); e != nil {
			area.Append(e)
		}
	}
	if lg := c.drawLegend(g.Legend); lg != nil {
		area.Append(lg)
	}
	if tip.Visible {
		area.Append(drawTooltip(tip))
	}
	el.Append(area.AsElement())

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func (c Chart) drawTitle(lay Layout) svg.Element {
	txt := svg.NewText(c.Title)
	txt.Font = svg.NewFont(FontSize * 1.4)
	txt.Pos = svg.NewPos(lay.Width/2, lay.Padding.Top/2)
	txt.Anchor = "middle"
	txt.Baseline = "middle"
	return txt.AsElement()
}

func (c Chart) drawAxis(g Geometry) svg.Element {
	grp := svg.NewGroup(svg.WithID("axis"))
	for _, a := range g.Axes {
		grp.Append(a.Render(g.Layout.Padding.Left, g.Layout.Padding.Top))
	}
	return grp.AsElement()
}

func (c Chart) drawLegend(list []LegendEntry) svg.Element {
	if len(list) == 0 {
		return nil
	}
	size := c.Swatch
	if size <= 0 {
		size = FontSize * 1.6
	}
	grp := svg.NewGroup(svg.WithID("legend"))
	for _, e := range list {
		row := svg.NewGroup(svg.WithTranslate(e.Pos.X, e.Pos.Y))

		var sw svg.Rect
		sw.Dim = svg.NewDim(size, size)
		sw.Fill = svg.NewFill(e.Color)
		sw.Title = e.Label

		txt := svg.NewText(e.Label)
		txt.Pos = svg.NewPos(size+FontSize*0.4, size/2)
		txt.Font = svg.NewFont(FontSize)
		txt.Baseline = "middle"

		row.Append(sw.AsElement())
		row.Append(txt.AsElement())
		grp.Append(row.AsElement())
	}
	return grp.AsElement()
}

func drawTooltip(tip Tooltip) svg.Element {
	grp := svg.NewGroup(svg.WithID("tooltip"), svg.WithTranslate(tip.Position.X, tip.Position.Y))

	var bg svg.Rect
	bg.Pos = svg.NewPos(0, -FontSize*1.5)
	bg.Dim = svg.NewDim(float64(len(tip.Content))*FontSize*0.6+FontSize, FontSize*2)
	bg.Fill = svg.NewFill("white")
	bg.Fill.Opacity = 0.9

	txt := svg.NewText(tip.Content)
	txt.Pos = svg.NewPos(FontSize*0.5, -FontSize*0.5)
	txt.Font = svg.NewFont(FontSize)
	txt.Baseline = "middle"

	grp.Append(bg.AsElement())
	grp.Append(txt.AsElement())
	return grp.AsElement()
}

func drawShape(s Shape) svg.Element {
	switch s.Kind {
	case ShapeCircle:
		return drawCircle(s)
	case ShapeRect:
		return drawRect(s)
	case ShapePolyline:
		return drawPolyline(s)
	case ShapeArc:
		return drawArc(s)
	case ShapeText:
		return drawText(s)
	default:
		return nil
	}
}

func drawCircle(s Shape) svg.Element {
	if s.Radius <= 0 {
		return nil
	}
	ci := svg.NewCircle()
	ci.Pos = svg.NewPos(s.Center.X, s.Center.Y)
	ci.Radius = s.Radius
	ci.Fill = getFill(s)
	return ci.AsElement()
}

func drawRect(s Shape) svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(s.Pos.X, s.Pos.Y)
	el.Dim = svg.NewDim(s.Dim.W, math.Max(0, s.Dim.H))
	el.Fill = getFill(s)
	el.Title = s.Text
	return el.AsElement()
}

func drawPolyline(s Shape) svg.Element {
	if len(s.Points) == 0 {
		return nil
	}
	pat := svg.NewPath()
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(s.Stroke, s.Width)
	pat.Stroke.Opacity = s.Opacity

	fst := slices.Fst(s.Points)
	pat.AbsMoveTo(svg.NewPos(fst.X, fst.Y))
	for _, p := range slices.Rest(s.Points) {
		pat.AbsLineTo(svg.NewPos(p.X, p.Y))
	}
	return pat.AsElement()
}

func drawArc(s Shape) svg.Element {
	span := s.Slice.Span()
	if span <= 0 || s.Radius <= 0 {
		return nil
	}
	pat := svg.NewPath()
	pat.Rendering = "geometricPrecision"
	pat.Fill = getFill(s)

	var (
		outer = func(angle float64) svg.Pos {
			p := getPosFromAngle(angle, s.Radius).Add(s.Center.X, s.Center.Y)
			return svg.NewPos(p.X, p.Y)
		}
		inner = func(angle float64) svg.Pos {
			p := getPosFromAngle(angle, s.Inner).Add(s.Center.X, s.Center.Y)
			return svg.NewPos(p.X, p.Y)
		}
	)
	pat.AbsMoveTo(inner(s.Slice.Start))
	pat.AbsLineTo(outer(s.Slice.Start))
	if span >= fullcircle {
		// a single arc can not start and end on the same point
		pat.AbsArcTo(outer(s.Slice.Start+halfcircle), s.Radius, s.Radius, 0, false, true)
		pat.AbsArcTo(outer(s.Slice.Start), s.Radius, s.Radius, 0, false, true)
	} else {
		pat.AbsArcTo(outer(s.Slice.End), s.Radius, s.Radius, 0, span > halfcircle, true)
	}
	if s.Inner > 0 {
		pat.AbsLineTo(inner(s.Slice.End))
		pat.AbsArcTo(inner(s.Slice.Start), s.Inner, s.Inner, 0, span > halfcircle, false)
	}
	pat.ClosePath()
	return pat.AsElement()
}

func drawText(s Shape) svg.Element {
	var grp svg.Group
	grp.Fill = getFill(s)

	txt := svg.NewText(s.Text)
	txt.Pos = svg.NewPos(s.Center.X, s.Center.Y)
	txt.Font = svg.NewFont(FontSize)
	txt.Anchor = "middle"
	txt.Baseline = "middle"
	grp.Append(txt.AsElement())
	return grp.AsElement()
}

func getFill(s Shape) svg.Fill {
	f := svg.NewFill(s.Fill)
	f.Opacity = s.Opacity
	return f
}
