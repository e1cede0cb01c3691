package plotgraph

import (
	"fmt"
	"math"
	"strconv"
)

const (
	keyPath  = "path"
	keyLabel = "label"
)

// Geometry is everything a drawing backend needs to draw one chart. Shapes
// are listed in drawing order and positioned relative to the drawing area.
type Geometry struct {
	Kind   ChartKind     `json:"kind"`
	XKey   string        `json:"x"`
	YKey   string        `json:"y"`
	Layout Layout        `json:"layout"`
	Shapes []Shape       `json:"shapes"`
	Axes   []Axis        `json:"axes,omitempty"`
	Legend []LegendEntry `json:"legend,omitempty"`
	Rows   []TableRow    `json:"rows,omitempty"`
}

func (g Geometry) Empty() bool {
	return len(g.Shapes) == 0
}

func (g Geometry) Find(key string) (Shape, bool) {
	for _, s := range g.Shapes {
		if s.Key == key {
			return s, true
		}
	}
	return Shape{}, false
}

type Renderer interface {
	Render(Normalized, Scales, Colorer) Geometry
}

// Render builds the geometry of kind for norm. Nothing is drawn when norm is
// empty or when the scales built for it are degenerate.
func Render(kind ChartKind, norm Normalized, lay Layout, style Style, colors Colorer) Geometry {
	g := Geometry{
		Kind:   kind,
		XKey:   norm.XKey,
		YKey:   norm.YKey,
		Layout: lay,
	}
	if norm.Empty() {
		return g
	}
	g.Rows = tableRows(kind, norm, colors)

	sc := BuildScales(norm, kind, lay)
	if sc.Degenerate() {
		return g
	}
	rdr, err := getRenderer(kind, lay, style)
	if err != nil {
		return g
	}
	res := rdr.Render(norm, sc, colors)
	g.Shapes = res.Shapes
	g.Axes = res.Axes
	g.Legend = res.Legend
	return g
}

func getRenderer(kind ChartKind, lay Layout, style Style) (Renderer, error) {
	var rdr Renderer
	switch kind {
	case Scatter:
		rdr = ScatterRenderer{
			Radius: style.Marker.Radius,
			Width:  lay.DrawingWidth(),
			Height: lay.DrawingHeight(),
			Ticks:  style.Ticks,
		}
	case Line:
		rdr = LineRenderer{
			Color:  style.Line.Color,
			Stroke: style.Line.Width,
			Radius: style.Marker.Radius,
			Width:  lay.DrawingWidth(),
			Height: lay.DrawingHeight(),
			Ticks:  style.Ticks,
		}
	case Bar:
		rdr = BarRenderer{
			Width:  lay.DrawingWidth(),
			Height: lay.DrawingHeight(),
			Ticks:  style.Ticks,
		}
	case Pie:
		var (
			width  = lay.DrawingWidth()
			height = lay.DrawingHeight()
			radius = math.Min(width, height)/2 - style.Pie.Inset
		)
		rdr = PieRenderer{
			Center:      NewPos(width/2, height/2),
			InnerRadius: 0,
			OuterRadius: math.Max(radius, 0),
			Legend:      NewPos(width-style.Legend.Offset, style.Legend.Top),
			LegendStep:  style.Legend.Step,
		}
	default:
		return nil, fmt.Errorf("%s: %w", kind, ErrKind)
	}
	return rdr, nil
}

type ScatterRenderer struct {
	Radius float64
	Width  float64
	Height float64
	Ticks  int
}

func (r ScatterRenderer) Render(norm Normalized, sc Scales, colors Colorer) Geometry {
	var (
		g      Geometry
		xs, ys = norm.XFloats(), norm.YFloats()
	)
	for i := range norm.Records {
		el := getCircle(Scatter, i, norm.Records[i], NewPos(sc.X.Scale(xs[i]), sc.Y.Scale(ys[i])), r.Radius)
		el.Fill = colors.Color(i, norm.Len())
		g.Shapes = append(g.Shapes, el)
	}
	g.Axes = numberAxes(norm, sc, r.Width, r.Height, r.Ticks)
	return g
}

type LineRenderer struct {
	Color  string
	Stroke float64
	Radius float64
	Width  float64
	Height float64
	Ticks  int
}

func (r LineRenderer) Render(norm Normalized, sc Scales, colors Colorer) Geometry {
	var (
		g      Geometry
		xs, ys = norm.XFloats(), norm.YFloats()
		pat    = getBasePath(r.Color, r.Stroke)
		points []Shape
	)
	for i := range norm.Records {
		pos := NewPos(sc.X.Scale(xs[i]), sc.Y.Scale(ys[i]))
		pat.Points = append(pat.Points, pos)

		el := getCircle(Line, i, norm.Records[i], pos, r.Radius)
		el.Fill = colors.Color(i, norm.Len())
		points = append(points, el)
	}
	g.Shapes = append(g.Shapes, pat)
	g.Shapes = append(g.Shapes, points...)
	g.Axes = numberAxes(norm, sc, r.Width, r.Height, r.Ticks)
	return g
}

type BarRenderer struct {
	Width  float64
	Height float64
	Ticks  int
}

func (r BarRenderer) Render(norm Normalized, sc Scales, colors Colorer) Geometry {
	var (
		g    Geometry
		ys   = norm.YFloats()
		base = sc.Y.Scale(0)
		seen = make(map[string]int)
	)
	for i, rec := range norm.Records {
		var (
			label = norm.X(i).String()
			x     = sc.Band.Scale(label)
			y     = sc.Y.Scale(ys[i])
			el    Shape
		)
		el.Kind = ShapeRect
		el.Family = Bar
		el.Index = i
		el.Record = rec
		el.Key = barKey(label, seen[label])
		el.Text = label
		el.Pos = NewPos(x, math.Min(y, base))
		el.Dim = NewDim(sc.Band.Bandwidth(), math.Abs(base-y))
		el.Fill = colors.Color(i, norm.Len())
		el.Opacity = 1
		g.Shapes = append(g.Shapes, el)
		seen[label]++
	}
	g.Axes = []Axis{
		CategoryAxis(sc.Band, OrientBottom, axisTitle("x", norm.XKey), r.Width, r.Height),
		NumberAxis(sc.Y, r.Ticks, OrientLeft, axisTitle("y", norm.YKey), r.Height, r.Width),
	}
	return g
}

// barKey identifies a bar by its category. Categories seen more than once
// get a suffix so that keys stay unique.
func barKey(label string, seen int) string {
	key := makeKey(Bar, label)
	if seen > 0 {
		key += "#" + strconv.Itoa(seen)
	}
	return key
}

type PieRenderer struct {
	Center      Pos
	InnerRadius float64
	OuterRadius float64
	Legend      Pos
	LegendStep  float64
}

func (r PieRenderer) Render(norm Normalized, sc Scales, colors Colorer) Geometry {
	var (
		g      Geometry
		labels []Shape
	)
	for i, rec := range norm.Records {
		var (
			fill = colors.Color(i, norm.Len())
			arc  Shape
		)
		arc.Kind = ShapeArc
		arc.Family = Pie
		arc.Index = i
		arc.Record = rec
		arc.Key = makeKey(Pie, strconv.Itoa(i))
		arc.Center = r.Center
		arc.Inner = r.InnerRadius
		arc.Radius = r.OuterRadius
		arc.Slice = sc.Angles[i]
		arc.Fill = fill
		arc.Opacity = 1
		g.Shapes = append(g.Shapes, arc)

		var txt Shape
		txt.Kind = ShapeText
		txt.Family = Pie
		txt.Index = -1
		txt.Key = makeKey(Pie, keyLabel, strconv.Itoa(i))
		txt.Center = arc.Centroid()
		txt.Text = fmt.Sprintf("%d%%", arc.Slice.Percent())
		txt.Fill = "#fff"
		txt.Opacity = 1
		labels = append(labels, txt)

		g.Legend = append(g.Legend, LegendEntry{
			Index: i,
			Label: norm.X(i).String(),
			Color: fill,
			Pos:   r.Legend.Add(0, float64(i)*r.LegendStep),
		})
	}
	g.Shapes = append(g.Shapes, labels...)
	return g
}

func numberAxes(norm Normalized, sc Scales, width, height float64, ticks int) []Axis {
	return []Axis{
		NumberAxis(sc.X, ticks, OrientBottom, axisTitle("x", norm.XKey), width, height),
		NumberAxis(sc.Y, ticks, OrientLeft, axisTitle("y", norm.YKey), height, width),
	}
}

func axisTitle(axis, key string) string {
	return fmt.Sprintf("%s-axis: %s", axis, key)
}

func getCircle(kind ChartKind, i int, rec Record, pos Pos, radius float64) Shape {
	var el Shape
	el.Kind = ShapeCircle
	el.Family = kind
	el.Index = i
	el.Record = rec
	el.Key = makeKey(kind, strconv.Itoa(i))
	el.Center = pos
	el.Radius = radius
	el.Opacity = 1
	return el
}

func getBasePath(color string, width float64) Shape {
	var pat Shape
	pat.Kind = ShapePolyline
	pat.Family = Line
	pat.Index = -1
	pat.Key = makeKey(Line, keyPath)
	pat.Stroke = color
	pat.Fill = "none"
	pat.Width = width
	pat.Opacity = 1
	return pat
}

func makeKey(kind ChartKind, parts ...string) string {
	key := kind.String()
	for _, p := range parts {
		key += ":" + p
	}
	return key
}
