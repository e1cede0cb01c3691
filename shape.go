package plotgraph

import (
	"math"
)

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapePolyline
	ShapeRect
	ShapeArc
	ShapeText
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapePolyline:
		return "polyline"
	case ShapeRect:
		return "rect"
	case ShapeArc:
		return "arc"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

func (k ShapeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Shape is a declarative drawable. Only the fields relevant to its Kind are
// used. Shapes bound to a record keep the record so that hovering can
// describe it; Index is -1 otherwise.
type Shape struct {
	Key    string    `json:"key"`
	Kind   ShapeKind `json:"kind"`
	Family ChartKind `json:"family"`
	Index  int       `json:"index"`
	Record Record    `json:"-"`

	Center Pos     `json:"center"`
	Radius float64 `json:"radius,omitempty"`
	Inner  float64 `json:"inner,omitempty"`
	Slice  Slice   `json:"slice"`
	Pos    Pos     `json:"pos"`
	Dim    Dim     `json:"dim"`
	Points []Pos   `json:"points,omitempty"`

	Text    string  `json:"text,omitempty"`
	Fill    string  `json:"fill,omitempty"`
	Stroke  string  `json:"stroke,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Opacity float64 `json:"opacity"`
}

func (s Shape) Bound() bool {
	return s.Index >= 0
}

func (s Shape) Hoverable() bool {
	if !s.Bound() {
		return false
	}
	switch s.Kind {
	case ShapeCircle, ShapeRect, ShapeArc:
		return true
	default:
		return false
	}
}

// Contains reports whether p falls inside s. Circles are tested against
// radius instead of their own Radius so that an emphasized marker keeps
// its enlarged hit area.
func (s Shape) Contains(p Pos, radius float64) bool {
	switch s.Kind {
	case ShapeCircle:
		return s.Center.Dist(p) <= radius
	case ShapeRect:
		return p.X >= s.Pos.X && p.X <= s.Pos.X+s.Dim.W && p.Y >= s.Pos.Y && p.Y <= s.Pos.Y+s.Dim.H
	case ShapeArc:
		dist := s.Center.Dist(p)
		if dist > s.Radius || dist < s.Inner || s.Slice.Span() <= 0 {
			return false
		}
		angle := math.Atan2(p.X-s.Center.X, -(p.Y - s.Center.Y))
		if angle < 0 {
			angle += fullcircle
		}
		return angle >= s.Slice.Start && angle < s.Slice.End
	default:
		return false
	}
}

// Centroid is the middle of an arc, halfway between its radii.
func (s Shape) Centroid() Pos {
	var (
		r   = (s.Inner + s.Radius) / 2
		pos = getPosFromAngle(s.Slice.Mid(), r)
	)
	return pos.Add(s.Center.X, s.Center.Y)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpPos(a, b Pos, t float64) Pos {
	return NewPos(lerp(a.X, b.X, t), lerp(a.Y, b.Y, t))
}

// interpolate returns the state between from and to at t in [0, 1]. Colors,
// text and record are taken from to. Polylines with a different number of
// points can not be interpolated and jump to to.
func interpolate(from, to Shape, t float64) Shape {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	s := to
	s.Center = lerpPos(from.Center, to.Center, t)
	s.Radius = lerp(from.Radius, to.Radius, t)
	s.Inner = lerp(from.Inner, to.Inner, t)
	s.Slice.Start = lerp(from.Slice.Start, to.Slice.Start, t)
	s.Slice.End = lerp(from.Slice.End, to.Slice.End, t)
	s.Pos = lerpPos(from.Pos, to.Pos, t)
	s.Dim.W = lerp(from.Dim.W, to.Dim.W, t)
	s.Dim.H = lerp(from.Dim.H, to.Dim.H, t)
	s.Width = lerp(from.Width, to.Width, t)
	s.Opacity = lerp(from.Opacity, to.Opacity, t)
	if len(from.Points) == len(to.Points) {
		s.Points = make([]Pos, len(to.Points))
		for i := range to.Points {
			s.Points[i] = lerpPos(from.Points[i], to.Points[i], t)
		}
	}
	return s
}
