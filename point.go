package plotgraph

import (
	"math"
)

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

func (p Pos) Add(x, y float64) Pos {
	p.X += x
	p.Y += y
	return p
}

func (p Pos) Dist(other Pos) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Pos) Reverse() Pos {
	return Pos{
		X: p.Y,
		Y: p.X,
	}
}

// getPosFromAngle returns the point at radius from the origin. Angle 0 points
// to 12 o'clock and angles grow clockwise.
func getPosFromAngle(angle, radius float64) Pos {
	var (
		x = radius * math.Sin(angle)
		y = -radius * math.Cos(angle)
	)
	return NewPos(x, y)
}

type Dim struct {
	W float64
	H float64
}

func NewDim(w, h float64) Dim {
	return Dim{
		W: w,
		H: h,
	}
}
