package plotgraph

import (
	"math"
	"time"
)

type Phase int

const (
	PhaseEnter Phase = iota
	PhaseUpdate
	PhaseExit
)

func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "enter"
	case PhaseUpdate:
		return "update"
	case PhaseExit:
		return "exit"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type Easing func(float64) float64

func EaseLinear(t float64) float64 {
	return t
}

func EaseCubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Transition moves a shape from one state to another. Before Delay has
// elapsed the shape is in its From state, after Delay+Duration it is in its
// To state.
type Transition struct {
	Key      string        `json:"key"`
	Phase    Phase         `json:"phase"`
	From     Shape         `json:"from"`
	To       Shape         `json:"to"`
	Delay    time.Duration `json:"delay"`
	Duration time.Duration `json:"duration"`
	Ease     Easing        `json:"-"`
}

func (t Transition) End() time.Duration {
	return t.Delay + t.Duration
}

// Progress gives the eased progress of t after elapsed time.
func (t Transition) Progress(elapsed time.Duration) float64 {
	elapsed -= t.Delay
	if elapsed <= 0 {
		if t.Duration <= 0 && t.Delay <= 0 {
			return 1
		}
		return 0
	}
	if elapsed >= t.Duration {
		return 1
	}
	x := float64(elapsed) / float64(t.Duration)
	if t.Ease != nil {
		x = t.Ease(x)
	}
	return x
}

func (t Transition) Done(elapsed time.Duration) bool {
	return elapsed >= t.End()
}

func (t Transition) At(elapsed time.Duration) Shape {
	return interpolate(t.From, t.To, t.Progress(elapsed))
}

func (t Timing) enter(s Shape) Transition {
	tr := Transition{
		Key:      s.Key,
		Phase:    PhaseEnter,
		From:     enterState(s),
		To:       s,
		Duration: t.Enter,
		Ease:     EaseCubicInOut,
	}
	switch s.Kind {
	case ShapeArc:
		tr.Duration = t.Reveal
	case ShapeText:
		tr.Delay = t.Label.Delay
		tr.Duration = t.Label.Duration
		tr.Ease = EaseLinear
	}
	return tr
}

func (t Timing) update(from, to Shape) Transition {
	return Transition{
		Key:      to.Key,
		Phase:    PhaseUpdate,
		From:     from,
		To:       to,
		Duration: t.Update,
		Ease:     EaseCubicInOut,
	}
}

func (t Timing) exit(s Shape, baseline float64) Transition {
	return Transition{
		Key:      s.Key,
		Phase:    PhaseExit,
		From:     s,
		To:       exitState(s, baseline),
		Duration: t.Exit,
		Ease:     EaseCubicInOut,
	}
}

// enterState is the state a shape appears from.
func enterState(s Shape) Shape {
	switch s.Kind {
	case ShapeCircle:
		s.Radius = 0
	case ShapeRect:
		s.Pos.Y += s.Dim.H
		s.Dim.H = 0
	case ShapeArc:
		s.Slice = Slice{}
	case ShapeText, ShapePolyline:
		s.Opacity = 0
	}
	return s
}

// exitState is the state a shape disappears to. Bars fall to baseline.
func exitState(s Shape, baseline float64) Shape {
	switch s.Kind {
	case ShapeCircle:
		s.Radius = 0
		s.Opacity = 0
	case ShapeRect:
		s.Pos.Y = baseline
		s.Dim.H = 0
	case ShapeArc:
		s.Slice.End = s.Slice.Start
		s.Opacity = 0
	default:
		s.Opacity = 0
	}
	return s
}
