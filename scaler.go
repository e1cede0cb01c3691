package plotgraph

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

const (
	fullcircle = 2 * math.Pi
	halfcircle = math.Pi

	// BandPadding is the fraction of a band step left empty around each bar.
	BandPadding = 0.1
)

type ScalerConstraint interface {
	~float64 | ~string
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

func (r Range) at(frac float64) float64 {
	return r.F + frac*r.Len()
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
	// Degenerate reports that the domain is empty or collapsed and that
	// nothing should be drawn against this scaler.
	Degenerate() bool
}

type BandScaler interface {
	Scaler[string]
	Bandwidth() float64
}

type linearScaler struct {
	Range
	lin  scale.Linear
	flat bool
}

// LinearScaler maps the domain [0, max] onto rg. The lower bound of the
// domain is always 0, negative values are not taken into account. A max
// lower or equal to 0 gives a degenerate scaler mapping everything to rg.F.
func LinearScaler(max float64, rg Range) Scaler[float64] {
	s := linearScaler{
		Range: rg,
		lin: scale.Linear{
			Min: 0,
			Max: max,
		},
	}
	s.flat = math.IsNaN(max) || math.IsInf(max, 0) || max <= 0
	return s
}

func (s linearScaler) Scale(v float64) float64 {
	if s.flat {
		return s.F
	}
	return s.at(s.lin.Map(v))
}

func (s linearScaler) Space() float64 {
	if s.flat {
		return 0
	}
	return s.Len() / (s.lin.Max - s.lin.Min)
}

func (s linearScaler) Values(c int) []float64 {
	if s.flat || c <= 0 {
		return nil
	}
	major, _ := s.lin.Ticks(scale.TickOptions{Max: c})
	return major
}

func (s linearScaler) Degenerate() bool {
	return s.flat
}

type bandScaler struct {
	Range
	Strings []string
	Padding float64

	index map[string]int
}

// StringScaler divides rg in evenly spaced bands, one per distinct string,
// in the order given. Padding is the fraction of a step kept empty between
// and around the bands.
func StringScaler(str []string, rg Range, padding float64) BandScaler {
	s := bandScaler{
		Range:   rg,
		Padding: padding,
		index:   make(map[string]int),
	}
	for _, v := range str {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = len(s.Strings)
		s.Strings = append(s.Strings, v)
	}
	return s
}

func (s bandScaler) Scale(v string) float64 {
	x, ok := s.index[v]
	if !ok {
		return s.F
	}
	return s.F + s.start() + float64(x)*s.Space()
}

func (s bandScaler) Space() float64 {
	n := float64(len(s.Strings))
	if n == 0 {
		return 0
	}
	return s.Len() / math.Max(1, n-s.Padding+2*s.Padding)
}

func (s bandScaler) Bandwidth() float64 {
	return s.Space() * (1 - s.Padding)
}

func (s bandScaler) start() float64 {
	n := float64(len(s.Strings))
	return (s.Len() - s.Space()*(n-s.Padding)) / 2
}

func (s bandScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

func (s bandScaler) Degenerate() bool {
	return len(s.Strings) == 0
}

// Slice is the angular interval allocated to one record of a pie chart.
// Angles are in radians, starting at 12 o'clock and growing clockwise.
type Slice struct {
	Start float64
	End   float64
}

func (s Slice) Span() float64 {
	return s.End - s.Start
}

func (s Slice) Mid() float64 {
	return s.Start + s.Span()/2
}

// Percent is the share of the full circle covered by s rounded down.
func (s Slice) Percent() int {
	return int(math.Floor(s.Span() / fullcircle * 100))
}

// AllocateAngles gives each value a span proportional to its share of the
// total, in the order of values. Negative values get an empty span. The
// second result is false when the total is not positive.
func AllocateAngles(values []float64) ([]Slice, bool) {
	var total float64
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, false
	}
	var (
		list  = make([]Slice, len(values))
		angle float64
	)
	for i, v := range values {
		list[i].Start = angle
		if v > 0 {
			angle += fullcircle * v / total
		}
		list[i].End = angle
	}
	return list, true
}

// Scales groups the scalers needed to draw one chart kind. Only the fields
// relevant to the kind are set.
type Scales struct {
	Kind   ChartKind
	X      Scaler[float64]
	Band   BandScaler
	Y      Scaler[float64]
	Angles []Slice
}

func (s Scales) Degenerate() bool {
	switch s.Kind {
	case Scatter, Line:
		return s.X == nil || s.Y == nil || s.X.Degenerate() || s.Y.Degenerate()
	case Bar:
		return s.Band == nil || s.Y == nil || s.Band.Degenerate() || s.Y.Degenerate()
	case Pie:
		return len(s.Angles) == 0
	default:
		return true
	}
}

func BuildScales(norm Normalized, kind ChartKind, lay Layout) Scales {
	s := Scales{
		Kind: kind,
	}
	var (
		width  = lay.DrawingWidth()
		height = lay.DrawingHeight()
	)
	switch kind {
	case Scatter, Line:
		s.X = LinearScaler(maxOf(norm.XFloats()), NewRange(0, width))
		s.Y = LinearScaler(maxOf(norm.YFloats()), NewRange(height, 0))
	case Bar:
		s.Band = StringScaler(norm.Labels(), NewRange(0, width), BandPadding)
		s.Y = LinearScaler(maxOf(norm.YFloats()), NewRange(height, 0))
	case Pie:
		s.Angles, _ = AllocateAngles(norm.YFloats())
	}
	return s
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
