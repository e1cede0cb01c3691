package plotgraph

import (
	"time"
)

// Style gathers the tunable constants used when building geometry.
type Style struct {
	Marker struct {
		Radius float64 `yaml:"radius"`
		// Hover is added to the radius of a hovered marker.
		Hover float64 `yaml:"hover"`
	} `yaml:"marker"`
	Line struct {
		Color string  `yaml:"color"`
		Width float64 `yaml:"width"`
	} `yaml:"line"`
	Pie struct {
		Inset float64 `yaml:"inset"`
	} `yaml:"pie"`
	Legend struct {
		Offset float64 `yaml:"offset"`
		Top    float64 `yaml:"top"`
		Step   float64 `yaml:"step"`
		Swatch float64 `yaml:"swatch"`
	} `yaml:"legend"`
	Timing  Timing `yaml:"timing"`
	Ticks   int    `yaml:"ticks"`
	Palette string `yaml:"palette"`
}

type Timing struct {
	Update time.Duration `yaml:"update"`
	Enter  time.Duration `yaml:"enter"`
	Exit   time.Duration `yaml:"exit"`
	Reveal time.Duration `yaml:"reveal"`
	Label  struct {
		Delay    time.Duration `yaml:"delay"`
		Duration time.Duration `yaml:"duration"`
	} `yaml:"label"`
}

func DefaultTiming() Timing {
	t := Timing{
		Update: 500 * time.Millisecond,
		Enter:  500 * time.Millisecond,
		Exit:   time.Second,
		Reveal: 800 * time.Millisecond,
	}
	t.Label.Delay = 400 * time.Millisecond
	t.Label.Duration = 200 * time.Millisecond
	return t
}

func DefaultStyle() Style {
	var s Style
	s.Marker.Radius = 5
	s.Marker.Hover = 3
	s.Line.Color = Category10[0]
	s.Line.Width = 2
	s.Pie.Inset = 10
	s.Legend.Offset = 100
	s.Legend.Top = 20
	s.Legend.Step = 25
	s.Legend.Swatch = 20
	s.Timing = DefaultTiming()
	s.Ticks = 10
	return s
}

// Colorer returns the palette set in the style or, when none is set, the
// default palette of kind.
func (s Style) Colorer(kind ChartKind) (Colorer, error) {
	if s.Palette != "" {
		return GetColorer(s.Palette)
	}
	return DefaultColorer(kind), nil
}
