package plotgraph

import (
	"errors"
	"log/slog"
	"time"
)

type Input struct {
	Dataset Dataset
	Kind    ChartKind
	XKey    string
	YKey    string
	// Screen is the width available to the chart, 0 when unknown.
	Screen float64
}

// Pass is the result of one render: the target geometry and the transitions
// bringing the shapes on screen to it. Exiting shapes come first so that the
// target shapes are drawn above them.
type Pass struct {
	Generation  int          `json:"generation"`
	Start       time.Time    `json:"start"`
	Geometry    Geometry     `json:"geometry"`
	Transitions []Transition `json:"transitions"`
	// Cancelled lists the keys of the transitions of the previous pass that
	// were still running when this pass started.
	Cancelled []string `json:"cancelled,omitempty"`
	Err       error    `json:"-"`
}

// Duration is the time needed for every transition of p to complete.
func (p Pass) Duration() time.Duration {
	var d time.Duration
	for _, t := range p.Transitions {
		d = max(d, t.End())
	}
	return d
}

// Frame samples every shape at elapsed time since the start of the pass.
// Exiting shapes are dropped once their transition is done.
func (p Pass) Frame(elapsed time.Duration) []Shape {
	var list []Shape
	for _, t := range p.Transitions {
		if t.Phase == PhaseExit && t.Done(elapsed) {
			continue
		}
		list = append(list, t.At(elapsed))
	}
	return list
}

func (p Pass) At(now time.Time) []Shape {
	return p.Frame(now.Sub(p.Start))
}

func (p Pass) Running(elapsed time.Duration) bool {
	return elapsed < p.Duration()
}

// Driver runs the whole pipeline each time its input changes and keeps
// track of what is on screen to animate from it.
type Driver struct {
	Style  Style
	Layout func(ChartKind, float64) Layout
	Now    func() time.Time

	logger *slog.Logger
	gen    int
	last   *Pass
}

func NewDriver(style Style, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		Style:  style,
		Layout: DefaultLayout,
		Now:    time.Now,
		logger: logger,
	}
}

// Current returns the last pass rendered.
func (d *Driver) Current() (Pass, bool) {
	if d.last == nil {
		return Pass{}, false
	}
	return *d.last, true
}

func (d *Driver) Render(in Input) Pass {
	d.gen++
	var (
		now  = d.Now()
		pass = Pass{
			Generation: d.gen,
			Start:      now,
		}
	)
	pass.Geometry, pass.Err = d.geometry(in)
	if pass.Err != nil {
		var mixed *MixedKindError
		if errors.As(pass.Err, &mixed) {
			d.logger.Warn("dataset can not be drawn", "kind", in.Kind, "column", mixed.Column, "err", pass.Err)
		} else {
			d.logger.Warn("render failed", "kind", in.Kind, "err", pass.Err)
		}
	}
	d.reconcile(&pass, now)
	d.last = &pass

	var enter, update, exit int
	for _, t := range pass.Transitions {
		switch t.Phase {
		case PhaseEnter:
			enter++
		case PhaseUpdate:
			update++
		case PhaseExit:
			exit++
		}
	}
	d.logger.Debug("render pass",
		"generation", pass.Generation,
		"kind", in.Kind,
		"x", in.XKey,
		"y", in.YKey,
		"enter", enter,
		"update", update,
		"exit", exit,
		"cancelled", len(pass.Cancelled),
	)
	return pass
}

func (d *Driver) geometry(in Input) (Geometry, error) {
	var (
		lay = d.Layout(in.Kind, in.Screen)
		geo = Geometry{
			Kind:   in.Kind,
			XKey:   in.XKey,
			YKey:   in.YKey,
			Layout: lay,
		}
	)
	if !in.Kind.Valid() {
		return geo, ErrKind
	}
	norm, err := Normalize(in.Dataset, in.XKey, in.YKey)
	if err != nil {
		return geo, err
	}
	colors, err := d.Style.Colorer(in.Kind)
	if err != nil {
		return geo, err
	}
	return Render(in.Kind, norm, lay, d.Style, colors), nil
}

func (d *Driver) reconcile(pass *Pass, now time.Time) {
	var (
		timing   = d.Style.Timing
		current  = make(map[string]Shape)
		order    []string
		baseline float64
	)
	if d.last != nil {
		elapsed := now.Sub(d.last.Start)
		for _, t := range d.last.Transitions {
			if t.Phase == PhaseExit && t.Done(elapsed) {
				continue
			}
			if !t.Done(elapsed) {
				pass.Cancelled = append(pass.Cancelled, t.Key)
			}
			current[t.Key] = t.At(elapsed)
			order = append(order, t.Key)
		}
		baseline = d.last.Geometry.Layout.DrawingHeight()
	}
	target := make(map[string]struct{})
	for _, s := range pass.Geometry.Shapes {
		target[s.Key] = struct{}{}
	}
	for _, k := range order {
		if _, ok := target[k]; ok {
			continue
		}
		pass.Transitions = append(pass.Transitions, timing.exit(current[k], baseline))
	}
	for _, s := range pass.Geometry.Shapes {
		if prev, ok := current[s.Key]; ok {
			pass.Transitions = append(pass.Transitions, timing.update(prev, s))
		} else {
			pass.Transitions = append(pass.Transitions, timing.enter(s))
		}
	}
}
