package dash

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/midbel/plotgraph"
)

var ErrDisabled = errors.New("chart kind not enabled")

// Board holds what the user selected: the dataset, the enabled chart kinds,
// the active one and the axis keys. Every change runs the driver again.
// A Board is not safe for concurrent use.
type Board struct {
	Title string

	driver *plotgraph.Driver
	ctrl   *plotgraph.Controller
	logger *slog.Logger

	data    plotgraph.Dataset
	enabled plotgraph.KindSet
	active  plotgraph.ChartKind
	xKey    string
	yKey    string
	screen  float64

	pass plotgraph.Pass
}

func New(cfg Config, logger *slog.Logger) (*Board, error) {
	if logger == nil {
		logger = slog.Default()
	}
	set, err := cfg.Enabled()
	if err != nil {
		return nil, err
	}
	b := Board{
		Title:   cfg.Title,
		driver:  plotgraph.NewDriver(cfg.Style, logger),
		ctrl:    plotgraph.NewController(cfg.Style.Marker.Hover),
		logger:  logger,
		enabled: set,
		xKey:    cfg.X,
		yKey:    cfg.Y,
		screen:  cfg.Screen,
	}
	b.active, _ = set.First()
	if cfg.Kind != "" {
		k, err := plotgraph.ParseKind(cfg.Kind)
		if err != nil {
			return nil, err
		}
		if !set.Has(k) {
			return nil, fmt.Errorf("%s: %w", k, ErrDisabled)
		}
		b.active = k
	}
	return &b, nil
}

// SetClock replaces the time source of the driver.
func (b *Board) SetClock(now func() time.Time) {
	b.driver.Now = now
}

// SetDataset replaces the data of the board. Axis keys that are unset or
// that are not columns of data fall back to the first columns of data not
// already used by the other axis.
func (b *Board) SetDataset(data plotgraph.Dataset) plotgraph.Pass {
	if cols := data.Columns(); len(cols) > 0 {
		if !slices.Contains(cols, b.xKey) {
			b.xKey = pickColumn(cols, b.yKey)
		}
		if !slices.Contains(cols, b.yKey) {
			b.yKey = pickColumn(cols, b.xKey)
		}
	}
	b.data = data
	return b.run()
}

func pickColumn(cols []string, skip string) string {
	for _, c := range cols {
		if c != skip {
			return c
		}
	}
	return ""
}

// SetEnabled changes the chart kinds that can be activated. If the active
// kind is disabled, the first enabled kind in priority order becomes active.
func (b *Board) SetEnabled(set plotgraph.KindSet) plotgraph.Pass {
	b.enabled = set
	if !set.Has(b.active) {
		if k, ok := set.First(); ok {
			b.active = k
		}
	}
	return b.run()
}

func (b *Board) Activate(kind plotgraph.ChartKind) (plotgraph.Pass, error) {
	if !b.enabled.Has(kind) {
		return b.pass, fmt.Errorf("%s: %w", kind, ErrDisabled)
	}
	b.active = kind
	return b.run(), nil
}

func (b *Board) SetKeys(x, y string) plotgraph.Pass {
	b.xKey = x
	b.yKey = y
	return b.run()
}

func (b *Board) SetScreen(width float64) plotgraph.Pass {
	b.screen = width
	return b.run()
}

// Pointer moves the pointer to pos, relative to the drawing area.
func (b *Board) Pointer(pos plotgraph.Pos) plotgraph.Tooltip {
	b.ctrl.Pointer(pos)
	return b.ctrl.Tooltip()
}

func (b *Board) PointerLeave() plotgraph.Tooltip {
	b.ctrl.Leave()
	return b.ctrl.Tooltip()
}

func (b *Board) Tooltip() plotgraph.Tooltip {
	return b.ctrl.Tooltip()
}

func (b *Board) Pass() plotgraph.Pass {
	return b.pass
}

func (b *Board) Active() (plotgraph.ChartKind, bool) {
	return b.active, !b.enabled.Empty()
}

func (b *Board) Enabled() plotgraph.KindSet {
	return b.enabled
}

func (b *Board) Keys() (string, string) {
	return b.xKey, b.yKey
}

func (b *Board) Columns() []string {
	return b.data.Columns()
}

func (b *Board) Table() []plotgraph.TableRow {
	return b.pass.Geometry.Rows
}

// Frame gives the shapes of the current pass at elapsed time with the
// hovered marker emphasized.
func (b *Board) Frame(elapsed time.Duration) []plotgraph.Shape {
	return b.ctrl.Emphasize(b.pass.Frame(elapsed))
}

// Render draws the current pass as it is at elapsed time.
func (b *Board) Render(w io.Writer, elapsed time.Duration) {
	g := b.pass.Geometry
	g.Shapes = b.Frame(elapsed)

	c := plotgraph.Chart{
		Title:  b.Title,
		Swatch: b.driver.Style.Legend.Swatch,
	}
	c.Render(w, g, b.ctrl.Tooltip())
}

func (b *Board) run() plotgraph.Pass {
	in := plotgraph.Input{
		Dataset: b.data,
		Kind:    b.active,
		XKey:    b.xKey,
		YKey:    b.yKey,
		Screen:  b.screen,
	}
	if b.enabled.Empty() {
		in.Dataset = nil
	}
	b.pass = b.driver.Render(in)
	b.ctrl.Attach(b.pass.Geometry)
	return b.pass
}
