package plotgraph

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testDriver() (*Driver, *clock) {
	var (
		clk = &clock{now: time.Unix(1000, 0)}
		d   = NewDriver(DefaultStyle(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	)
	d.Now = clk.Now
	return d, clk
}

func phases(p Pass) map[Phase]int {
	set := make(map[Phase]int)
	for _, t := range p.Transitions {
		set[t.Phase]++
	}
	return set
}

func salesInput(kind ChartKind) Input {
	return Input{
		Dataset: salesData(),
		Kind:    kind,
		XKey:    "year",
		YKey:    "sales",
	}
}

func TestDriverEnter(t *testing.T) {
	d, _ := testDriver()
	pass := d.Render(salesInput(Bar))
	require.NoError(t, pass.Err)

	assert.Equal(t, map[Phase]int{PhaseEnter: 2}, phases(pass))
	assert.Equal(t, 500*time.Millisecond, pass.Duration())

	start := pass.Frame(0)
	for _, s := range start {
		assert.Zero(t, s.Dim.H)
	}
	end := pass.Frame(pass.Duration())
	assert.Equal(t, pass.Geometry.Shapes, end)
}

func TestDriverUpdate(t *testing.T) {
	d, clk := testDriver()
	first := d.Render(salesInput(Bar))
	clk.Advance(time.Second)

	in := salesInput(Bar)
	in.Dataset = append(in.Dataset, MakeRecord(
		Field{Name: "year", Value: Number(2021)},
		Field{Name: "sales", Value: Number(40)},
	))
	pass := d.Render(in)
	assert.Equal(t, map[Phase]int{PhaseUpdate: 2, PhaseEnter: 1}, phases(pass))
	assert.Empty(t, pass.Cancelled)

	for _, tr := range pass.Transitions {
		if tr.Phase != PhaseUpdate {
			continue
		}
		prev, ok := first.Geometry.Find(tr.Key)
		require.True(t, ok)
		assert.Equal(t, prev, tr.From)
		assert.Equal(t, 500*time.Millisecond, tr.Duration)
	}
}

func TestDriverEmptyDataset(t *testing.T) {
	d, clk := testDriver()
	d.Render(salesInput(Scatter))
	clk.Advance(time.Second)

	in := salesInput(Scatter)
	in.Dataset = nil
	pass := d.Render(in)

	assert.True(t, pass.Geometry.Empty())
	assert.Equal(t, map[Phase]int{PhaseExit: 2}, phases(pass))
	assert.Equal(t, time.Second, pass.Duration())
	assert.Len(t, pass.Frame(500*time.Millisecond), 2)
	assert.Empty(t, pass.Frame(time.Second))
}

func TestDriverSwitchKind(t *testing.T) {
	d, clk := testDriver()
	d.Render(salesInput(Bar))
	clk.Advance(time.Second)

	pass := d.Render(salesInput(Pie))
	assert.Equal(t, map[Phase]int{PhaseExit: 2, PhaseEnter: 4}, phases(pass))

	for _, tr := range pass.Transitions {
		switch tr.Phase {
		case PhaseExit:
			assert.Equal(t, Bar, tr.From.Family)
			assert.Equal(t, ShapeRect, tr.From.Kind)
			assert.Zero(t, tr.To.Dim.H)
			assert.Equal(t, DefaultLayout(Bar, 0).DrawingHeight(), tr.To.Pos.Y)
		case PhaseEnter:
			assert.Equal(t, Pie, tr.To.Family)
		default:
			t.Errorf("%s: unexpected %s transition", tr.Key, tr.Phase)
		}
	}
}

func TestDriverPieReveal(t *testing.T) {
	d, _ := testDriver()
	pass := d.Render(salesInput(Pie))

	for _, tr := range pass.Transitions {
		switch tr.To.Kind {
		case ShapeArc:
			assert.Equal(t, 800*time.Millisecond, tr.Duration)
			assert.Equal(t, Slice{}, tr.From.Slice)
		case ShapeText:
			assert.Equal(t, 400*time.Millisecond, tr.Delay)
			assert.Equal(t, 200*time.Millisecond, tr.Duration)
			assert.Zero(t, tr.At(300*time.Millisecond).Opacity)
			assert.Equal(t, 1.0, tr.At(600*time.Millisecond).Opacity)
		}
	}
}

func TestDriverInterrupted(t *testing.T) {
	d, clk := testDriver()
	d.Render(salesInput(Bar))
	clk.Advance(time.Second)

	in := salesInput(Bar)
	in.Dataset = Dataset{
		MakeRecord(Field{Name: "year", Value: Number(2020)}, Field{Name: "sales", Value: Number(20)}),
		MakeRecord(Field{Name: "year", Value: Number(2021)}, Field{Name: "sales", Value: Number(20)}),
	}
	moving := d.Render(in)
	clk.Advance(250 * time.Millisecond)
	current := moving.Frame(250 * time.Millisecond)

	pass := d.Render(salesInput(Bar))
	assert.ElementsMatch(t, []string{"bar:2020", "bar:2021"}, pass.Cancelled)
	for i, tr := range pass.Transitions {
		assert.Equal(t, PhaseUpdate, tr.Phase)
		assert.Equal(t, current[i], tr.From)
	}
	assert.Equal(t, 3, pass.Generation)
}

func TestDriverMixedKinds(t *testing.T) {
	d, _ := testDriver()
	pass := d.Render(Input{
		Dataset: Dataset{
			makeXY(Number(1), Number(1)),
			makeXY(Text("a"), Number(1)),
		},
		Kind: Scatter,
		XKey: "x",
		YKey: "y",
	})
	var mixed *MixedKindError
	assert.ErrorAs(t, pass.Err, &mixed)
	assert.True(t, pass.Geometry.Empty())
}

func TestDriverInvalidKind(t *testing.T) {
	d, _ := testDriver()
	pass := d.Render(Input{Kind: ChartKind(42)})
	assert.ErrorIs(t, pass.Err, ErrKind)
}

func TestTransitionProgress(t *testing.T) {
	tr := Transition{
		Delay:    100 * time.Millisecond,
		Duration: 200 * time.Millisecond,
		Ease:     EaseLinear,
	}
	assert.Zero(t, tr.Progress(50*time.Millisecond))
	assert.InDelta(t, 0.5, tr.Progress(200*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, tr.Progress(time.Second))
	assert.True(t, tr.Done(300*time.Millisecond))

	assert.InDelta(t, 0.5, EaseCubicInOut(0.5), 1e-9)
	assert.Zero(t, EaseCubicInOut(0))
	assert.Equal(t, 1.0, EaseCubicInOut(1))
}
