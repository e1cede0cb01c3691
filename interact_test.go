package plotgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerTooltip(t *testing.T) {
	g := renderKind(t, Scatter, numbers(5, 7, 10, 14), "x", "y")
	c := NewController(DefaultHoverDelta)
	c.Attach(g)

	target := g.Shapes[0]
	pointer := target.Center.Add(1, 1)
	c.Pointer(pointer)

	tip := c.Tooltip()
	assert.True(t, tip.Visible)
	assert.Equal(t, "x: 5, y: 7", tip.Content)
	assert.Equal(t, pointer.Add(10, -10), tip.Position)

	h, ok := c.Hovered()
	require.True(t, ok)
	assert.Equal(t, target.Key, h.Key)
	assert.Equal(t, target.Radius+DefaultHoverDelta, c.Radius(target.Key))
	assert.Equal(t, g.Shapes[1].Radius, c.Radius(g.Shapes[1].Key))

	next := pointer.Add(2, 0)
	c.Pointer(next)
	assert.Equal(t, next.Add(10, -10), c.Tooltip().Position)
	assert.Equal(t, "x: 5, y: 7", c.Tooltip().Content)

	c.Pointer(NewPos(-100, -100))
	assert.Equal(t, Tooltip{}, c.Tooltip())
	_, ok = c.Hovered()
	assert.False(t, ok)
}

func TestControllerEmphasizedHitArea(t *testing.T) {
	g := renderKind(t, Scatter, numbers(5, 7, 10, 14), "x", "y")
	c := NewController(DefaultHoverDelta)
	c.Attach(g)

	target := g.Shapes[0]
	c.Pointer(target.Center)
	c.Pointer(target.Center.Add(target.Radius+1, 0))
	assert.True(t, c.Tooltip().Visible)

	list := c.Emphasize(g.Shapes)
	assert.Equal(t, target.Radius+DefaultHoverDelta, list[0].Radius)
	assert.Equal(t, target.Radius, g.Shapes[0].Radius)
}

func TestControllerTopmost(t *testing.T) {
	var (
		below = getCircle(Scatter, 0, makeXY(Number(1), Number(1)), NewPos(10, 10), 5)
		above = getCircle(Scatter, 1, makeXY(Number(2), Number(2)), NewPos(12, 10), 5)
		c     = NewController(0)
	)
	c.Attach(Geometry{XKey: "x", YKey: "y", Shapes: []Shape{below, above}})

	s, ok := c.HitTest(NewPos(11, 10))
	require.True(t, ok)
	assert.Equal(t, above.Key, s.Key)
}

func TestControllerAttach(t *testing.T) {
	g := renderKind(t, Bar, salesData(), "year", "sales")
	c := NewController(DefaultHoverDelta)
	c.Attach(g)

	bar := g.Shapes[0]
	c.Enter(bar, bar.Pos)
	assert.Equal(t, "year: 2020, sales: 10", c.Tooltip().Content)

	c.Attach(g)
	assert.True(t, c.Tooltip().Visible)

	c.Attach(renderKind(t, Pie, salesData(), "year", "sales"))
	assert.False(t, c.Tooltip().Visible)
}

func TestControllerPie(t *testing.T) {
	g := renderKind(t, Pie, salesData(), "year", "sales")
	c := NewController(DefaultHoverDelta)
	c.Attach(g)

	arc := g.Shapes[1]
	c.Pointer(arc.Centroid())
	assert.Equal(t, "year: 2021, sales: 20", c.Tooltip().Content)
}
