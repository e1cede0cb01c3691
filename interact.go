package plotgraph

import (
	"fmt"
)

const DefaultHoverDelta = 3

var DefaultOffset = NewPos(10, -10)

type Tooltip struct {
	Visible  bool   `json:"visible"`
	Content  string `json:"content"`
	Position Pos    `json:"position"`
}

// Controller tracks the shape under the pointer and the tooltip describing
// it. Positions are relative to the drawing area.
type Controller struct {
	Offset Pos
	Delta  float64

	xKey   string
	yKey   string
	shapes []Shape

	hovered string
	tooltip Tooltip
}

func NewController(delta float64) *Controller {
	return &Controller{
		Offset: DefaultOffset,
		Delta:  delta,
	}
}

// Attach replaces the shapes that can be hovered. The hovered shape stays
// hovered if a shape with the same key still exists, otherwise the tooltip
// is hidden.
func (c *Controller) Attach(g Geometry) {
	c.xKey = g.XKey
	c.yKey = g.YKey
	c.shapes = c.shapes[:0]
	for _, s := range g.Shapes {
		if s.Hoverable() {
			c.shapes = append(c.shapes, s)
		}
	}
	if c.hovered == "" {
		return
	}
	s, ok := c.find(c.hovered)
	if !ok {
		c.Leave()
		return
	}
	c.tooltip.Content = c.describe(s)
}

// HitTest returns the hoverable shape under p. When shapes overlap, the
// last drawn wins.
func (c *Controller) HitTest(p Pos) (Shape, bool) {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := c.shapes[i]
		if s.Contains(p, c.Radius(s.Key)) {
			return s, true
		}
	}
	return Shape{}, false
}

func (c *Controller) Enter(s Shape, p Pos) {
	if !s.Hoverable() {
		return
	}
	c.hovered = s.Key
	c.tooltip = Tooltip{
		Visible:  true,
		Content:  c.describe(s),
		Position: p.Add(c.Offset.X, c.Offset.Y),
	}
}

func (c *Controller) Move(p Pos) {
	if c.hovered == "" {
		return
	}
	c.tooltip.Position = p.Add(c.Offset.X, c.Offset.Y)
}

func (c *Controller) Leave() {
	c.hovered = ""
	c.tooltip = Tooltip{}
}

// Pointer dispatches a pointer position to Enter, Move or Leave depending on
// the shape found under it.
func (c *Controller) Pointer(p Pos) {
	s, ok := c.HitTest(p)
	switch {
	case !ok:
		c.Leave()
	case s.Key == c.hovered:
		c.Move(p)
	default:
		c.Enter(s, p)
	}
}

func (c *Controller) Tooltip() Tooltip {
	return c.tooltip
}

func (c *Controller) Hovered() (Shape, bool) {
	if c.hovered == "" {
		return Shape{}, false
	}
	return c.find(c.hovered)
}

// Radius gives the radius a circle identified by key should be drawn with.
func (c *Controller) Radius(key string) float64 {
	s, ok := c.find(key)
	if !ok || s.Kind != ShapeCircle {
		return 0
	}
	if key == c.hovered {
		return s.Radius + c.Delta
	}
	return s.Radius
}

// Emphasize returns a copy of list where the hovered circle is enlarged.
func (c *Controller) Emphasize(list []Shape) []Shape {
	out := make([]Shape, len(list))
	copy(out, list)
	if c.hovered == "" {
		return out
	}
	for i := range out {
		if out[i].Key == c.hovered && out[i].Kind == ShapeCircle {
			out[i].Radius += c.Delta
		}
	}
	return out
}

func (c *Controller) describe(s Shape) string {
	x, _ := s.Record.Get(c.xKey)
	y, _ := s.Record.Get(c.yKey)
	return fmt.Sprintf("%s: %s, %s: %s", c.xKey, x, c.yKey, y)
}

func (c *Controller) find(key string) (Shape, bool) {
	for _, s := range c.shapes {
		if s.Key == key {
			return s, true
		}
	}
	return Shape{}, false
}
