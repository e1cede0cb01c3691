package server

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/midbel/plotgraph"
	"github.com/midbel/plotgraph/dash"
	"github.com/midbel/plotgraph/dataset"
	"github.com/patrickmn/go-cache"
)

const mimeSVG = "image/svg+xml"

type State struct {
	Kinds   []string `json:"kinds"`
	Active  string   `json:"active,omitempty"`
	X       string   `json:"x"`
	Y       string   `json:"y"`
	Columns []string `json:"columns"`
	Pass    int      `json:"pass"`
	Error   string   `json:"error,omitempty"`
}

type keysRequest struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type kindRequest struct {
	Kind string `json:"kind"`
}

type kindsRequest struct {
	Kinds []string `json:"kinds"`
}

type screenRequest struct {
	Width float64 `json:"width"`
}

type pointerRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) getState(c echo.Context) error {
	var st State
	s.read(func(b *dash.Board) {
		st = makeState(b)
	})
	return c.JSON(http.StatusOK, st)
}

func makeState(b *dash.Board) State {
	var st State
	for _, k := range b.Enabled().Kinds() {
		st.Kinds = append(st.Kinds, k.String())
	}
	if k, ok := b.Active(); ok {
		st.Active = k.String()
	}
	st.X, st.Y = b.Keys()
	st.Columns = b.Columns()
	pass := b.Pass()
	st.Pass = pass.Generation
	if pass.Err != nil {
		st.Error = pass.Err.Error()
	}
	return st
}

// getChart draws the current pass. The t parameter gives the elapsed time
// since the start of the pass, by default the time elapsed so far.
func (s *Server) getChart(c echo.Context) error {
	var elapsed time.Duration
	if str := c.QueryParam("t"); str != "" {
		d, err := time.ParseDuration(str)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		elapsed = d
	}
	var body []byte
	s.read(func(b *dash.Board) {
		pass := b.Pass()
		if c.QueryParam("t") == "" {
			elapsed = s.now().Sub(pass.Start)
		}
		elapsed = min(max(elapsed, 0), pass.Duration())

		key := fmt.Sprintf("%d:%d", s.version, elapsed)
		if v, ok := s.cache.Get(key); ok {
			body = v.([]byte)
			return
		}
		var buf bytes.Buffer
		b.Render(&buf, elapsed)
		body = buf.Bytes()
		s.cache.Set(key, body, cache.DefaultExpiration)
	})
	return c.Blob(http.StatusOK, mimeSVG, body)
}

func (s *Server) getTable(c echo.Context) error {
	var rows []plotgraph.TableRow
	s.read(func(b *dash.Board) {
		rows = b.Table()
	})
	if rows == nil {
		rows = []plotgraph.TableRow{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) getTooltip(c echo.Context) error {
	var tip plotgraph.Tooltip
	s.read(func(b *dash.Board) {
		tip = b.Tooltip()
	})
	return c.JSON(http.StatusOK, tip)
}

func (s *Server) getTransitions(c echo.Context) error {
	var list []plotgraph.Transition
	s.read(func(b *dash.Board) {
		list = b.Pass().Transitions
	})
	if list == nil {
		list = []plotgraph.Transition{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) putDataset(c echo.Context) error {
	opts := dataset.Options{
		Delimiter: c.QueryParam("delimiter"),
		Sheet:     c.QueryParam("sheet"),
	}
	if str := c.QueryParam("format"); str != "" {
		f, err := dataset.ParseFormat(str)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		opts.Format = f
	}
	data, err := dataset.Read(c.Request().Body, opts)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return s.respond(c, func(b *dash.Board) error {
		b.SetDataset(data)
		return nil
	})
}

func (s *Server) putKeys(c echo.Context) error {
	var req keysRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return s.respond(c, func(b *dash.Board) error {
		b.SetKeys(req.X, req.Y)
		return nil
	})
}

func (s *Server) putKind(c echo.Context) error {
	var req kindRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	kind, err := plotgraph.ParseKind(req.Kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return s.respond(c, func(b *dash.Board) error {
		if _, err := b.Activate(kind); err != nil {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return nil
	})
}

func (s *Server) putKinds(c echo.Context) error {
	var req kindsRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	var set plotgraph.KindSet
	for _, str := range req.Kinds {
		k, err := plotgraph.ParseKind(str)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		set = set.Enable(k)
	}
	return s.respond(c, func(b *dash.Board) error {
		b.SetEnabled(set)
		return nil
	})
}

func (s *Server) putScreen(c echo.Context) error {
	var req screenRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return s.respond(c, func(b *dash.Board) error {
		b.SetScreen(req.Width)
		return nil
	})
}

func (s *Server) postPointer(c echo.Context) error {
	var req pointerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	var tip plotgraph.Tooltip
	err := s.update(func(b *dash.Board) error {
		tip = b.Pointer(plotgraph.NewPos(req.X, req.Y))
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tip)
}

func (s *Server) deletePointer(c echo.Context) error {
	var tip plotgraph.Tooltip
	err := s.update(func(b *dash.Board) error {
		tip = b.PointerLeave()
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tip)
}

func (s *Server) respond(c echo.Context, fn func(*dash.Board) error) error {
	var st State
	err := s.update(func(b *dash.Board) error {
		if err := fn(b); err != nil {
			return err
		}
		st = makeState(b)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}
