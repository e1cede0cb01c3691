package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/midbel/plotgraph/dash"
	"github.com/patrickmn/go-cache"
)

// Server exposes a board over HTTP. Requests are serialized on the board.
type Server struct {
	addr   string
	echo   *echo.Echo
	logger *slog.Logger
	cache  *cache.Cache
	now    func() time.Time

	mu      sync.Mutex
	board   *dash.Board
	version int
}

func New(board *dash.Board, cfg dash.Server, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Expiry <= 0 {
		cfg.Expiry = dash.DefaultExpiry
	}
	s := Server{
		addr:   cfg.Addr,
		logger: logger,
		cache:  cache.New(cfg.Expiry, 2*cfg.Expiry),
		now:    time.Now,
		board:  board,
	}
	s.echo = s.setup()
	return &s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		errc <- s.echo.Start(s.addr)
	}()
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sub, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(sub)
	}
}

func (s *Server) setup() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprintf("%v", he.Message)
			}
		}
		if !c.Response().Committed {
			if err := c.JSON(code, map[string]string{"error": msg}); err != nil {
				s.logger.Error("write error response", "err", err)
			}
		}
	}
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogError:    true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				s.logger.LogAttrs(context.Background(), slog.LevelInfo, "request",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
				)
			} else {
				s.logger.LogAttrs(context.Background(), slog.LevelError, "request",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	}))

	e.GET("/state", s.getState)
	e.GET("/chart.svg", s.getChart)
	e.GET("/table", s.getTable)
	e.GET("/tooltip", s.getTooltip)
	e.GET("/transitions", s.getTransitions)

	e.PUT("/dataset", s.putDataset)
	e.PUT("/keys", s.putKeys)
	e.PUT("/kind", s.putKind)
	e.PUT("/kinds", s.putKinds)
	e.PUT("/screen", s.putScreen)
	e.POST("/pointer", s.postPointer)
	e.DELETE("/pointer", s.deletePointer)
	return e
}

// update runs fn on the board and invalidates what was rendered before.
func (s *Server) update(fn func(*dash.Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.board); err != nil {
		return err
	}
	s.version++
	return nil
}

func (s *Server) read(fn func(*dash.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.board)
}
