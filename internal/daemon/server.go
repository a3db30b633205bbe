// Package daemon runs the todo HTTP service.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/thenoetrevino/todos/internal/api"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// Server represents the todo HTTP daemon
type Server struct {
	app             *app.App
	echo            *echo.Echo
	httpServer      *http.Server
	listener        net.Listener
	logger          *slog.Logger
	metrics         *Metrics
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	shutdownErr     error
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Todos  int    `json:"todos"`
}

// NewServer creates the daemon and binds its listener.
// Binding eagerly lets callers pass ":0" and read the chosen port from Addr.
func NewServer(cfg config.ServerConfig, application *app.App) (*Server, error) {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}

	s := &Server{
		app:             application,
		listener:        listener,
		logger:          application.Logger(),
		metrics:         NewMetrics(),
		shutdownTimeout: time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 10 * time.Second
	}

	s.echo = s.newEcho()
	s.httpServer = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// newEcho wires middleware and routes
func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = api.ErrorHandler(s.logger)

	// Order matters: metrics sees the final status written by the logger's error handling
	e.Use(s.metricsMiddleware)
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
	}))
	e.Use(middleware.BodyLimit("1M"))

	api.NewHandler(s.app).Register(e)
	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", s.handleMetrics)

	return e
}

func (s *Server) metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.metrics.RequestsInFlight.Add(1)
		defer s.metrics.RequestsInFlight.Add(-1)

		err := next(c)
		s.metrics.Observe(c.Request().Method, c.Response().Status)
		return err
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	ctx := c.Request().Context()
	var count int
	err := s.app.WithTodoService(ctx, func(svc todoservice.Service) error {
		var err error
		count, err = svc.CountTodos(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("health check failed", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Todos: count})
}

func (s *Server) handleMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metrics.GetSnapshot())
}

// Addr returns the bound listener address
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Handler exposes the routed handler for in-process tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics returns the live request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start serves requests until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("todo daemon listening", "addr", s.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("daemon context cancelled, shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve error: %w", err)
		}
		return nil
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Safe to call more than once.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.shutdownErr = fmt.Errorf("graceful shutdown failed: %w", err)
			return
		}
		s.logger.Info("todo daemon stopped")
	})
	return s.shutdownErr
}
