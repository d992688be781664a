// Package server exposes the timeline page, SVG and layout JSON over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"timeline2html/internal"
	"timeline2html/internal/source"
	"timeline2html/render"
	"timeline2html/timeline"
)

// Source provides the events drawn on every request.
type Source interface {
	Events(ctx context.Context) ([]timeline.Event, error)
}

// StaticSource serves a fixed list of events.
type StaticSource []timeline.Event

// Events implements Source.
func (s StaticSource) Events(context.Context) ([]timeline.Event, error) {
	return s, nil
}

// FileSource reloads an event file on every request so edits show up on refresh.
type FileSource struct {
	Path    string
	Options source.Options
}

// Events implements Source.
func (s FileSource) Events(context.Context) ([]timeline.Event, error) {
	return source.Load(s.Path, s.Options)
}

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr     string
	Timeline timeline.Config
	Title    string
	TargetID string
	Sanitize bool
	Now      func() time.Time // Clock for the today marker, time.Now when nil
}

// Server exposes the Fiber application.
type Server struct {
	app *fiber.App
	src Source
	cfg Config
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, src Source) *Server {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path}\n",
		Output: internal.Stderr,
	}))

	srv := &Server{app: app, src: src, cfg: cfg}
	srv.registerRoutes()
	return srv
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	internal.Success("timeline server listening on %s", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.app.Get("/", s.handlePage)
	s.app.Get("/timeline.svg", s.handleSVG)

	api := s.app.Group("/api")
	api.Get("/layout", s.handleLayout)
	api.Get("/events", s.handleListEvents)
}

func (s *Server) handlePage(c *fiber.Ctx) error {
	l, err := s.layout(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.WritePage(&buf, l, render.PageOptions{
		Title:    s.cfg.Title,
		TargetID: s.cfg.TargetID,
		Sanitize: s.cfg.Sanitize,
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) handleSVG(c *fiber.Ctx) error {
	l, err := s.layout(c)
	if err != nil {
		return err
	}
	c.Type("svg")
	return c.SendString(render.SVG(l, render.SVGOptions{Sanitize: s.cfg.Sanitize}))
}

func (s *Server) handleLayout(c *fiber.Ctx) error {
	l, err := s.layout(c)
	if err != nil {
		return err
	}
	return c.JSON(render.NewDocument(l))
}

func (s *Server) handleListEvents(c *fiber.Ctx) error {
	items, err := s.src.Events(c.UserContext())
	if err != nil {
		return loadError(err)
	}
	return c.JSON(fiber.Map{
		"data": items,
		"meta": fiber.Map{"count": len(items)},
	})
}

// layout computes a fresh layout for the request. The viewport query
// parameter overrides the configured width.
func (s *Server) layout(c *fiber.Ctx) (*timeline.Layout, error) {
	events, err := s.src.Events(c.UserContext())
	if err != nil {
		return nil, loadError(err)
	}

	cfg := s.cfg.Timeline
	if viewport := c.QueryFloat("viewport", 0); viewport != 0 {
		cfg.Width = timeline.WidthForViewport(viewport)
	}

	l, err := timeline.Compute(events, cfg, s.cfg.Now(), nil)
	if err != nil {
		if errors.Is(err, timeline.ErrInvalidConfig) {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil, loadError(err)
	}
	internal.Debugf("computed layout: %d events, width %.0f", len(events), cfg.Width)
	return l, nil
}

func loadError(err error) error {
	if errors.Is(err, timeline.ErrInvalidEventDate) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("load events: %v", err))
}
