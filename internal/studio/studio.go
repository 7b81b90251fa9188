// Package studio composes the drawing tab and the gallery tab and wires the
// commands that cross between them.
package studio

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ha1tch/artstudio/internal/galleryview"
	"github.com/ha1tch/artstudio/internal/panel"
	"github.com/ha1tch/artstudio/internal/raster"
)

// Service is what the studio needs from the gallery service.
type Service interface {
	galleryview.Service
	Publish(ctx context.Context, title, artistName string, image []byte) (int64, error)
}

// Options sizes the canvas and seeds the save path.
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	SavePath     string
}

// Status is the one-line outcome of the last command.
type Status struct {
	Text string
	Err  bool
}

// Studio owns both tabs.
type Studio struct {
	Canvas  *raster.Canvas
	Panel   *panel.Panel
	Gallery *galleryview.View

	svc    Service
	log    zerolog.Logger
	status Status
}

func New(opts Options, svc Service, log zerolog.Logger) (*Studio, error) {
	canvas, err := raster.NewCanvas(opts.CanvasWidth, opts.CanvasHeight)
	if err != nil {
		return nil, err
	}

	s := &Studio{
		Canvas:  canvas,
		Panel:   panel.New(opts.SavePath),
		Gallery: galleryview.New(svc, log),
		svc:     svc,
		log:     log.With().Str("component", "studio").Logger(),
	}
	s.connect()
	return s, nil
}

func (s *Studio) connect() {
	s.Panel.ToolChanged.Connect(s.Canvas.SetTool)
	s.Panel.ColorChanged.Connect(s.Canvas.SetColor)
	s.Panel.WidthChanged.Connect(s.Canvas.SetWidth)
	s.Panel.ClearRequested.Connect(s.Canvas.Clear)
	s.Panel.SaveRequested.Connect(func(path string) {
		s.save(path)
	})
	s.Panel.PublishRequested.Connect(func(req panel.PublishRequest) {
		s.publish(context.Background(), req)
	})

	s.Canvas.SetTool(s.Panel.Tool())
	s.Canvas.SetColor(s.Panel.Color())
	s.Canvas.SetWidth(s.Panel.SliderValue())
}

// Load runs the gallery's first query.
func (s *Studio) Load(ctx context.Context) error {
	return s.Gallery.Load(ctx)
}

func (s *Studio) Status() Status {
	return s.status
}

// RequestPublish is the panel's Publish button.
func (s *Studio) RequestPublish() {
	if err := s.Panel.Publish(); err != nil {
		s.fail("Publish", err)
	}
}

// RequestSave is the panel's Save button.
func (s *Studio) RequestSave() {
	if err := s.Panel.Save(); err != nil {
		s.fail("Save", err)
	}
}

func (s *Studio) publish(ctx context.Context, req panel.PublishRequest) {
	data, err := s.Canvas.Encode(raster.DefaultFormat)
	if err != nil {
		s.fail("Publish", err)
		return
	}

	id, err := s.svc.Publish(ctx, req.Title, req.Artist, data)
	if err != nil {
		s.fail("Publish", err)
		return
	}

	s.Gallery.ShowPublished(ctx, id)
	s.ok(fmt.Sprintf("Published %q by %s", req.Title, req.Artist))
}

func (s *Studio) save(path string) {
	format, err := raster.FormatFromPath(path)
	if err != nil {
		s.fail("Save", err)
		return
	}
	data, err := s.Canvas.Encode(format)
	if err != nil {
		s.fail("Save", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.fail("Save", err)
		return
	}

	s.log.Info().Str("path", path).Str("format", string(format)).Int("bytes", len(data)).Msg("saved drawing")
	s.ok("Saved to " + path)
}

func (s *Studio) ok(text string) {
	s.status = Status{Text: text}
}

func (s *Studio) fail(op string, err error) {
	s.log.Error().Err(err).Str("op", op).Msg("command failed")
	s.status = Status{Text: fmt.Sprintf("%s failed: %v", op, err), Err: true}
}
