// Package panel holds the tool panel state of the drawing tab and the
// commands it raises.
package panel

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/ha1tch/artstudio/internal/event"
	"github.com/ha1tch/artstudio/internal/raster"
)

var (
	// ErrIncompletePublish is returned when the artwork name or the artist
	// nickname is blank. Nothing is emitted in that case.
	ErrIncompletePublish = errors.New("artwork name and nickname are required")
	ErrNoSavePath        = errors.New("save path is empty")
)

// PublishRequest carries the publish form fields, trimmed.
type PublishRequest struct {
	Title  string
	Artist string
}

// Panel is the tool panel. The slider and the numeric entry both edit the
// stroke width and always show the same value.
type Panel struct {
	tool   raster.Tool
	color  color.RGBA
	slider int
	entry  int

	// Form fields, edited directly by the UI.
	Title    string
	Artist   string
	SavePath string

	ToolChanged      event.Signal[raster.Tool]
	ColorChanged     event.Signal[color.RGBA]
	WidthChanged     event.Signal[int]
	ClearRequested   event.Trigger
	SaveRequested    event.Signal[string]
	PublishRequested event.Signal[PublishRequest]
}

func New(savePath string) *Panel {
	return &Panel{
		tool:     raster.ToolPen,
		color:    raster.DefaultColor,
		slider:   raster.DefaultWidth,
		entry:    raster.DefaultWidth,
		SavePath: savePath,
	}
}

func (p *Panel) Tool() raster.Tool { return p.tool }
func (p *Panel) Color() color.RGBA { return p.color }
func (p *Panel) SliderValue() int  { return p.slider }
func (p *Panel) EntryValue() int   { return p.entry }

// SelectTool makes t the only active tool.
func (p *Panel) SelectTool(t raster.Tool) {
	if !t.Valid() || t == p.tool {
		return
	}
	p.tool = t
	p.ToolChanged.Emit(t)
}

func (p *Panel) SelectColor(c color.RGBA) {
	if c == p.color {
		return
	}
	p.color = c
	p.ColorChanged.Emit(c)
}

// Channel names one component of the pen color.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists the editable color components in slider order.
func Channels() []Channel {
	return []Channel{Red, Green, Blue}
}

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	}
	return "?"
}

// Value returns the channel's component of the current color.
func (p *Panel) Value(ch Channel) int {
	switch ch {
	case Red:
		return int(p.color.R)
	case Green:
		return int(p.color.G)
	case Blue:
		return int(p.color.B)
	}
	return 0
}

// SetChannel changes one component of the pen color, clamped to 0..255.
// The color stays opaque.
func (p *Panel) SetChannel(ch Channel, v int) {
	v = min(max(v, 0), 255)
	c := p.color
	switch ch {
	case Red:
		c.R = uint8(v)
	case Green:
		c.G = uint8(v)
	case Blue:
		c.B = uint8(v)
	default:
		return
	}
	c.A = 255
	p.SelectColor(c)
}

// SetWidthFromSlider is called when the slider moves.
func (p *Panel) SetWidthFromSlider(v int) {
	p.setWidth(v)
}

// SetWidthFromEntry is called when the numeric entry changes.
func (p *Panel) SetWidthFromEntry(v int) {
	p.setWidth(v)
}

// SetWidthText parses the numeric entry's text.
func (p *Panel) SetWidthText(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid width %q", s)
	}
	p.SetWidthFromEntry(v)
	return nil
}

// setWidth updates both controls and emits once per actual change, so
// syncing one control from the other never echoes.
func (p *Panel) setWidth(v int) {
	v = raster.ClampWidth(v)
	if v == p.slider && v == p.entry {
		return
	}
	p.slider, p.entry = v, v
	p.WidthChanged.Emit(v)
}

func (p *Panel) Clear() {
	p.ClearRequested.Emit()
}

// Save asks for the drawing to be written to SavePath.
func (p *Panel) Save() error {
	path := strings.TrimSpace(p.SavePath)
	if path == "" {
		return ErrNoSavePath
	}
	p.SaveRequested.Emit(path)
	return nil
}

// Publish emits a PublishRequest when both form fields are filled in.
func (p *Panel) Publish() error {
	req := PublishRequest{
		Title:  strings.TrimSpace(p.Title),
		Artist: strings.TrimSpace(p.Artist),
	}
	if req.Title == "" || req.Artist == "" {
		return ErrIncompletePublish
	}
	p.PublishRequested.Emit(req)
	return nil
}
