package raster

// Tool types
type Tool int

const (
	ToolPen Tool = iota
	ToolLine
	ToolRect
	ToolEllipse
	ToolEraser
)

var toolNames = []string{"PEN", "LINE", "RECTANGLE", "ELLIPSE", "ERASER"}

// Tools lists every tool in panel order.
func Tools() []Tool {
	return []Tool{ToolPen, ToolLine, ToolRect, ToolEllipse, ToolEraser}
}

// Valid reports whether t is one of the known tools.
func (t Tool) Valid() bool {
	return t >= 0 && int(t) < len(toolNames)
}

func (t Tool) String() string {
	if t.Valid() {
		return toolNames[t]
	}
	return "UNKNOWN"
}

// IsShape reports whether the tool previews while dragging and commits on
// release.
func (t Tool) IsShape() bool {
	return t == ToolLine || t == ToolRect || t == ToolEllipse
}

// Stroke width limits.
const (
	MinWidth     = 1
	MaxWidth     = 20
	DefaultWidth = 3
)

// ClampWidth limits w to [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}
