package panel

import "image/color"

// Palette is the fixed set of pen colors offered by the panel.
var Palette = []color.RGBA{
	{0, 0, 0, 255}, {255, 255, 255, 255}, {230, 41, 55, 255},
	{0, 228, 48, 255}, {0, 121, 241, 255}, {253, 249, 0, 255},
	{255, 161, 0, 255}, {200, 122, 255, 255}, {255, 109, 194, 255},
	{127, 106, 79, 255}, {130, 130, 130, 255}, {80, 80, 80, 255},
	{200, 200, 200, 255}, {102, 191, 255, 255}, {255, 0, 255, 255},
	{255, 0, 128, 255}, {128, 255, 0, 255}, {0, 128, 255, 255},
}
