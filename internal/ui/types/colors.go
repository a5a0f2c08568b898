package types

import (
	"image/color"

	"snake/internal/domain"
)

var (
	ColorBackground    = color.RGBA{150, 150, 150, 255}
	ColorWelcomeBg     = color.RGBA{0, 0, 0, 255}
	ColorGameOverBg    = color.RGBA{255, 0, 0, 255}
	ColorText          = color.RGBA{255, 255, 255, 255}
	ColorTextDim       = color.RGBA{200, 200, 200, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonBorder  = color.RGBA{100, 100, 110, 255}
	ColorHUDBg         = color.RGBA{40, 40, 45, 200}
)

// Palette holds the colors of everything drawn on the field. It is chosen
// once at startup and handed to the renderer.
type Palette struct {
	Snake      color.RGBA
	Food       color.RGBA
	Barrier    color.RGBA
	Background color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Snake:      color.RGBA{100, 200, 100, 255},
		Food:       color.RGBA{255, 80, 80, 255},
		Barrier:    color.RGBA{0, 0, 0, 255},
		Background: ColorBackground,
	}
}

// RandomPalette picks random snake and food colors. Barriers stay black.
func RandomPalette(rng domain.Rand) Palette {
	p := DefaultPalette()
	p.Snake = randomColor(rng)
	p.Food = randomColor(rng)
	return p
}

func randomColor(rng domain.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
