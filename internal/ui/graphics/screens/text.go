package screens

import (
	"image/color"

	"snake/internal/ui/layout"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

func drawCentered(screen *ebiten.Image, msg string, screenWidth, y int, c color.Color) {
	fonts := types.GetFonts()
	bounds := text.BoundString(fonts.Normal, msg)
	text.Draw(screen, msg, fonts.Normal, layout.CenterX(screenWidth, bounds.Dx()), y, c)
}
