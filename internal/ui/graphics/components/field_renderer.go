package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/layout"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	palette types.Palette
	grid    layout.Grid
}

func NewFieldRenderer(palette types.Palette) *FieldRenderer {
	return &FieldRenderer{palette: palette}
}

func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int, field *domain.Field) {
	fr.grid = layout.NewGrid(screenWidth, screenHeight, field)
}

// DrawState paints the background, then snake, food and barriers in that
// order, so a barrier on top of food stays visible.
func (fr *FieldRenderer) DrawState(screen *ebiten.Image, state *domain.GameState) {
	screen.Fill(fr.palette.Background)

	if state == nil {
		return
	}

	for i, cell := range state.Snake {
		c := fr.palette.Snake
		if i == 0 {
			c = types.Darken(c, 0.7)
		}
		fr.drawCell(screen, cell, c)
	}
	fr.drawCells(screen, state.Foods, fr.palette.Food)
	fr.drawCells(screen, state.Barriers, fr.palette.Barrier)
}

func (fr *FieldRenderer) drawCells(screen *ebiten.Image, cells []domain.Coord, c color.RGBA) {
	for _, cell := range cells {
		fr.drawCell(screen, cell, c)
	}
}

func (fr *FieldRenderer) drawCell(screen *ebiten.Image, cell domain.Coord, c color.RGBA) {
	r := fr.grid.Cell(cell)
	vector.DrawFilledRect(screen,
		float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height),
		c, false)
}
