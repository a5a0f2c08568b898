// Package layout maps grid cells to screen rectangles.
package layout

import "snake/internal/domain"

type Rect struct {
	X, Y          int
	Width, Height int
}

// Grid splits a window of Width x Height pixels into equal cells, one per
// field cell. Cell sizes are truncated, so a strip on the right and bottom
// may stay empty.
type Grid struct {
	CellWidth  int
	CellHeight int
}

func NewGrid(pixelWidth, pixelHeight int, field *domain.Field) Grid {
	if field == nil || field.Width < 1 || field.Height < 1 {
		return Grid{}
	}
	return Grid{
		CellWidth:  pixelWidth / int(field.Width),
		CellHeight: pixelHeight / int(field.Height),
	}
}

func (g Grid) Cell(c domain.Coord) Rect {
	return Rect{
		X:      g.CellWidth * int(c.X-1),
		Y:      g.CellHeight * int(c.Y-1),
		Width:  g.CellWidth,
		Height: g.CellHeight,
	}
}

// CenterX is the left edge that centers something of width w on a screen of
// width screenWidth.
func CenterX(screenWidth, w int) int {
	return (screenWidth - w) / 2
}
