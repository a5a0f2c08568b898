package domain

// Field is the board. Cells are 1-indexed: [1, Width] x [1, Height].
type Field struct {
	Width  int32
	Height int32
}

func NewField(width, height int32) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 1 && c.Y >= 1 && c.X <= f.Width && c.Y <= f.Height
}

func (f *Field) CellCount() int {
	return int(f.Width) * int(f.Height)
}

// Center is the cell the snake starts on.
func (f *Field) Center() Coord {
	return Coord{X: max(f.Width/2, 1), Y: max(f.Height/2, 1)}
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}
