package domain

import "fmt"

// Rand is the randomness the session needs. *rand.Rand from golang.org/x/exp/rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// randomCell draws a uniformly random cell of the field that is not in taken.
// After attempts failed draws it falls back to a random pick among the free
// cells, so it only fails when taken covers the whole field.
func randomCell(rng Rand, field *Field, taken *CellSet, attempts int) (Coord, error) {
	if taken.Len() >= field.CellCount() {
		return Coord{}, fmt.Errorf("%w: %d of %d cells taken", ErrFieldExhausted, taken.Len(), field.CellCount())
	}

	for i := 0; i < attempts; i++ {
		pos := Coord{
			X: int32(rng.Intn(int(field.Width))) + 1,
			Y: int32(rng.Intn(int(field.Height))) + 1,
		}
		if !taken.Contains(pos) {
			return pos, nil
		}
	}

	free := make([]Coord, 0, field.CellCount()-taken.Len())
	for y := int32(1); y <= field.Height; y++ {
		for x := int32(1); x <= field.Width; x++ {
			if c := (Coord{X: x, Y: y}); !taken.Contains(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Coord{}, fmt.Errorf("%w: %d of %d cells taken", ErrFieldExhausted, taken.Len(), field.CellCount())
	}
	return free[rng.Intn(len(free))], nil
}
