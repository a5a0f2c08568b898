package domain

// CellSet is an insertion-ordered set of cells.
type CellSet struct {
	cells []Coord
	index map[Coord]struct{}
}

func NewCellSet(cells ...Coord) *CellSet {
	cs := &CellSet{index: make(map[Coord]struct{})}
	for _, c := range cells {
		cs.Add(c)
	}
	return cs
}

func (cs *CellSet) Add(c Coord) bool {
	if cs.Contains(c) {
		return false
	}
	cs.cells = append(cs.cells, c)
	cs.index[c] = struct{}{}
	return true
}

func (cs *CellSet) Remove(c Coord) bool {
	if !cs.Contains(c) {
		return false
	}
	delete(cs.index, c)
	for i, cell := range cs.cells {
		if cell.Equals(c) {
			cs.cells = append(cs.cells[:i], cs.cells[i+1:]...)
			break
		}
	}
	return true
}

func (cs *CellSet) Contains(c Coord) bool {
	_, ok := cs.index[c]
	return ok
}

func (cs *CellSet) Len() int {
	return len(cs.cells)
}

func (cs *CellSet) Clear() {
	cs.cells = nil
	cs.index = make(map[Coord]struct{})
}

// Cells returns a copy in insertion order.
func (cs *CellSet) Cells() []Coord {
	result := make([]Coord, len(cs.cells))
	copy(result, cs.cells)
	return result
}
