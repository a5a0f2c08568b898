package domain

// GameState is a snapshot of a session for presentation. It shares no memory
// with the session it came from.
type GameState struct {
	Field    *Field
	Snake    []Coord
	Foods    []Coord
	Barriers []Coord

	Direction Direction
	Score     int
	Alive     bool
	Phase     Phase

	TicksPerSecond int
	Frames         int
}

func (gs *GameState) Head() Coord {
	if len(gs.Snake) == 0 {
		return Coord{}
	}
	return gs.Snake[0]
}

func (gs *GameState) SnakeLength() int {
	return len(gs.Snake)
}

func (gs *GameState) Copy() *GameState {
	newState := *gs
	newState.Field = NewField(gs.Field.Width, gs.Field.Height)
	newState.Snake = append([]Coord(nil), gs.Snake...)
	newState.Foods = append([]Coord(nil), gs.Foods...)
	newState.Barriers = append([]Coord(nil), gs.Barriers...)
	return &newState
}
