package domain

// Snake is an ordered run of cells, head first. Movement never wraps; leaving
// the field is detected by the session.
type Snake struct {
	Points        []Coord
	HeadDirection Direction

	start       Coord
	startLength int32
}

func NewSnake(start Coord, startLength int32) *Snake {
	s := &Snake{
		start:       start,
		startLength: startLength,
	}
	s.Reset()
	return s
}

// Reset lays the snake out again below its start cell, heading up.
func (s *Snake) Reset() {
	s.Points = make([]Coord, 0, s.startLength)
	for n := int32(0); n < s.startLength; n++ {
		s.Points = append(s.Points, Coord{X: s.start.X, Y: s.start.Y + n})
	}
	s.HeadDirection = DirectionUp
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Tail() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[len(s.Points)-1]
}

func (s *Snake) Length() int {
	return len(s.Points)
}

func (s *Snake) Pieces() []Coord {
	result := make([]Coord, len(s.Points))
	copy(result, s.Points)
	return result
}

func (s *Snake) Contains(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.HeadDirection) {
		return false
	}
	s.HeadDirection = dir
	return true
}

// Advance moves the head one cell along HeadDirection and drops the tail.
func (s *Snake) Advance() {
	if len(s.Points) == 0 {
		return
	}

	newHead := s.Head().Add(s.HeadDirection.Delta())

	copy(s.Points[1:], s.Points[:len(s.Points)-1])
	s.Points[0] = newHead
}

// Grow appends a piece behind the tail, against the current heading.
func (s *Snake) Grow() {
	if len(s.Points) == 0 {
		return
	}
	s.Points = append(s.Points, s.Tail().Add(s.HeadDirection.Opposite().Delta()))
}

func (s *Snake) CollidesWithSelf() bool {
	head := s.Head()
	count := 0
	for _, p := range s.Points {
		if p.Equals(head) {
			count++
		}
	}
	return count > 1
}
