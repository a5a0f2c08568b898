package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(Coord{25, 25}, 4)

	assert.Equal(t, []Coord{{25, 25}, {25, 26}, {25, 27}, {25, 28}}, s.Points)
	assert.Equal(t, DirectionUp, s.HeadDirection)
	assert.Equal(t, Coord{25, 25}, s.Head())
	assert.Equal(t, Coord{25, 28}, s.Tail())
}

func TestSnake_SetDirection(t *testing.T) {
	all := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

	for _, current := range all {
		for _, requested := range all {
			s := NewSnake(Coord{10, 10}, 3)
			s.HeadDirection = current

			applied := s.SetDirection(requested)

			if requested == current.Opposite() {
				assert.False(t, applied, "%v -> %v", current, requested)
				assert.Equal(t, current, s.HeadDirection, "%v -> %v", current, requested)
			} else {
				assert.True(t, applied, "%v -> %v", current, requested)
				assert.Equal(t, requested, s.HeadDirection, "%v -> %v", current, requested)
			}
		}
	}
}

func TestSnake_SetDirectionRejectsUnknown(t *testing.T) {
	s := NewSnake(Coord{10, 10}, 3)

	assert.False(t, s.SetDirection(Direction(0)))
	assert.Equal(t, DirectionUp, s.HeadDirection)
}

func TestSnake_Advance(t *testing.T) {
	tests := []struct {
		dir  Direction
		head Coord
	}{
		{DirectionUp, Coord{10, 9}},
		{DirectionLeft, Coord{9, 10}},
		{DirectionRight, Coord{11, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := NewSnake(Coord{10, 10}, 4)
			require.True(t, s.SetDirection(tt.dir))
			before := s.Pieces()

			s.Advance()

			assert.Equal(t, len(before), s.Length())
			assert.Equal(t, tt.head, s.Head())
			assert.Equal(t, before[:len(before)-1], s.Points[1:])
		})
	}
}

func TestSnake_AdvanceDown(t *testing.T) {
	s := NewSnake(Coord{10, 10}, 2)
	s.HeadDirection = DirectionLeft
	s.Advance()
	require.True(t, s.SetDirection(DirectionDown))

	s.Advance()

	assert.Equal(t, []Coord{{9, 11}, {9, 10}}, s.Points)
}

func TestSnake_Grow(t *testing.T) {
	tests := []struct {
		dir     Direction
		newTail Coord
	}{
		{DirectionUp, Coord{10, 14}},
		{DirectionLeft, Coord{11, 13}},
		{DirectionRight, Coord{9, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := NewSnake(Coord{10, 10}, 4)
			s.HeadDirection = tt.dir
			head := s.Head()

			s.Grow()

			assert.Equal(t, 5, s.Length())
			assert.Equal(t, head, s.Head())
			assert.Equal(t, tt.newTail, s.Tail())
		})
	}
}

func TestSnake_CollidesWithSelf(t *testing.T) {
	t.Run("straight body", func(t *testing.T) {
		s := NewSnake(Coord{5, 5}, 5)
		assert.False(t, s.CollidesWithSelf())
	})

	t.Run("single piece", func(t *testing.T) {
		s := NewSnake(Coord{5, 5}, 1)
		assert.False(t, s.CollidesWithSelf())
	})

	t.Run("head on body", func(t *testing.T) {
		s := NewSnake(Coord{5, 5}, 1)
		s.Points = []Coord{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}
		assert.True(t, s.CollidesWithSelf())
	})

	t.Run("head on neck", func(t *testing.T) {
		s := NewSnake(Coord{5, 5}, 1)
		s.Points = []Coord{{5, 5}, {5, 5}}
		assert.True(t, s.CollidesWithSelf())
	})

	t.Run("turning back into the body", func(t *testing.T) {
		s := NewSnake(Coord{5, 5}, 1)
		s.Points = []Coord{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}
		s.HeadDirection = DirectionLeft
		require.True(t, s.SetDirection(DirectionDown))

		s.Advance()

		assert.True(t, s.CollidesWithSelf())
	})
}

func TestSnake_ResetRestoresLayout(t *testing.T) {
	s := NewSnake(Coord{25, 25}, 4)
	s.SetDirection(DirectionLeft)
	s.Advance()
	s.Grow()
	s.Grow()

	s.Reset()

	assert.Equal(t, []Coord{{25, 25}, {25, 26}, {25, 27}, {25, 28}}, s.Points)
	assert.Equal(t, DirectionUp, s.HeadDirection)
}

func TestSnake_PiecesIsACopy(t *testing.T) {
	s := NewSnake(Coord{3, 3}, 2)
	pieces := s.Pieces()
	pieces[0] = Coord{99, 99}

	assert.Equal(t, Coord{3, 3}, s.Head())
	assert.True(t, s.Contains(Coord{3, 4}))
	assert.False(t, s.Contains(Coord{99, 99}))
}
