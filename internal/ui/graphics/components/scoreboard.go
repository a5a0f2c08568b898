package components

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scoreboard is the small overlay in the top left corner of the game screen.
type Scoreboard struct {
	X, Y          int
	Width, Height int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, state *domain.GameState) {
	if state == nil {
		return
	}

	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.ColorHUDBg, false)

	fonts := types.GetFonts()

	lines := []string{
		fmt.Sprintf("Score: %d", state.Score),
		fmt.Sprintf("Length: %d", state.SnakeLength()),
		fmt.Sprintf("Speed: %d", state.TicksPerSecond),
	}

	y := sb.Y + 16
	for i, line := range lines {
		c := types.ColorText
		if i == 0 {
			c = types.ColorTextHighlight
		}
		text.Draw(screen, line, fonts.Small, sb.X+8, y, c)
		y += 16
	}
}
