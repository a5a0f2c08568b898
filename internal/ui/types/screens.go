package types

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
)

type ScreenType int

const (
	ScreenWelcome ScreenType = iota
	ScreenGame
	ScreenGameOver
)

// Screen draws one phase of the game. Update returns input produced by the
// screen itself, such as button clicks.
type Screen interface {
	Update() []domain.InputEvent
	Draw(screen *ebiten.Image, state *domain.GameState)
	OnEnter()
	OnExit()
}

type ScreenContext interface {
	Size() (int, int)
}

func ScreenForPhase(phase domain.Phase) ScreenType {
	switch phase {
	case domain.PhasePlaying:
		return ScreenGame
	case domain.PhaseGameOver:
		return ScreenGameOver
	}
	return ScreenWelcome
}
