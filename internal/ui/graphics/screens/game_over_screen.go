package screens

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameOverScreen struct {
	ctx types.ScreenContext

	btnRestart *components.Button
}

func NewGameOverScreen(ctx types.ScreenContext) *GameOverScreen {
	return &GameOverScreen{
		ctx:        ctx,
		btnRestart: components.NewButton(250, 50, "New game"),
	}
}

func (s *GameOverScreen) Update() []domain.InputEvent {
	w, h := s.ctx.Size()
	s.btnRestart.SetPosition(w/2-125, h/2+20)

	if s.btnRestart.Update() {
		return []domain.InputEvent{domain.InputRestart}
	}
	return nil
}

func (s *GameOverScreen) Draw(screen *ebiten.Image, state *domain.GameState) {
	screen.Fill(types.ColorGameOverBg)

	w, h := s.ctx.Size()

	drawCentered(screen, "Game over! Press Space to start a new game", w, h/2-60, types.ColorText)
	if state != nil {
		drawCentered(screen, fmt.Sprintf("Your score is: %d", state.Score), w, h/2-30, types.ColorText)
	}

	s.btnRestart.Draw(screen)
}

func (s *GameOverScreen) OnEnter() {}

func (s *GameOverScreen) OnExit() {}
