package screens

import (
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type WelcomeScreen struct {
	ctx types.ScreenContext

	btnPlay *components.Button
	btnQuit *components.Button
}

func NewWelcomeScreen(ctx types.ScreenContext) *WelcomeScreen {
	return &WelcomeScreen{
		ctx:     ctx,
		btnPlay: components.NewButton(250, 50, "Play"),
		btnQuit: components.NewButton(250, 50, "Quit"),
	}
}

func (s *WelcomeScreen) Update() []domain.InputEvent {
	w, h := s.ctx.Size()
	s.btnPlay.SetPosition(w/2-125, h/2)
	s.btnQuit.SetPosition(w/2-125, h/2+60)

	if s.btnPlay.Update() {
		return []domain.InputEvent{domain.InputRestart}
	}
	if s.btnQuit.Update() {
		return []domain.InputEvent{domain.InputQuit}
	}
	return nil
}

func (s *WelcomeScreen) Draw(screen *ebiten.Image, _ *domain.GameState) {
	screen.Fill(types.ColorWelcomeBg)

	w, h := s.ctx.Size()

	drawCentered(screen, "Welcome to snake, collect the food and avoid", w, h/2-90, types.ColorText)
	drawCentered(screen, "the black barriers!", w, h/2-60, types.ColorText)

	s.btnPlay.Draw(screen)
	s.btnQuit.Draw(screen)

	drawCentered(screen, "Space to start  |  Arrows or W/A/S/D to move  |  ESC to quit", w, h-30, types.ColorTextDim)
}

func (s *WelcomeScreen) OnEnter() {}

func (s *WelcomeScreen) OnExit() {}
