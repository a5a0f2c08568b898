package screens

import (
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
}

func NewGameScreen(ctx types.ScreenContext, palette types.Palette) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(palette),
		scoreboard:    components.NewScoreboard(8, 8, 120, 56),
	}
}

// Update returns nothing; the keyboard is polled by the engine.
func (s *GameScreen) Update() []domain.InputEvent {
	return nil
}

func (s *GameScreen) Draw(screen *ebiten.Image, state *domain.GameState) {
	w, h := s.ctx.Size()

	if state != nil {
		s.fieldRenderer.CalculateLayout(w, h, state.Field)
	}
	s.fieldRenderer.DrawState(screen, state)
	s.scoreboard.Draw(screen, state)
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}
