package graphics

import (
	"fmt"
	"log"

	"snake/internal/app"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// Engine is the ebiten game. Each Update is one frame of the app; ebiten's
// TPS is kept equal to the session's rate, which paces the frames.
type Engine struct {
	width  int
	height int

	app      *app.App
	keyboard *input.KeyboardHandler

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen
}

func NewEngine(application *app.App) *Engine {
	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		app:           application,
		keyboard:      input.NewKeyboardHandler(),
		currentScreen: types.ScreenForPhase(application.Phase()),
		screenMap:     make(map[types.ScreenType]types.Screen),
	}
}

func (e *Engine) RegisterScreens(
	welcome types.Screen,
	game types.Screen,
	gameOver types.Screen,
) {
	e.screenMap[types.ScreenWelcome] = welcome
	e.screenMap[types.ScreenGame] = game
	e.screenMap[types.ScreenGameOver] = gameOver
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(e.app.TicksPerSecond())

	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnEnter()
	}

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	events := e.keyboard.Poll()
	if screen := e.screenMap[e.currentScreen]; screen != nil {
		events = append(events, screen.Update()...)
	}

	appEvents, err := e.app.Step(events)
	if err != nil {
		return fmt.Errorf("frame failed: %w", err)
	}

	for _, event := range appEvents {
		if event.Type == app.AppEventQuit {
			return ebiten.Termination
		}
		e.handleEvent(event)
	}

	ebiten.SetTPS(e.app.TicksPerSecond())

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}
	currentScreen.Draw(screen, e.app.GetState())
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

func (e *Engine) GetCurrentScreen() types.ScreenType {
	return e.currentScreen
}

func (e *Engine) handleEvent(event app.AppEvent) {
	switch event.Type {
	case app.AppEventGameStarted, app.AppEventRestarted:
		e.SetScreen(types.ScreenGame)

	case app.AppEventGameOver:
		if payload, ok := event.Payload.(app.GameOverPayload); ok {
			log.Printf("Showing game over screen, score %d", payload.Score)
		}
		e.SetScreen(types.ScreenGameOver)
	}
}
