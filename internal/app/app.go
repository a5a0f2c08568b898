package app

import (
	"fmt"
	"log"

	"snake/internal/domain"
)

// App drives a GameSession one frame at a time: input, then a tick while the
// snake is alive, then frame accounting. Pacing between frames is up to the
// caller.
type App struct {
	session *domain.GameSession
	running bool
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventGameStarted AppEventType = iota
	AppEventRestarted
	AppEventFoodEaten
	AppEventBarrierAdded
	AppEventGameOver
	AppEventSpeedUp
	AppEventQuit
)

type ScorePayload struct {
	Score  int
	Gained int
	Length int
}

type GameOverPayload struct {
	Score int
	Cause domain.DeathCause
}

type SpeedPayload struct {
	TicksPerSecond int
	Frames         int
}

func NewApp(config *domain.GameConfig, rng domain.Rand) (*App, error) {
	session, err := domain.NewGameSession(config, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("Session ready: field %dx%d, snake length %d, %d tps",
		config.Width, config.Height, config.StartLength, session.TicksPerSecond())

	return &App{
		session: session,
		running: true,
	}, nil
}

// Step runs one frame. After a quit event it does nothing and Running
// reports false.
func (a *App) Step(input []domain.InputEvent) ([]AppEvent, error) {
	if !a.running {
		return nil, nil
	}

	var events []AppEvent
	before := a.session.Phase()

	running, err := a.session.HandleInput(input)
	if err != nil {
		return events, fmt.Errorf("failed to handle input: %w", err)
	}
	if !running {
		a.running = false
		log.Println("Quit requested")
		return append(events, AppEvent{Type: AppEventQuit}), nil
	}

	switch after := a.session.Phase(); {
	case before == domain.PhaseWelcome && after == domain.PhasePlaying:
		log.Println("Game started")
		events = append(events, AppEvent{Type: AppEventGameStarted})
	case before == domain.PhaseGameOver && after == domain.PhasePlaying:
		log.Println("Game restarted")
		events = append(events, AppEvent{Type: AppEventRestarted})
	}

	if a.session.Phase() == domain.PhasePlaying && a.session.Alive() {
		result, err := a.session.Update()
		if err != nil {
			return events, fmt.Errorf("failed to update session: %w", err)
		}
		events = append(events, a.tickEvents(result)...)
	}

	if a.session.CompleteFrame() {
		payload := SpeedPayload{
			TicksPerSecond: a.session.TicksPerSecond(),
			Frames:         a.session.Frames(),
		}
		log.Printf("Speed up: %d tps after %d frames", payload.TicksPerSecond, payload.Frames)
		events = append(events, AppEvent{Type: AppEventSpeedUp, Payload: payload})
	}

	return events, nil
}

func (a *App) tickEvents(result *domain.TickResult) []AppEvent {
	var events []AppEvent

	if result.Ate {
		events = append(events, AppEvent{
			Type: AppEventFoodEaten,
			Payload: ScorePayload{
				Score:  a.session.Score(),
				Gained: result.ScoreGained,
				Length: a.session.Snake().Length(),
			},
		})
	}

	if result.BarrierAdded {
		log.Printf("Barrier added at score %d, %d barriers on field",
			a.session.Score(), len(a.session.Barriers()))
		events = append(events, AppEvent{Type: AppEventBarrierAdded})
	}

	if result.Died {
		log.Printf("Game over: %v, score %d", result.Cause, a.session.Score())
		events = append(events, AppEvent{
			Type: AppEventGameOver,
			Payload: GameOverPayload{
				Score: a.session.Score(),
				Cause: result.Cause,
			},
		})
	}

	return events
}

func (a *App) Running() bool {
	return a.running
}

func (a *App) GetState() *domain.GameState {
	return a.session.Snapshot()
}

func (a *App) TicksPerSecond() int {
	return a.session.TicksPerSecond()
}

func (a *App) Phase() domain.Phase {
	return a.session.Phase()
}
