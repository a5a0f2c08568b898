package domain

import "fmt"

type Phase int

const (
	PhaseWelcome Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// GameSession is the single-player simulation. It is not safe for concurrent
// use; the driver calls it from one goroutine.
type GameSession struct {
	Field  *Field
	Config *GameConfig

	snake    *Snake
	foods    *CellSet
	barriers *CellSet

	score         int
	alive         bool
	phase         Phase
	nextDirection Direction

	pacer *Pacer
	rng   Rand
}

func NewGameSession(config *GameConfig, rng Rand) (*GameSession, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	field := NewField(config.Width, config.Height)
	gs := &GameSession{
		Field:         field,
		Config:        config.Copy(),
		snake:         NewSnake(field.Center(), config.StartLength),
		foods:         NewCellSet(),
		barriers:      NewCellSet(),
		alive:         true,
		phase:         PhaseWelcome,
		nextDirection: DirectionUp,
		pacer:         NewPacer(config.StartingTPS, config.TPSIncrementFrequency),
		rng:           rng,
	}

	for gs.foods.Len() < config.FoodCount {
		if err := gs.AddFood(); err != nil {
			return nil, err
		}
	}
	if err := gs.AddBarrier(); err != nil {
		return nil, err
	}

	return gs, nil
}

// AddFood places one food on a cell that holds no food yet. Snake and
// barriers are not consulted.
func (gs *GameSession) AddFood() error {
	pos, err := randomCell(gs.rng, gs.Field, gs.foods, gs.Config.PlacementAttempts)
	if err != nil {
		return fmt.Errorf("add food: %w", err)
	}
	gs.foods.Add(pos)
	return nil
}

// AddBarrier places one barrier on a cell that holds no barrier yet.
func (gs *GameSession) AddBarrier() error {
	pos, err := randomCell(gs.rng, gs.Field, gs.barriers, gs.Config.PlacementAttempts)
	if err != nil {
		return fmt.Errorf("add barrier: %w", err)
	}
	gs.barriers.Add(pos)
	return nil
}

// Reset starts a new game on the same session. Food stays where it is.
func (gs *GameSession) Reset() error {
	gs.alive = true
	gs.phase = PhasePlaying
	gs.nextDirection = DirectionUp
	gs.pacer.Reset()
	gs.score = 0
	gs.snake.Reset()

	gs.barriers.Clear()
	return gs.AddBarrier()
}

// Start leaves the welcome screen.
func (gs *GameSession) Start() {
	if gs.phase == PhaseWelcome {
		gs.phase = PhasePlaying
	}
}

func (gs *GameSession) SetNextDirection(dir Direction) {
	if dir.Valid() {
		gs.nextDirection = dir
	}
}

// HandleInput applies one frame of input. It returns false once the player
// asked to quit; the remaining events are dropped.
func (gs *GameSession) HandleInput(events []InputEvent) (bool, error) {
	for _, e := range events {
		switch e {
		case InputQuit, InputEscape:
			return false, nil

		case InputRestart:
			switch gs.phase {
			case PhaseWelcome:
				gs.Start()
			case PhaseGameOver:
				if err := gs.Reset(); err != nil {
					return true, err
				}
			}

		default:
			if dir, ok := e.Direction(); ok {
				gs.SetNextDirection(dir)
			}
		}
	}
	return true, nil
}

// CompleteFrame counts a finished frame, alive or not. It reports whether the
// rate was raised.
func (gs *GameSession) CompleteFrame() bool {
	return gs.pacer.CompleteFrame()
}

func (gs *GameSession) Alive() bool {
	return gs.alive
}

func (gs *GameSession) Phase() Phase {
	return gs.phase
}

func (gs *GameSession) Score() int {
	return gs.score
}

func (gs *GameSession) TicksPerSecond() int {
	return gs.pacer.TicksPerSecond()
}

func (gs *GameSession) Frames() int {
	return gs.pacer.Frames()
}

func (gs *GameSession) Snake() *Snake {
	return gs.snake
}

func (gs *GameSession) Foods() []Coord {
	return gs.foods.Cells()
}

func (gs *GameSession) Barriers() []Coord {
	return gs.barriers.Cells()
}

func (gs *GameSession) Snapshot() *GameState {
	return &GameState{
		Field:          NewField(gs.Field.Width, gs.Field.Height),
		Snake:          gs.snake.Pieces(),
		Foods:          gs.foods.Cells(),
		Barriers:       gs.barriers.Cells(),
		Direction:      gs.snake.HeadDirection,
		Score:          gs.score,
		Alive:          gs.alive,
		Phase:          gs.phase,
		TicksPerSecond: gs.pacer.TicksPerSecond(),
		Frames:         gs.pacer.Frames(),
	}
}
