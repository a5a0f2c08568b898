package domain

type DeathCause int

const (
	DeathCauseNone DeathCause = iota
	DeathCauseBarrier
	DeathCauseSelf
	DeathCauseWall
)

func (c DeathCause) String() string {
	switch c {
	case DeathCauseBarrier:
		return "barrier"
	case DeathCauseSelf:
		return "self-collision"
	case DeathCauseWall:
		return "wall"
	}
	return "none"
}

type TickResult struct {
	Ate          bool
	ScoreGained  int
	BarrierAdded bool
	Died         bool
	Cause        DeathCause
}

// Update advances the game by one tick. A dead session does not move. The
// error is only ever a placement failure; dying is reported in the result.
func (gs *GameSession) Update() (*TickResult, error) {
	result := &TickResult{}
	if !gs.alive {
		return result, nil
	}

	gs.snake.SetDirection(gs.nextDirection)
	gs.snake.Advance()

	head := gs.snake.Head()

	if gs.foods.Contains(head) {
		gs.foods.Remove(head)
		if err := gs.AddFood(); err != nil {
			return result, err
		}
		gs.snake.Grow()

		gained := gs.snake.Length() * gs.Config.FoodPoints
		gs.score += gained
		result.Ate = true
		result.ScoreGained = gained

		if gs.score%gs.Config.BarrierScoreStep == 0 {
			if err := gs.AddBarrier(); err != nil {
				return result, err
			}
			result.BarrierAdded = true
		}
	}

	switch {
	case gs.barriers.Contains(head):
		gs.kill(result, DeathCauseBarrier)
	case gs.snake.CollidesWithSelf():
		gs.kill(result, DeathCauseSelf)
	case !gs.Field.Contains(head):
		gs.kill(result, DeathCauseWall)
	}

	return result, nil
}

func (gs *GameSession) kill(result *TickResult, cause DeathCause) {
	gs.alive = false
	gs.phase = PhaseGameOver
	result.Died = true
	result.Cause = cause
}
