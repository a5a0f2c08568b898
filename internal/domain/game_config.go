package domain

import "fmt"

type GameConfig struct {
	Width  int32
	Height int32

	StartLength int32

	// StartingTPS is the simulation rate at the start of a game. It grows by
	// one every TPSIncrementFrequency frames.
	StartingTPS           int
	TPSIncrementFrequency int

	// FoodPoints is multiplied by the snake length after eating.
	FoodPoints int
	// A barrier is added whenever the score lands on a multiple of BarrierScoreStep.
	BarrierScoreStep int
	FoodCount        int

	PlacementAttempts int
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:                 50,
		Height:                50,
		StartLength:           4,
		StartingTPS:           10,
		TPSIncrementFrequency: 180,
		FoodPoints:            50,
		BarrierScoreStep:      100,
		FoodCount:             1,
		PlacementAttempts:     100,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: field %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("%w: start length %d must be positive", ErrInvalidConfig, c.StartLength)
	}

	start := NewField(c.Width, c.Height).Center()
	if tail := start.Y + c.StartLength - 1; tail > c.Height {
		return fmt.Errorf("%w: snake of length %d starting at %v does not fit field height %d",
			ErrInvalidConfig, c.StartLength, start, c.Height)
	}

	if c.StartingTPS < 1 {
		return fmt.Errorf("%w: starting tps %d must be positive", ErrInvalidConfig, c.StartingTPS)
	}
	if c.TPSIncrementFrequency < 1 {
		return fmt.Errorf("%w: tps increment frequency %d must be positive", ErrInvalidConfig, c.TPSIncrementFrequency)
	}
	if c.FoodPoints < 1 {
		return fmt.Errorf("%w: food points %d must be positive", ErrInvalidConfig, c.FoodPoints)
	}
	if c.BarrierScoreStep < 1 {
		return fmt.Errorf("%w: barrier score step %d must be positive", ErrInvalidConfig, c.BarrierScoreStep)
	}
	if c.FoodCount < 1 || c.FoodCount > int(c.Width)*int(c.Height) {
		return fmt.Errorf("%w: food count %d must be within [1, %d]",
			ErrInvalidConfig, c.FoodCount, int(c.Width)*int(c.Height))
	}
	if c.PlacementAttempts < 1 {
		return fmt.Errorf("%w: placement attempts %d must be positive", ErrInvalidConfig, c.PlacementAttempts)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}
