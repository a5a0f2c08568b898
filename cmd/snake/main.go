package main

import (
	"context"
	"log"
	"os"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/types"

	"github.com/urfave/cli/v3"
	"golang.org/x/exp/rand"
)

const version = "1.0.0"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cmd := &cli.Command{
		Name:    "snake",
		Usage:   "eat the food, avoid the walls, yourself and the black barriers",
		Version: version,
		Action:  run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("Snake failed: %v", err)
	}
}

func run(_ context.Context, _ *cli.Command) error {
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	application, err := app.NewApp(domain.DefaultGameConfig(), rng)
	if err != nil {
		return err
	}

	engine := graphics.NewEngine(application)
	engine.RegisterScreens(
		screens.NewWelcomeScreen(engine),
		screens.NewGameScreen(engine, types.RandomPalette(rng)),
		screens.NewGameOverScreen(engine),
	)

	if err := engine.Run(); err != nil {
		return err
	}

	log.Println("Bye")
	return nil
}
