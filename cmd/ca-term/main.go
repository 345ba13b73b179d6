package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"ca-sheet/internal/app"
	"ca-sheet/internal/evolve"
	"ca-sheet/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 36, 64
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	seed := cfg.ResolveSeed()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := term.New(screen, evolve.New(cfg.Evolve()), term.Options{
		StepInterval: cfg.StepInterval(),
		Auto:         cfg.Auto,
	})
	if err := runner.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Printf("seed %d", seed)
}
