//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ca-sheet/internal/app"
	"ca-sheet/internal/evolve"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	log.Printf("seed %d", cfg.ResolveSeed())

	ctl := evolve.New(cfg.Evolve())
	game := app.New(ctl, cfg)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
