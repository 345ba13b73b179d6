package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"ca-sheet/internal/app"
	"ca-sheet/internal/evolve"
	"ca-sheet/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 24, 48
	cfg.Seed = 42
	cfg.Bind(flag.CommandLine)
	script := flag.String("script", "step*10", "commands to run: rule110|q rule30|w step|g reset|r clear toggle=R,C quit, each with an optional *N")
	frames := flag.Bool("frames", false, "print the grid after every command")
	on := flag.String("on", "#", "glyph for live cells")
	off := flag.String("off", ".", "glyph for dead cells")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	if len(*on) != 1 || len(*off) != 1 {
		log.Fatal("-on and -off must be single bytes")
	}
	cmds, err := evolve.ParseScript(*script)
	if err != nil {
		log.Fatalf("invalid script: %v", err)
	}

	ctl := evolve.New(cfg.Evolve())
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	emit := func(label string) {
		fmt.Fprintf(out, "%s rule=%s frontier=%d gen=%d pop=%d\n",
			label, ctl.Active(), ctl.Frontier(), ctl.Generation(), ctl.Population())
		if err := render.WriteText(out, ctl, (*on)[0], (*off)[0]); err != nil {
			log.Fatal(err)
		}
	}

	if *frames {
		emit("initial")
	}
	for i, cmd := range cmds {
		if ctl.Dispatch(cmd) {
			break
		}
		if *frames {
			emit(fmt.Sprintf("after %d", i+1))
		}
	}
	if !*frames {
		emit("final")
	}
}
