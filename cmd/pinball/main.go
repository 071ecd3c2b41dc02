package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jacob-juung/pinball/audio"
	"github.com/jacob-juung/pinball/difficulty"
	"github.com/jacob-juung/pinball/event"
	"github.com/jacob-juung/pinball/game"
	"github.com/jacob-juung/pinball/highscore"
	"github.com/jacob-juung/pinball/input"
	"github.com/jacob-juung/pinball/physics"
	"github.com/jacob-juung/pinball/render"
	"github.com/jacob-juung/pinball/table"
)

const frameRate = 60

var (
	configFlag = flag.String("config", "pinball.yaml", "Preset overrides file")
	scoresFlag = flag.String("scores", "highscores.json", "High score file")
)

func main() {
	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\npinball crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	presets, err := difficulty.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring preset overrides: %v\n", err)
	}
	manager := difficulty.NewManagerWith(presets)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	sounds := audio.NewManager()
	if err := sounds.Initialize(); err == nil {
		defer sounds.Cleanup()
	}
	// Audio failure is fine; the game runs silent.

	scores := highscore.Open(*scoresFlag)

	events := event.NewQueue()
	sess := game.NewSession(manager, scores, func(world *physics.World, state *game.State, preset *difficulty.Preset) game.Playfield {
		return table.New(world, state, preset, events)
	})

	machine := input.NewMachine(sess)
	renderer := render.New(screen)

	// Key events arrive on their own goroutine and are drained at the
	// top of each frame, before any stepping.
	keys := make(chan *tcell.EventKey, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys <- ev
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				close(keys)
				return
			}
		}
	}()

	const dt = 1.0 / frameRate
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for range ticker.C {
		// Input first: actuator commands land before the world step.
		for drained := false; !drained; {
			select {
			case ev, ok := <-keys:
				if !ok || machine.HandleKey(ev) {
					return
				}
			default:
				drained = true
			}
		}

		sess.Update(dt)

		for _, ev := range events.Consume() {
			sounds.Handle(ev)
			renderer.HandleEvent(ev)
		}

		renderer.Draw(sess.Snapshot(), sess.State(), scores.Top(highscore.MaxEntries))
	}
}
