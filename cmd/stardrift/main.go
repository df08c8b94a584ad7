package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/audio"
	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/scene"
)

func main() {
	defer func() {
		core.HandleCrash(recover())
	}()

	configPath := flag.String("config", "", "path to settings YAML (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}

	// Audio before the screen so init failure can log without corrupting
	// the alternate screen; the scene runs silent on failure
	sound := audio.NewManager()
	if cfg.Audio {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else {
			sound.StartAmbient()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	width, height := screen.Size()
	ctx := scene.New(width, height, screen, cfg)

	sched := engine.New(engine.Config{
		FPS:    cfg.TargetFPS,
		Step:   ctx.Step,
		Events: engine.StartInputReader(screen),
		OnEvent: func(ev tcell.Event) bool {
			return handleEvent(ev, ctx, screen, sound)
		},
	})
	sched.Run()

	screen.Fini()
	sound.Cleanup()

	if n, last := sched.FramePanics(); n > 0 {
		log.Printf("%d frame(s) failed mid-step, last: %v", n, last)
	}
}

// handleEvent dispatches one input event on the scheduler goroutine
// Returning false ends the loop
func handleEvent(ev tcell.Event, ctx *scene.Context, screen tcell.Screen, sound *audio.Manager) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'm':
			sound.ToggleAmbient()
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelDown != 0:
			ctx.Wheel(true)
			sound.ScrollTick()
		case buttons&tcell.WheelUp != 0:
			ctx.Wheel(false)
			sound.ScrollTick()
		default:
			x, y := ev.Position()
			ctx.Orbit.HandleMouse(x, y, buttons)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		ctx.Resize(w, h)
		screen.Sync()
	}

	return true
}
