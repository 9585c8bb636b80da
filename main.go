package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/harrysaysyes/radio-player/internal/energy"
	"github.com/harrysaysyes/radio-player/internal/render"
	"github.com/harrysaysyes/radio-player/internal/waves"
)

func main() {
	flag.Parse()

	if *listThemesFlag {
		for _, name := range render.ThemeNames() {
			fmt.Println(name)
		}
		return
	}
	if *listPresetsFlag {
		for _, name := range waves.PresetNames() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := resolveConfig()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	if *settlePlotFlag {
		if err := runSettlePlot(cfg); err != nil {
			log.Fatalf("Settle plot: %v", err)
		}
		return
	}

	th := render.GetTheme(*themeFlag)

	if *snapshotFlag != "" {
		if err := writeSnapshot(cfg, th, *snapshotFlag); err != nil {
			log.Fatalf("Snapshot: %v", err)
		}
		return
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile: %v", err)
		}
		defer stop()
	}

	var pulse *energy.Pulse
	if !*silentFlag {
		pulse = energy.NewPulse(*bpmFlag, time.Now().UnixNano())
	}

	app, err := newApp(cfg, th, pulse)
	if err != nil {
		log.Fatalf("Engine: %v", err)
	}

	ebiten.SetWindowSize(defaultWindowW, defaultWindowH)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Run: %v", err)
	}
	app.shutdown()
}

// resolveConfig assembles the engine tuning: defaults, then a preset,
// then a YAML file, then the seed flag on top of whichever won.
func resolveConfig() (waves.Config, error) {
	cfg := waves.DefaultConfig()
	if *presetFlag != "" {
		preset, ok := waves.Preset(*presetFlag)
		if !ok {
			return cfg, fmt.Errorf("unknown preset %q (have %v)", *presetFlag, waves.PresetNames())
		}
		cfg = preset
	}
	if *configFlag != "" {
		loaded, err := waves.LoadConfig(*configFlag)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// writeSnapshot advances a headless engine past the warmup window and
// rasterizes a single frame to path.
func writeSnapshot(cfg waves.Config, th render.Theme, path string) error {
	eng, err := waves.NewEngine(cfg, nil)
	if err != nil {
		return err
	}
	eng.SetViewport(waves.Viewport{Width: defaultWindowW, Height: defaultWindowH, Scale: 1})
	for t := 0.0; t < snapshotWarmup; t += snapshotFrameStep {
		eng.Step(snapshotFrameStep)
	}
	if err := render.WritePNG(path, eng.Grid(), th, cfg.Curved, 1); err != nil {
		return err
	}
	log.Printf("Wrote %s (%dx%d)", path, defaultWindowW, defaultWindowH)
	return nil
}
