package main

import "flag"

// Command-line flags controlling the player shell. Engine tuning comes
// from presets or a YAML config; flags pick which one and wire the
// diagnostics.
var (
	themeFlag      = flag.String("theme", "midnight", "color theme (see -list-themes)")
	listThemesFlag = flag.Bool("list-themes", false, "print available themes and exit")

	presetFlag      = flag.String("preset", "", "engine preset (see -list-presets)")
	listPresetsFlag = flag.Bool("list-presets", false, "print available presets and exit")
	configFlag      = flag.String("config", "", "YAML engine config path (overrides -preset)")
	seedFlag        = flag.Int64("seed", 0, "noise seed override (0 keeps the config seed)")

	// silentFlag disables the synthetic beat, leaving the field on its
	// base tuning.
	silentFlag = flag.Bool("silent", false, "disable the synthetic beat source")
	bpmFlag    = flag.Float64("bpm", defaultBeatBPM, "synthetic beat tempo in BPM")

	// debugFlag enables the FPS and frame timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and frame timing overlay")

	snapshotFlag   = flag.String("snapshot", "", "render one frame to a PNG at the given path and exit")
	settlePlotFlag = flag.Bool("settle-plot", false, "plot the spring settle curve to stdout and exit")
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
