package main

import "time"

// Application-level constants: window shape, host timing, and snapshot
// behavior. Engine tunables live in internal/waves and come from
// presets or a YAML config.
const (
	defaultWindowW = 1280
	defaultWindowH = 720
	windowTitle    = "radio-player"

	hostTPS   = 60.0
	frameTime = time.Second / 60

	// resizeSettle is how long the window size must hold still before
	// the lattice is rebuilt. Rebuilding on every live-resize event
	// would reset the springs dozens of times per drag.
	resizeSettle = 140 * time.Millisecond

	// snapshotWarmup is how much field time a snapshot advances before
	// rasterizing, so captures show a developed field instead of the
	// flat first frame.
	snapshotWarmup    = 7.5
	snapshotFrameStep = 1.0 / hostTPS

	defaultBeatBPM = 96
)
