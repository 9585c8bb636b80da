package main

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/harrysaysyes/radio-player/internal/waves"
)

// Settle-plot parameters: one spring gets kicked sideways and its
// decaying |offset| is charted frame by frame.
const (
	settleFrames  = 240
	settleKick    = 60.0
	settleEpsilon = 0.5
)

// runSettlePlot simulates a single spring kicked settleKick pixels off
// rest and plots the decay, a quick terminal check of how a
// tension/friction pair feels before committing it to a config file.
func runSettlePlot(cfg waves.Config) error {
	probe := cfg
	probe.Amplitude = 0
	probe.WarpEnabled = false
	probe.DomainEnabled = false
	probe.RidgeEnabled = false
	probe.GridPad = 0
	probe.CenterGrid = false
	if probe.MaxOffset < settleKick*1.5 {
		probe.MaxOffset = settleKick * 1.5
	}

	eng, err := waves.NewEngine(probe, nil)
	if err != nil {
		return err
	}
	eng.SetViewport(waves.Viewport{Width: 1, Height: 1, Scale: 1})

	pts := eng.Grid().Points
	pts[0].SpringOffX = settleKick

	series := make([]float64, 0, settleFrames)
	settled := -1
	for i := 0; i < settleFrames; i++ {
		eng.Step(1.0 / hostTPS)
		off := math.Abs(pts[0].SpringOffX)
		series = append(series, off)
		if settled < 0 && off < settleEpsilon {
			settled = i + 1
		} else if settled >= 0 && off >= settleEpsilon {
			settled = -1
		}
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("|offset| after a %.0fpx kick (tension %.3g, friction %.3g)",
			settleKick, probe.SpringTension, probe.SpringFriction)),
	)
	fmt.Println(graph)

	if settled >= 0 {
		fmt.Printf("settled under %.1fpx after %d frames (%.2fs)\n",
			settleEpsilon, settled, float64(settled)/hostTPS)
	} else {
		fmt.Printf("not settled after %d frames\n", settleFrames)
	}
	return nil
}
