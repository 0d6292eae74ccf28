package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Refresh the overlay text every N frames to limit allocations.
	updateInterval = 30
)

// Overlay draws runtime counters (FPS, heap) in the top-right corner. Off by
// default; toggled from preferences or the F1 key.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns an overlay with all counters hidden.
func New() *Overlay {
	return &Overlay{}
}

// Toggle flips both counters at once (the F1 binding).
func (d *Overlay) Toggle() {
	on := !d.ShowFPS
	d.ShowFPS = on
	d.ShowMemAlloc = on
}

// Draw renders the enabled counters. Call last in the draw loop so the
// overlay sits on top of the widgets.
func (d *Overlay) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastFpsText == ""

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
