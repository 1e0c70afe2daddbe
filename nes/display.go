package nes

import (
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Display is a debug-only window: it never renders the NES picture (there
// is no pixel pipeline to draw from), only live CPU register state and the
// last dispatched instruction, for use by the `run --debug` command.
type Display struct {
	window *pixelgl.Window

	debugAtlas    *text.Atlas
	debugRegText  *text.Text // CPU register printout
	debugInstText *text.Text // Last dispatched instruction
}

const (
	debugResW float64 = 400
	debugResH float64 = 300
)

func NewDisplay() *Display {
	config := pixelgl.WindowConfig{
		Title:  "nesgo debug",
		Bounds: pixel.R(0, 0, debugResW, debugResH),
		VSync:  true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("unable to create debug window: ", err)
	}

	debugAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	debugRegText := text.New(pixel.V(8, debugResH-20), debugAtlas)
	debugInstText := text.New(pixel.V(8, debugResH-160), debugAtlas)

	return &Display{
		window:        window,
		debugAtlas:    debugAtlas,
		debugRegText:  debugRegText,
		debugInstText: debugInstText,
	}
}

func (d *Display) Closed() bool { return d.window.Closed() }

// WriteRegDebugString writes CPU register state to the debug panel.
func (d *Display) WriteRegDebugString(t string) {
	d.debugRegText.Clear()
	d.debugRegText.WriteString(t)
}

// WriteInstDebugString writes disassembly text to the debug panel.
func (d *Display) WriteInstDebugString(t string) {
	d.debugInstText.Clear()
	d.debugInstText.WriteString(t)
}

// UpdateScreen redraws the debug panel from its current text contents.
func (d *Display) UpdateScreen() {
	d.window.Clear(colornames.Black)
	d.debugRegText.Draw(d.window, pixel.IM)
	d.debugInstText.Draw(d.window, pixel.IM)
	d.window.Update()
}
