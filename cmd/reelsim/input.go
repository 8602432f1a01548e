package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/session"
)

// Terminals report key presses, not releases. A key counts as held for
// holdWindow seconds after its last (auto-repeated) press.
const holdWindow = 0.3

// controls turns terminal events into per-frame session input.
type controls struct {
	forward, turn float64
	forwardHold   float64
	turnHold      float64
	reelHold      float64
	mouseDown     bool

	castRequested bool
	lureRequested int // index into data.Lures, -1 = none
	quit          bool
}

func newControls() *controls {
	return &controls{lureRequested: -1}
}

// handle applies one terminal event.
func (c *controls) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(ev)
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !c.mouseDown {
			c.castRequested = true
		}
		c.mouseDown = down
	}
}

func (c *controls) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
		return
	case tcell.KeyUp:
		c.setForward(1)
		return
	case tcell.KeyDown:
		c.setForward(-1)
		return
	case tcell.KeyLeft:
		c.setTurn(-1)
		return
	case tcell.KeyRight:
		c.setTurn(1)
		return
	case tcell.KeyEnter:
		c.castRequested = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r := ev.Rune(); r {
	case 'q':
		c.quit = true
	case 'w':
		c.setForward(1)
	case 's':
		c.setForward(-1)
	case 'a':
		c.setTurn(-1)
	case 'd':
		c.setTurn(1)
	case 'c':
		c.castRequested = true
	case ' ':
		c.reelHold = holdWindow
	default:
		if r >= '1' && r <= '9' && int(r-'1') < len(data.Lures) {
			c.lureRequested = int(r - '1')
		}
	}
}

func (c *controls) setForward(v float64) {
	c.forward = v
	c.forwardHold = holdWindow
}

func (c *controls) setTurn(v float64) {
	c.turn = v
	c.turnHold = holdWindow
}

// frame returns this frame's input and ages the key holds.
func (c *controls) frame(dt float64) session.Input {
	in := session.Input{
		Forward: c.forward,
		Turn:    c.turn,
		Reeling: c.mouseDown || c.reelHold > 0,
	}

	c.forwardHold -= dt
	if c.forwardHold <= 0 {
		c.forward = 0
	}
	c.turnHold -= dt
	if c.turnHold <= 0 {
		c.turn = 0
	}
	c.reelHold = max(0, c.reelHold-dt)
	return in
}
