// Package timer implements the DIV/TIMA/TMA/TAC timer: a free-running
// 16-bit divider and a falling-edge-triggered counter that raises the
// timer interrupt on overflow.
package timer

import (
	"github.com/sighmoe/rgb/internal/interrupts"
	"github.com/sighmoe/rgb/internal/types"
)

// multiplexerBit maps the low two bits of TAC to the divider bit the
// falling-edge detector watches.
//
//	00 -> bit 9  (4096 Hz)
//	01 -> bit 3  (262144 Hz)
//	10 -> bit 5  (65536 Hz)
//	11 -> bit 7  (16384 Hz)
var multiplexerBit = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller is the timer/divider unit.
type Controller struct {
	div uint16 // free-running internal divider, DIV is its upper byte

	tima uint8
	tma  uint8
	tac  uint8

	lastBit            bool
	overflow           bool
	ticksSinceOverflow uint8

	irq *interrupts.Service
}

// NewController returns a new Controller wired to request timer
// interrupts through irq.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq, tac: 0xF8}
}

// ReadDIV returns the upper 8 bits of the internal divider.
func (c *Controller) ReadDIV() uint8 {
	return uint8(c.div >> 8)
}

// WriteDIV resets the entire 16-bit internal divider to zero. Any write
// to DIV does this regardless of the value written.
func (c *Controller) WriteDIV(uint8) {
	c.div = 0
}

// ReadTIMA returns the counter register.
func (c *Controller) ReadTIMA() uint8 {
	return c.tima
}

// WriteTIMA sets the counter register, unless the write lands on the
// cycle TIMA is being reloaded from TMA, in which case it is ignored.
func (c *Controller) WriteTIMA(v uint8) {
	if c.ticksSinceOverflow == 5 {
		return
	}
	c.tima = v
	c.overflow = false
	c.ticksSinceOverflow = 0
}

// ReadTMA returns the modulo register.
func (c *Controller) ReadTMA() uint8 {
	return c.tma
}

// WriteTMA sets the modulo register. If this write lands on the cycle
// TIMA is being reloaded, the reload picks up the new value instead.
func (c *Controller) WriteTMA(v uint8) {
	c.tma = v
	if c.ticksSinceOverflow == 5 {
		c.tima = v
	}
}

// ReadTAC returns the control register, with the unused upper bits read
// back as set.
func (c *Controller) ReadTAC() uint8 {
	return c.tac | 0xF8
}

// WriteTAC updates the control register.
func (c *Controller) WriteTAC(v uint8) {
	c.tac = v & 0x07
}

func (c *Controller) enabled() bool {
	return c.tac&0x04 != 0
}

func (c *Controller) bit() uint16 {
	return multiplexerBit[c.tac&0x03]
}

// TickM advances the timer by one M-cycle (4 T-cycles), detecting the
// TAC-selected divider bit's falling edge on every T-cycle and running
// the TIMA-overflow-to-TMA-reload pipeline, which takes effect four
// cycles after the overflow and completes on the fifth.
func (c *Controller) TickM() {
	for i := 0; i < 4; i++ {
		c.div++

		newBit := c.enabled() && c.div&c.bit() != 0
		if !newBit && c.lastBit {
			c.tima++
			if c.tima == 0 {
				c.overflow = true
				c.ticksSinceOverflow = 0
			}
		}
		c.lastBit = newBit

		if c.overflow {
			c.ticksSinceOverflow++
			switch c.ticksSinceOverflow {
			case 4:
				c.irq.Request(interrupts.TimerFlag)
			case 5:
				c.tima = c.tma
			case 6:
				c.overflow = false
				c.ticksSinceOverflow = 0
			}
		}
	}
}

var _ types.Stater = (*Controller)(nil)

// Load implements types.Stater.
func (c *Controller) Load(s *types.State) {
	c.div = s.Read16()
	c.tima = s.Read8()
	c.tma = s.Read8()
	c.tac = s.Read8()
	c.lastBit = s.ReadBool()
	c.overflow = s.ReadBool()
	c.ticksSinceOverflow = s.Read8()
}

// Save implements types.Stater.
func (c *Controller) Save(s *types.State) {
	s.Write16(c.div)
	s.Write8(c.tima)
	s.Write8(c.tma)
	s.Write8(c.tac)
	s.WriteBool(c.lastBit)
	s.WriteBool(c.overflow)
	s.Write8(c.ticksSinceOverflow)
}
