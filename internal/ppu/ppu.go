// Package ppu implements the picture processing unit: the LCDC/STAT/LY
// scanline state machine, VRAM/OAM storage, and background/window/sprite
// compositing into a 160x144 frame buffer.
package ppu

import (
	"github.com/sighmoe/rgb/internal/interrupts"
	"github.com/sighmoe/rgb/internal/types"
)

// Mode is one of the four PPU scanline states.
type Mode uint8

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAMScan Mode = 2
	ModeDrawing Mode = 3
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	dotsPerLine    = 456
	linesPerFrame  = 154
	oamScanDots    = 80
	drawingDots    = 172 // simplified fixed-length Drawing mode, per spec
	hblankStart    = oamScanDots + drawingDots
)

// FrameBuffer is one completed frame: 160x144 2-bit shades (color
// indices already mapped through BGP/OBP0/OBP1), row major.
type FrameBuffer [ScreenHeight][ScreenWidth]uint8

// sprite is one decoded OAM entry, cached for the current scanline.
type sprite struct {
	y, x   uint8
	tile   uint8
	attrs  uint8
	oamIdx uint8
}

// PPU owns VRAM, OAM, and the LCD registers, and produces one completed
// FrameBuffer per 70,224-T-cycle frame.
type PPU struct {
	vram [0x2000]byte
	oam  [0xA0]byte

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	lx   uint16
	mode Mode

	statLine bool // level of the combined STAT interrupt source, for edge detection

	windowLine   uint8 // internal window line counter
	windowActive bool  // true once the window has been drawn at least once this frame

	scanlineSprites []sprite

	back  *FrameBuffer // being drawn into
	front *FrameBuffer // last completed frame

	frameReady bool

	irq *interrupts.Service

	// dmaRead is supplied by the bus so OAM DMA can pull from anywhere in
	// the 64KiB address space; kept decoupled from internal/bus to avoid
	// an import cycle.
	dmaRead func(address uint16) uint8
}

// New returns a new PPU with the LCD off and both frame buffers zeroed.
func New(irq *interrupts.Service) *PPU {
	return &PPU{
		irq:             irq,
		back:            &FrameBuffer{},
		front:           &FrameBuffer{},
		scanlineSprites: make([]sprite, 0, 10),
	}
}

// AttachDMASource lets the bus supply the byte source OAM DMA copies
// from.
func (p *PPU) AttachDMASource(read func(address uint16) uint8) {
	p.dmaRead = read
}

// Mode returns the PPU's current scanline mode.
func (p *PPU) Mode() Mode {
	return p.mode
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// FrameReady reports whether a new frame has completed since the last
// call to FrameReady, and clears the flag.
func (p *PPU) FrameReady() bool {
	r := p.frameReady
	p.frameReady = false
	return r
}

// TakeFrame returns the most recently completed frame buffer.
func (p *PPU) TakeFrame() *FrameBuffer {
	return p.front
}

func (p *PPU) lcdEnabled() bool  { return p.lcdc&types.Bit7 != 0 }
func (p *PPU) windowEnabled() bool { return p.lcdc&types.Bit5 != 0 }
func (p *PPU) spritesEnabled() bool { return p.lcdc&types.Bit1 != 0 }
func (p *PPU) bgEnabled() bool   { return p.lcdc&types.Bit0 != 0 }
func (p *PPU) tallSprites() bool { return p.lcdc&types.Bit2 != 0 }

// Tick advances the PPU by cycles T-cycles.
func (p *PPU) Tick(cycles uint8) {
	if !p.lcdEnabled() {
		return
	}
	for i := uint8(0); i < cycles; i++ {
		p.tickOne()
	}
}

func (p *PPU) tickOne() {
	p.lx++

	switch {
	case p.ly < ScreenHeight && p.lx == 1:
		p.setMode(ModeOAMScan)
		p.scanOAM()
	case p.ly < ScreenHeight && p.lx == oamScanDots+1:
		p.setMode(ModeDrawing)
		p.renderScanline()
	case p.ly < ScreenHeight && p.lx == hblankStart+1:
		p.setMode(ModeHBlank)
	}

	if p.lx >= dotsPerLine {
		p.lx = 0
		p.ly++

		if p.ly == ScreenHeight {
			p.setMode(ModeVBlank)
			p.irq.Request(interrupts.VBlankFlag)
			p.front, p.back = p.back, p.front
			p.frameReady = true
			p.windowLine = 0
			p.windowActive = false
		}

		if p.ly >= linesPerFrame {
			p.ly = 0
		}
	}

	p.updateSTATLine()
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
}

// updateSTATLine recomputes the coincidence flag and the combined STAT
// interrupt source level, requesting the STAT interrupt only on a 0-to-1
// transition of that combined line.
func (p *PPU) updateSTATLine() {
	coincidence := p.ly == p.lyc

	line := false
	if coincidence && p.stat&types.Bit6 != 0 {
		line = true
	}
	switch p.mode {
	case ModeHBlank:
		line = line || p.stat&types.Bit3 != 0
	case ModeVBlank:
		line = line || p.stat&types.Bit4 != 0
	case ModeOAMScan:
		line = line || p.stat&types.Bit5 != 0
	}

	if line && !p.statLine {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.statLine = line
}
