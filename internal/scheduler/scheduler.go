// Package scheduler drives the CPU/Timer/PPU ordering contract: step
// the CPU, advance the timer and PPU by however many T-cycles that
// step took, and hand the caller a completed frame buffer whenever
// the PPU reports one ready.
package scheduler

import (
	"github.com/sighmoe/rgb/internal/cpu"
	"github.com/sighmoe/rgb/internal/ppu"
	"github.com/sighmoe/rgb/internal/timer"
)

// CyclesPerFrame is the number of T-cycles in one 59.7fps DMG frame:
// 154 scanlines of 456 dots each.
const CyclesPerFrame = 70224

// Scheduler owns the fetch-execute/tick loop. It holds no state of its
// own beyond references to the components it drives.
type Scheduler struct {
	cpu *cpu.CPU
	tmr *timer.Controller
	ppu *ppu.PPU
}

// New builds a Scheduler driving c, t, and p in lockstep.
func New(c *cpu.CPU, t *timer.Controller, p *ppu.PPU) *Scheduler {
	return &Scheduler{cpu: c, tmr: t, ppu: p}
}

// Step advances the machine by exactly one CPU step and returns the
// number of T-cycles elapsed.
func (s *Scheduler) Step() uint8 {
	cycles := s.cpu.Step()
	for i := uint8(0); i < cycles; i += 4 {
		s.tmr.TickM()
	}
	s.ppu.Tick(cycles)
	return cycles
}

// RunFrame steps the machine until the PPU reports a completed frame,
// then returns it. The PPU's internal double buffer means the frame
// returned here is the one that just finished, not one still being
// drawn into.
func (s *Scheduler) RunFrame() *ppu.FrameBuffer {
	for !s.ppu.FrameReady() {
		s.Step()
	}
	return s.ppu.TakeFrame()
}
