package scheduler

import (
	"testing"

	"github.com/sighmoe/rgb/internal/cpu"
	"github.com/sighmoe/rgb/internal/interrupts"
	"github.com/sighmoe/rgb/internal/ppu"
	"github.com/sighmoe/rgb/internal/timer"
)

// nopBus is flat RAM pre-filled with NOPs, enough to drive the CPU
// indefinitely without needing the real bus wiring.
type nopBus struct {
	mem [65536]uint8
}

func newNopBus() *nopBus {
	b := &nopBus{}
	for i := range b.mem {
		b.mem[i] = 0x00 // NOP
	}
	return b
}

func (b *nopBus) Read(addr uint16) uint8         { return b.mem[addr] }
func (b *nopBus) Write(addr uint16, value uint8) { b.mem[addr] = value }

func TestStepAdvancesTimerByCPUCycles(t *testing.T) {
	irq := interrupts.NewService()
	b := newNopBus()
	c := cpu.New(b, irq, nil)
	tmr := timer.NewController(irq)
	p := ppu.New(irq)
	s := New(c, tmr, p)

	cycles := s.Step()
	if cycles != 4 { // NOP takes exactly 1 M-cycle (4 T-cycles)
		t.Fatalf("NOP step returned %d cycles, want 4", cycles)
	}
	if tmr.ReadDIV() != 0 {
		t.Fatalf("DIV advanced past a single NOP's 4 T-cycles")
	}
}

func TestRunFrameCompletesAfterOneFullFrameOfNOPs(t *testing.T) {
	irq := interrupts.NewService()
	b := newNopBus()
	c := cpu.New(b, irq, nil)
	tmr := timer.NewController(irq)
	p := ppu.New(irq)
	p.WriteLCDC(0x80) // LCD on, so the PPU actually advances scanlines
	s := New(c, tmr, p)

	frame := s.RunFrame()
	if frame == nil {
		t.Fatal("RunFrame returned a nil frame buffer")
	}
}
