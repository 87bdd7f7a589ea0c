package bus

import (
	"testing"

	"github.com/sighmoe/rgb/internal/boot"
	"github.com/sighmoe/rgb/internal/cartridge"
	"github.com/sighmoe/rgb/internal/interrupts"
	"github.com/sighmoe/rgb/internal/joypad"
	"github.com/sighmoe/rgb/internal/ppu"
	"github.com/sighmoe/rgb/internal/timer"
	"github.com/sirupsen/logrus"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x147] = byte(cartridge.ROM)
	cart, err := cartridge.New(rom, logrus.StandardLogger())
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	irq := interrupts.NewService()
	return New(cart, ppu.New(irq), timer.NewController(irq), joypad.New(irq), irq, nil)
}

func TestWRAMEchoMirrorsWRAM(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xC010, 0x42)
	if got := b.Read(0xE010); got != 0x42 {
		t.Fatalf("echo RAM read = %#x, want 0x42", got)
	}
	b.Write(0xE020, 0x99)
	if got := b.Read(0xC020); got != 0x99 {
		t.Fatalf("WRAM read = %#x, want 0x99 (written through echo)", got)
	}
}

func TestUnusableRegionReadsFF(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFEA0, 0x42) // discarded
	if got := b.Read(0xFEA0); got != 0xFF {
		t.Fatalf("unusable region read = %#x, want 0xFF", got)
	}
}

func TestHRAMReadWrite(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFF90, 0x77)
	if got := b.Read(0xFF90); got != 0x77 {
		t.Fatalf("HRAM read = %#x, want 0x77", got)
	}
}

func TestBootOverlayDisablesOnBDISWrite(t *testing.T) {
	bootROM := make([]byte, 256)
	bootROM[0] = 0xAA
	bootImage, err := boot.Load(bootROM)
	if err != nil {
		t.Fatalf("boot.Load: %v", err)
	}

	rom := make([]byte, 0x8000)
	rom[0] = 0xBB
	rom[0x147] = byte(cartridge.ROM)
	cart, err := cartridge.New(rom, logrus.StandardLogger())
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	irq := interrupts.NewService()
	b := New(cart, ppu.New(irq), timer.NewController(irq), joypad.New(irq), irq, bootImage)

	if got := b.Read(0x0000); got != 0xAA {
		t.Fatalf("read with boot overlay active = %#x, want 0xAA", got)
	}
	b.Write(0xFF50, 0x01)
	if got := b.Read(0x0000); got != 0xBB {
		t.Fatalf("read after disabling boot overlay = %#x, want 0xBB (cartridge)", got)
	}
}
