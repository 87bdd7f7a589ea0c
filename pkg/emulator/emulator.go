// Package emulator is the host-facing API: load a ROM (and optional
// boot ROM), run it a frame at a time, feed it button input, and
// persist battery RAM between sessions.
package emulator

import (
	"github.com/sighmoe/rgb/internal/boot"
	"github.com/sighmoe/rgb/internal/bus"
	"github.com/sighmoe/rgb/internal/cartridge"
	"github.com/sighmoe/rgb/internal/config"
	"github.com/sighmoe/rgb/internal/cpu"
	"github.com/sighmoe/rgb/internal/interrupts"
	"github.com/sighmoe/rgb/internal/joypad"
	"github.com/sighmoe/rgb/internal/ppu"
	"github.com/sighmoe/rgb/internal/savedata"
	"github.com/sighmoe/rgb/internal/scheduler"
	"github.com/sighmoe/rgb/internal/timer"
)

// Emulator is one running Game Boy: every component plus the
// scheduler that drives them.
type Emulator struct {
	opts config.Options

	cart cartridge.Cartridge
	irq  *interrupts.Service
	tmr  *timer.Controller
	pad  *joypad.State
	ppu  *ppu.PPU
	bus  *bus.Bus
	cpu  *cpu.CPU
	sch  *scheduler.Scheduler
}

// New builds an Emulator from a ROM image. If bootROM is non-empty and
// the SkipBootROM option is not set, it's mapped over 0x0000-0x00FF
// until the game disables it (a bootROM that isn't exactly 256 bytes
// makes New return an error); otherwise execution starts at 0x0100
// with the post-boot register state the real boot ROM would have left
// behind.
func New(rom, bootROM []byte, opts ...config.Opt) (*Emulator, error) {
	o := config.Apply(opts...)

	cart, err := cartridge.New(rom, o.Logger)
	if err != nil {
		return nil, err
	}

	var bootImage *boot.ROM
	if len(bootROM) > 0 && !o.SkipBoot {
		bootImage, err = boot.Load(bootROM)
		if err != nil {
			return nil, config.NewIOError(err)
		}
	}

	irq := interrupts.NewService()
	tmr := timer.NewController(irq)
	pad := joypad.New(irq)
	p := ppu.New(irq)
	b := bus.New(cart, p, tmr, pad, irq, bootImage)
	c := cpu.New(b, irq, o.Logger)
	if bootImage == nil {
		postBoot(c, p)
	}

	e := &Emulator{
		opts: o,
		cart: cart,
		irq:  irq,
		tmr:  tmr,
		pad:  pad,
		ppu:  p,
		bus:  b,
		cpu:  c,
		sch:  scheduler.New(c, tmr, p),
	}
	return e, nil
}

// postBoot seeds the register file and the PPU's I/O registers with
// the values the DMG boot ROM leaves behind when execution starts
// straight at the cartridge entry point, skipping the boot sequence
// entirely. Leaving LCDC at its power-on 0x00 would keep the PPU
// permanently disabled, since Tick is a no-op while the LCD is off.
func postBoot(c *cpu.CPU, p *ppu.PPU) {
	c.PC = 0x0100
	c.SP = 0xFFFE
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D

	p.WriteLCDC(0x91)
	p.WriteBGP(0xFC)
	p.WriteOBP0(0xFF)
	p.WriteOBP1(0xFF)
	p.WriteSCY(0x00)
	p.WriteSCX(0x00)
	p.WriteLYC(0x00)
	p.WriteWY(0x00)
	p.WriteWX(0x00)
}

// SetButtons replaces the full held-button mask for the next frame
// (bit i set means button i, in joypad.ButtonA..joypad.ButtonDown
// order, is held).
func (e *Emulator) SetButtons(mask uint8) {
	e.pad.SetButtons(mask)
}

// RunFrame steps the machine until one frame completes and returns it.
func (e *Emulator) RunFrame() *ppu.FrameBuffer {
	return e.sch.RunFrame()
}

// Title returns the cartridge's title string, from the header.
func (e *Emulator) Title() string {
	return e.cart.Header().Title
}

// SaveBatteryRAM persists the cartridge's battery RAM under the save
// directory configured at construction time (config.WithSaveDir, "."
// if unset), if the cartridge type carries a battery.
func (e *Emulator) SaveBatteryRAM() error {
	return savedata.Save(savedata.Path(e.saveDir(), e.Title()), e.cart)
}

// LoadBatteryRAM restores previously persisted battery RAM. A missing
// save file is not an error.
func (e *Emulator) LoadBatteryRAM() error {
	return savedata.Load(savedata.Path(e.saveDir(), e.Title()), e.cart)
}

func (e *Emulator) saveDir() string {
	if e.opts.SaveDir == "" {
		return "."
	}
	return e.opts.SaveDir
}
