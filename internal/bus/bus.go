// Package bus implements the 64KiB address space: a precomputed
// dispatch table routing every CPU read and write to the component that
// owns that region, cartridge bank switching, boot ROM overlay, echo
// RAM, and the I/O register decode.
package bus

import (
	"github.com/sighmoe/rgb/internal/boot"
	"github.com/sighmoe/rgb/internal/cartridge"
	"github.com/sighmoe/rgb/internal/interrupts"
	"github.com/sighmoe/rgb/internal/joypad"
	"github.com/sighmoe/rgb/internal/ppu"
	"github.com/sighmoe/rgb/internal/timer"
	"github.com/sighmoe/rgb/internal/types"
)

// Bus owns the full 64KiB address space and every component reachable
// through it.
type Bus struct {
	raw [65536]*types.Address

	cart cartridge.Cartridge
	ppu  *ppu.PPU
	tmr  *timer.Controller
	pad  *joypad.State
	irq  *interrupts.Service

	bootROM  *boot.ROM
	bootDone bool

	wram [0x2000]byte
	hram [0x7F]byte
}

// New wires cart, p, t, j, and irq into a fresh dispatch table. If
// bootROM is nil, the boot overlay starts already disabled (the "skip
// boot" path) and reads at 0x0000-0x00FF go straight to the cartridge.
func New(cart cartridge.Cartridge, p *ppu.PPU, t *timer.Controller, j *joypad.State, irq *interrupts.Service, bootROM *boot.ROM) *Bus {
	b := &Bus{
		cart:     cart,
		ppu:      p,
		tmr:      t,
		pad:      j,
		irq:      irq,
		bootROM:  bootROM,
		bootDone: bootROM == nil,
	}
	p.AttachDMASource(b.Read)
	b.build()
	return b
}

// Read returns the byte at address, dispatching through the precomputed
// table.
func (b *Bus) Read(address uint16) uint8 {
	return b.raw[address].Read(address)
}

// Write stores value at address, dispatching through the precomputed
// table.
func (b *Bus) Write(address uint16, value uint8) {
	b.raw[address].Write(address, value)
}

func (b *Bus) readROMOrBoot(address uint16) uint8 {
	if !b.bootDone && address < 0x100 {
		return b.bootROM.Read(address)
	}
	return b.cart.Read(address)
}

func (b *Bus) writeBDIS(address uint16, value uint8) {
	if value != 0 {
		b.bootDone = true
	}
}

func (b *Bus) readWRAM(address uint16) uint8 {
	return b.wram[(address-0xC000)&0x1FFF]
}

func (b *Bus) writeWRAM(address uint16, value uint8) {
	b.wram[(address-0xC000)&0x1FFF] = value
}

func (b *Bus) readHRAM(address uint16) uint8 {
	return b.hram[address-0xFF80]
}

func (b *Bus) writeHRAM(address uint16, value uint8) {
	b.hram[address-0xFF80] = value
}

func noWrite(uint16, uint8) {}

func readFF(uint16) uint8 { return 0xFF }

// build fills the 65536-entry dispatch table, one *types.Address per
// region, with the unusable 0xFEA0-0xFEFF window and any unimplemented
// I/O register reading back 0xFF and discarding writes.
func (b *Bus) build() {
	rom := &types.Address{Read: b.readROMOrBoot, Write: b.cart.Write}
	cartRAM := &types.Address{Read: b.cart.Read, Write: b.cart.Write}
	vram := &types.Address{Read: b.ppu.ReadVRAM, Write: b.ppu.WriteVRAM}
	wram := &types.Address{Read: b.readWRAM, Write: b.writeWRAM}
	oam := &types.Address{Read: b.ppu.ReadOAM, Write: b.ppu.WriteOAM}
	unusable := &types.Address{Read: readFF, Write: noWrite}
	hram := &types.Address{Read: b.readHRAM, Write: b.writeHRAM}

	for i := 0; i < 0x8000; i++ {
		b.raw[i] = rom
	}
	for i := 0x8000; i < 0xA000; i++ {
		b.raw[i] = vram
	}
	for i := 0xA000; i < 0xC000; i++ {
		b.raw[i] = cartRAM
	}
	for i := 0xC000; i < 0xFE00; i++ {
		b.raw[i] = wram // includes echo RAM, 0xE000-0xFDFF
	}
	for i := 0xFE00; i < 0xFEA0; i++ {
		b.raw[i] = oam
	}
	for i := 0xFEA0; i < 0xFF00; i++ {
		b.raw[i] = unusable
	}
	for i := 0xFF00; i < 0xFF80; i++ {
		b.raw[i] = &types.Address{Read: readFF, Write: noWrite}
	}
	for i := 0xFF80; i < 0xFFFF; i++ {
		b.raw[i] = hram
	}

	b.buildRegisters()
}

// buildRegisters overlays the individually addressed I/O registers on
// top of the generic 0xFF00-0xFF7F fallback, plus IE at 0xFFFF.
func (b *Bus) buildRegisters() {
	reg := func(addr uint16, read func(uint16) uint8, write func(uint16, uint8)) {
		b.raw[addr] = &types.Address{Read: read, Write: write}
	}

	reg(types.P1, func(uint16) uint8 { return b.pad.ReadP1() }, func(_ uint16, v uint8) { b.pad.WriteP1(v) })
	reg(types.DIV, func(uint16) uint8 { return b.tmr.ReadDIV() }, func(_ uint16, v uint8) { b.tmr.WriteDIV(v) })
	reg(types.TIMA, func(uint16) uint8 { return b.tmr.ReadTIMA() }, func(_ uint16, v uint8) { b.tmr.WriteTIMA(v) })
	reg(types.TMA, func(uint16) uint8 { return b.tmr.ReadTMA() }, func(_ uint16, v uint8) { b.tmr.WriteTMA(v) })
	reg(types.TAC, func(uint16) uint8 { return b.tmr.ReadTAC() }, func(_ uint16, v uint8) { b.tmr.WriteTAC(v) })
	reg(types.IF, func(uint16) uint8 { return b.irq.ReadIF() }, func(_ uint16, v uint8) { b.irq.WriteIF(v) })

	reg(types.LCDC, func(uint16) uint8 { return b.ppu.ReadLCDC() }, func(_ uint16, v uint8) { b.ppu.WriteLCDC(v) })
	reg(types.STAT, func(uint16) uint8 { return b.ppu.ReadSTAT() }, func(_ uint16, v uint8) { b.ppu.WriteSTAT(v) })
	reg(types.SCY, func(uint16) uint8 { return b.ppu.ReadSCY() }, func(_ uint16, v uint8) { b.ppu.WriteSCY(v) })
	reg(types.SCX, func(uint16) uint8 { return b.ppu.ReadSCX() }, func(_ uint16, v uint8) { b.ppu.WriteSCX(v) })
	reg(types.LY, func(uint16) uint8 { return b.ppu.ReadLY() }, func(_ uint16, v uint8) { b.ppu.WriteLY(v) })
	reg(types.LYC, func(uint16) uint8 { return b.ppu.ReadLYC() }, func(_ uint16, v uint8) { b.ppu.WriteLYC(v) })
	reg(types.DMA, func(uint16) uint8 { return 0xFF }, func(_ uint16, v uint8) { b.ppu.WriteDMA(v) })
	reg(types.BGP, func(uint16) uint8 { return b.ppu.ReadBGP() }, func(_ uint16, v uint8) { b.ppu.WriteBGP(v) })
	reg(types.OBP0, func(uint16) uint8 { return b.ppu.ReadOBP0() }, func(_ uint16, v uint8) { b.ppu.WriteOBP0(v) })
	reg(types.OBP1, func(uint16) uint8 { return b.ppu.ReadOBP1() }, func(_ uint16, v uint8) { b.ppu.WriteOBP1(v) })
	reg(types.WY, func(uint16) uint8 { return b.ppu.ReadWY() }, func(_ uint16, v uint8) { b.ppu.WriteWY(v) })
	reg(types.WX, func(uint16) uint8 { return b.ppu.ReadWX() }, func(_ uint16, v uint8) { b.ppu.WriteWX(v) })

	reg(types.BDIS, readFF, b.writeBDIS)
	reg(types.IE, func(uint16) uint8 { return b.irq.ReadIE() }, func(_ uint16, v uint8) { b.irq.WriteIE(v) })
}
