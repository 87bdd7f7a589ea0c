package ppu

import "github.com/sighmoe/rgb/internal/types"

// blocksVRAM reports whether the CPU is currently locked out of VRAM
// (mode 3 only); blocksOAM does the same for OAM (modes 2 and 3).
func (p *PPU) blocksVRAM() bool {
	return p.lcdEnabled() && p.mode == ModeDrawing
}

func (p *PPU) blocksOAM() bool {
	return p.lcdEnabled() && (p.mode == ModeOAMScan || p.mode == ModeDrawing)
}

// ReadVRAM returns the byte at a CPU-relative VRAM address (0x8000-0x9FFF),
// or 0xFF while the PPU is in Mode 3.
func (p *PPU) ReadVRAM(address uint16) uint8 {
	if p.blocksVRAM() {
		return 0xFF
	}
	return p.vram[address-0x8000]
}

// WriteVRAM writes address (0x8000-0x9FFF), silently ignored in Mode 3.
func (p *PPU) WriteVRAM(address uint16, value uint8) {
	if p.blocksVRAM() {
		return
	}
	p.vram[address-0x8000] = value
}

// ReadOAM returns the byte at a CPU-relative OAM address (0xFE00-0xFE9F),
// or 0xFF while the PPU is in Mode 2 or 3.
func (p *PPU) ReadOAM(address uint16) uint8 {
	if p.blocksOAM() {
		return 0xFF
	}
	return p.oam[address-0xFE00]
}

// WriteOAM writes address (0xFE00-0xFE9F), silently ignored in Mode 2/3.
func (p *PPU) WriteOAM(address uint16, value uint8) {
	if p.blocksOAM() {
		return
	}
	p.oam[address-0xFE00] = value
}

func (p *PPU) ReadLCDC() uint8 { return p.lcdc }
func (p *PPU) WriteLCDC(v uint8) {
	wasEnabled := p.lcdEnabled()
	p.lcdc = v
	if wasEnabled && !p.lcdEnabled() {
		p.ly = 0
		p.lx = 0
		p.setMode(ModeHBlank)
	}
}

// ReadSTAT returns the STAT register, with the mode and coincidence bits
// always reflecting live state and bit 7 read back as set.
func (p *PPU) ReadSTAT() uint8 {
	v := p.stat&0xF8 | uint8(p.mode)
	if p.ly == p.lyc {
		v |= types.Bit2
	}
	return v | types.Bit7
}

// WriteSTAT updates the writable STAT bits (3-6); bits 0-2 are read-only
// mode/coincidence state.
func (p *PPU) WriteSTAT(v uint8) {
	p.stat = v & 0x78
	p.updateSTATLine()
}

func (p *PPU) ReadSCY() uint8    { return p.scy }
func (p *PPU) WriteSCY(v uint8)  { p.scy = v }
func (p *PPU) ReadSCX() uint8    { return p.scx }
func (p *PPU) WriteSCX(v uint8)  { p.scx = v }

// ReadLY returns the current scanline. Writes from the CPU are ignored.
func (p *PPU) ReadLY() uint8       { return p.ly }
func (p *PPU) WriteLY(uint8)       {}
func (p *PPU) ReadLYC() uint8      { return p.lyc }
func (p *PPU) WriteLYC(v uint8)    { p.lyc = v; p.updateSTATLine() }
func (p *PPU) ReadBGP() uint8      { return p.bgp }
func (p *PPU) WriteBGP(v uint8)    { p.bgp = v }
func (p *PPU) ReadOBP0() uint8     { return p.obp0 }
func (p *PPU) WriteOBP0(v uint8)   { p.obp0 = v }
func (p *PPU) ReadOBP1() uint8     { return p.obp1 }
func (p *PPU) WriteOBP1(v uint8)   { p.obp1 = v }
func (p *PPU) ReadWY() uint8       { return p.wy }
func (p *PPU) WriteWY(v uint8)     { p.wy = v }
func (p *PPU) ReadWX() uint8       { return p.wx }
func (p *PPU) WriteWX(v uint8)     { p.wx = v }

// WriteDMA triggers an instantaneous 160-byte OAM transfer from
// (value<<8) through the bus-supplied dmaRead source. A cycle-accurate
// model stalls the CPU for 640 T-cycles; this simplified model (per
// spec) completes the copy synchronously.
func (p *PPU) WriteDMA(value uint8) {
	if p.dmaRead == nil {
		return
	}
	src := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		p.oam[i] = p.dmaRead(src + i)
	}
}

var _ types.Stater = (*PPU)(nil)

// Load implements types.Stater.
func (p *PPU) Load(s *types.State) {
	s.ReadData(p.vram[:])
	s.ReadData(p.oam[:])
	p.lcdc = s.Read8()
	p.stat = s.Read8()
	p.scy = s.Read8()
	p.scx = s.Read8()
	p.ly = s.Read8()
	p.lyc = s.Read8()
	p.bgp = s.Read8()
	p.obp0 = s.Read8()
	p.obp1 = s.Read8()
	p.wy = s.Read8()
	p.wx = s.Read8()
	p.lx = s.Read16()
	p.mode = Mode(s.Read8())
	p.statLine = s.ReadBool()
	p.windowLine = s.Read8()
	p.windowActive = s.ReadBool()
}

// Save implements types.Stater.
func (p *PPU) Save(s *types.State) {
	s.WriteData(p.vram[:])
	s.WriteData(p.oam[:])
	s.Write8(p.lcdc)
	s.Write8(p.stat)
	s.Write8(p.scy)
	s.Write8(p.scx)
	s.Write8(p.ly)
	s.Write8(p.lyc)
	s.Write8(p.bgp)
	s.Write8(p.obp0)
	s.Write8(p.obp1)
	s.Write8(p.wy)
	s.Write8(p.wx)
	s.Write16(p.lx)
	s.Write8(uint8(p.mode))
	s.WriteBool(p.statLine)
	s.Write8(p.windowLine)
	s.WriteBool(p.windowActive)
}
