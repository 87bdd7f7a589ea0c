package bus

import "github.com/sighmoe/rgb/internal/types"

var _ types.Stater = (*Bus)(nil)

// Load implements types.Stater, restoring work RAM, HRAM, and the boot
// overlay latch. Component save states (cartridge, PPU, timer, joypad,
// interrupts) are saved/loaded independently by their owners.
func (b *Bus) Load(s *types.State) {
	s.ReadData(b.wram[:])
	s.ReadData(b.hram[:])
	b.bootDone = s.ReadBool()
}

// Save implements types.Stater.
func (b *Bus) Save(s *types.State) {
	s.WriteData(b.wram[:])
	s.WriteData(b.hram[:])
	s.WriteBool(b.bootDone)
}
