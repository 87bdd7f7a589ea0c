package cartridge

import "github.com/sighmoe/rgb/internal/types"

// romOnly is cartridge type 0x00: no bank switching, no external RAM.
type romOnly struct {
	rom    []byte
	header Header
}

func newROMOnly(rom []byte, header Header) *romOnly {
	return &romOnly{rom: rom, header: header}
}

func (c *romOnly) Header() Header { return c.header }

func (c *romOnly) Read(address uint16) uint8 {
	if int(address) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[address]
}

func (c *romOnly) Write(address uint16, value uint8) {}

func (c *romOnly) RAM() []byte { return nil }

func (c *romOnly) LoadRAM(data []byte) {}

var _ types.Stater = (*romOnly)(nil)

func (c *romOnly) Load(s *types.State) {}
func (c *romOnly) Save(s *types.State) {}
