// Package boot holds the 256-byte DMG boot ROM overlay.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// ROM is the boot ROM mapped read-only over 0x0000-0x00FF until the
// cartridge disables it by writing to 0xFF50.
type ROM struct {
	raw      []byte
	checksum string
}

// Load wraps a 256-byte DMG boot ROM image. Returns an error if b isn't
// exactly 256 bytes.
func Load(b []byte) (*ROM, error) {
	if len(b) != 256 {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d", len(b))
	}
	sum := md5.Sum(b)
	return &ROM{raw: b, checksum: hex.EncodeToString(sum[:])}, nil
}

// Read returns the byte at addr (0x0000-0x00FF).
func (r *ROM) Read(addr uint16) byte {
	return r.raw[addr]
}

// Model identifies the boot ROM by its MD5 checksum against the known
// DMG-family dumps, or "unknown" if it doesn't match any of them.
func (r *ROM) Model() string {
	if r == nil {
		return "none"
	}
	if model, ok := knownChecksums[r.checksum]; ok {
		return model
	}
	return "unknown"
}

var knownChecksums = map[string]string{
	dmg0: "Game Boy (DMG-0)",
	dmg:  "Game Boy (DMG-01)",
	mgb:  "Game Boy Pocket",
}

const (
	// dmg0 is the early Japan-only DMG boot ROM; on a boot failure it
	// flashes the screen instead of hanging after the logo.
	dmg0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// dmg is the boot ROM found in most original DMG-01 units.
	dmg = "32fbbd84168d3482956eb3c5051637f5"
	// mgb differs from dmg by a single byte: it loads 0xFF into A
	// instead of 0x01, letting games detect Game Boy Pocket hardware.
	mgb = "71a378e71ff30b2d8a1f02bf5c7896aa"
)
