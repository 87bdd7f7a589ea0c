// Package types holds data structures shared across every component of the
// emulator: the CPU register file, bus address decoding, hardware register
// addresses, and the byte-cursor format used for save states.
package types

// Bit is a single bit mask, used throughout the register and flag logic to
// keep intent readable (types.Bit4 instead of a bare 0x10).
type Bit = uint8

const (
	Bit0 Bit = 1 << iota // 0b0000_0001
	Bit1                 // 0b0000_0010
	Bit2                 // 0b0000_0100
	Bit3                 // 0b0000_1000
	Bit4                 // 0b0001_0000
	Bit5                 // 0b0010_0000
	Bit6                 // 0b0100_0000
	Bit7                 // 0b1000_0000
)
