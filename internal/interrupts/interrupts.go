// Package interrupts implements the interrupt controller: the IE/IF
// register pair and the IME dispatch priority used by the CPU.
package interrupts

import (
	"github.com/sighmoe/rgb/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0), requested every
	// time the PPU enters VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), requested by the STAT
	// register when one of its enabled conditions becomes true.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested when TIMA
	// overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3). Nothing in this
	// implementation requests it; the link port is a non-goal.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4), requested when any
	// selected P1 input line goes from high to low.
	JoypadFlag = types.Bit4
)

// Service owns the IE and IF registers and resolves the next interrupt
// vector to service. The IME bit itself is tracked by the CPU, since EI's
// one-instruction enable delay is part of the instruction pipeline rather
// than a property of the interrupt controller.
type Service struct {
	Flag   uint8 // IF, bits 0-4
	Enable uint8 // IE
}

// NewService returns a new Service with no pending or enabled interrupts.
func NewService() *Service {
	return &Service{}
}

// ReadIF returns the IF register, with the unused upper three bits read
// back as set.
func (s *Service) ReadIF() uint8 {
	return s.Flag | 0xE0
}

// WriteIF updates IF from a CPU write; only the low 5 bits are stored.
func (s *Service) WriteIF(v uint8) {
	s.Flag = v & 0x1F
}

// ReadIE returns the IE register.
func (s *Service) ReadIE() uint8 {
	return s.Enable
}

// WriteIE updates IE from a CPU write.
func (s *Service) WriteIE(v uint8) {
	s.Enable = v
}

// HasInterrupts reports whether any requested interrupt is also enabled,
// regardless of IME. The CPU uses this to wake from HALT.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request sets the given flag bit in IF.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Vector returns the vector of the highest-priority pending and enabled
// interrupt, clearing its IF bit in the process, or 0 if none is pending.
// Priority order is VBlank, LCD, Timer, Serial, Joypad, by increasing bit
// index.
func (s *Service) Vector() uint16 {
	pending := s.Enable & s.Flag & 0x1F
	if pending == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1) << i
		if pending&flag != 0 {
			s.Flag &^= flag
			return 0x0040 + uint16(i)*8
		}
	}
	return 0
}

var _ types.Stater = (*Service)(nil)

// Load implements types.Stater. Values are read in the order: Flag, Enable.
func (s *Service) Load(st *types.State) {
	s.Flag = st.Read8()
	s.Enable = st.Read8()
}

// Save implements types.Stater. Values are written in the order: Flag, Enable.
func (s *Service) Save(st *types.State) {
	st.Write8(s.Flag)
	st.Write8(s.Enable)
}
