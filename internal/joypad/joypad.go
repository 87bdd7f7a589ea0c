// Package joypad implements the P1 button matrix register.
package joypad

import (
	"github.com/sighmoe/rgb/internal/interrupts"
	"github.com/sighmoe/rgb/internal/types"
)

// Button identifies one of the eight physical buttons.
type Button = uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
)

// State tracks which buttons are held and the P1 register's group
// selection, and raises the joypad interrupt on a 1-to-0 transition of
// any currently-selected input line.
//
//	Bit 7-6 - unused, read as 1
//	Bit 5   - P15 select button keys    (0=selected)
//	Bit 4   - P14 select direction keys (0=selected)
//	Bit 3   - P13 Down  or Start  (0=pressed, read-only)
//	Bit 2   - P12 Up    or Select (0=pressed, read-only)
//	Bit 1   - P11 Left  or B      (0=pressed, read-only)
//	Bit 0   - P10 Right or A     (0=pressed, read-only)
type State struct {
	pressed uint8 // bit i set: button i (ButtonA..ButtonDown) is held

	selectAction    bool // P1 bit 5 written 0
	selectDirection bool // P1 bit 4 written 0

	lastLines uint8 // low nibble last presented to the CPU, active-low

	irq *interrupts.Service
}

// New returns a new joypad State with no buttons held and both groups
// deselected.
func New(irq *interrupts.Service) *State {
	return &State{irq: irq, lastLines: 0x0F}
}

// ReadP1 returns the current P1 register value.
func (s *State) ReadP1() uint8 {
	v := 0xC0 | s.outputBits()
	if !s.selectAction {
		v |= types.Bit5
	}
	if !s.selectDirection {
		v |= types.Bit4
	}
	return v
}

// WriteP1 updates the group-selection bits from a CPU write and re-checks
// for a newly-exposed pressed line.
func (s *State) WriteP1(v uint8) {
	s.selectDirection = v&types.Bit4 == 0
	s.selectAction = v&types.Bit5 == 0
	s.refresh()
}

// outputBits computes the low nibble of P1: active-low lines for
// whichever groups are currently selected, ORed together as real
// hardware does when both groups are selected at once.
func (s *State) outputBits() uint8 {
	lines := uint8(0x0F)
	if s.selectDirection {
		lines &^= s.pressed >> 4 & 0x0F
	}
	if s.selectAction {
		lines &^= s.pressed & 0x0F
	}
	return lines
}

// refresh recomputes the exposed input lines and requests the joypad
// interrupt on any 1-to-0 transition.
func (s *State) refresh() {
	lines := s.outputBits()
	if fell := s.lastLines &^ lines; fell != 0 {
		s.irq.Request(interrupts.JoypadFlag)
	}
	s.lastLines = lines
}

// Press marks button as held and requests the joypad interrupt if doing
// so exposes a new falling edge on a currently-selected line.
func (s *State) Press(button Button) {
	s.pressed |= 1 << button
	s.refresh()
}

// Release marks button as no longer held.
func (s *State) Release(button Button) {
	s.pressed &^= 1 << button
	s.refresh()
}

// SetButtons replaces the full 8-bit held-button mask in one step (bit i
// set means button i, in the ButtonA..ButtonDown order, is held), used by
// the host input pump to apply a whole frame's input at once.
func (s *State) SetButtons(mask uint8) {
	s.pressed = mask
	s.refresh()
}

var _ types.Stater = (*State)(nil)

// Load implements types.Stater.
func (s *State) Load(st *types.State) {
	s.pressed = st.Read8()
	s.selectAction = st.ReadBool()
	s.selectDirection = st.ReadBool()
	s.lastLines = st.Read8()
}

// Save implements types.Stater.
func (s *State) Save(st *types.State) {
	st.Write8(s.pressed)
	st.WriteBool(s.selectAction)
	st.WriteBool(s.selectDirection)
	st.Write8(s.lastLines)
}
