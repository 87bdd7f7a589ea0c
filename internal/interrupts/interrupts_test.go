package interrupts

import "testing"

func TestVectorPicksHighestPriorityAndClearsIF(t *testing.T) {
	s := NewService()
	s.Enable = VBlankFlag | TimerFlag
	s.Flag = TimerFlag | JoypadFlag // VBlank not pending, Joypad not enabled

	vector := s.Vector()
	if vector != 0x0040+2*8 { // timer is the only pending+enabled source
		t.Fatalf("vector = %#x, want the timer vector", vector)
	}
	if s.Flag&TimerFlag != 0 {
		t.Fatal("Vector should clear the dispatched flag bit")
	}
	if s.Flag&JoypadFlag == 0 {
		t.Fatal("Vector should not touch flags that weren't dispatched")
	}
}

func TestVectorPrefersLowerBitIndexOnTie(t *testing.T) {
	s := NewService()
	s.Enable = VBlankFlag | LCDFlag | TimerFlag
	s.Flag = LCDFlag | TimerFlag

	if got := s.Vector(); got != 0x0040+1*8 { // LCD (bit 1) beats Timer (bit 2)
		t.Fatalf("vector = %#x, want the LCD vector", got)
	}
}

func TestVectorReturnsZeroWithNothingPending(t *testing.T) {
	s := NewService()
	s.Enable = 0x1F
	if got := s.Vector(); got != 0 {
		t.Fatalf("vector = %#x, want 0", got)
	}
}

func TestHasInterruptsRequiresBothEnableAndFlag(t *testing.T) {
	s := NewService()
	s.Flag = TimerFlag
	if s.HasInterrupts() {
		t.Fatal("HasInterrupts should be false until the interrupt is also enabled")
	}
	s.Enable = TimerFlag
	if !s.HasInterrupts() {
		t.Fatal("HasInterrupts should be true once enabled and pending")
	}
}

func TestWriteIFMasksToLow5Bits(t *testing.T) {
	s := NewService()
	s.WriteIF(0xFF)
	if s.Flag != 0x1F {
		t.Fatalf("Flag = %#x, want 0x1F", s.Flag)
	}
	if got := s.ReadIF(); got != 0xFF {
		t.Fatalf("ReadIF = %#x, want 0xFF (unused bits read back as set)", got)
	}
}
