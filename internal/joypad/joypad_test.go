package joypad

import (
	"testing"

	"github.com/sighmoe/rgb/internal/interrupts"
)

func TestReadP1DefaultsToNoneSelectedNonePressed(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	if got := s.ReadP1(); got != 0xFF {
		t.Fatalf("P1 = %#x, want 0xFF", got)
	}
}

func TestPressExposedLineReadsLow(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.WriteP1(0xDF) // select action buttons (bit 5 = 0)
	s.Press(ButtonA)
	if got := s.ReadP1(); got&0x01 != 0 {
		t.Fatalf("P1 bit0 = %#x, want pressed (0)", got)
	}
}

func TestPressUnselectedLineDoesNotShow(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.WriteP1(0xEF) // select direction keys only (bit 4 = 0)
	s.Press(ButtonA)
	if got := s.ReadP1(); got&0x01 == 0 {
		t.Fatal("action button line should not be exposed when direction keys are selected")
	}
}

func TestPressRequestsInterruptOnFallingEdge(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.WriteP1(0xDF) // select action buttons
	s.Press(ButtonA)
	if irq.Flag&interrupts.JoypadFlag == 0 {
		t.Fatal("expected joypad interrupt on press")
	}
}

func TestReleaseDoesNotRequestInterrupt(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.WriteP1(0xDF)
	s.Press(ButtonA)
	irq.Flag = 0
	s.Release(ButtonA)
	if irq.Flag&interrupts.JoypadFlag != 0 {
		t.Fatal("release should never trigger a falling edge")
	}
}
