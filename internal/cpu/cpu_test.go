package cpu

import (
	"testing"

	"github.com/sighmoe/rgb/internal/interrupts"
)

// fakeBus is a flat 64KiB RAM, enough to drive instruction sequences
// without needing the full bus wiring.
type fakeBus struct {
	mem [65536]uint8
}

func (b *fakeBus) Read(addr uint16) uint8         { return b.mem[addr] }
func (b *fakeBus) Write(addr uint16, value uint8) { b.mem[addr] = value }

func newTestCPU(program ...uint8) (*CPU, *fakeBus) {
	b := &fakeBus{}
	for i, v := range program {
		b.mem[i] = v
	}
	irq := interrupts.NewService()
	c := New(b, irq, nil)
	return c, b
}

func TestIncrementSetsHalfCarryAndZero(t *testing.T) {
	c, _ := newTestCPU(0x3C) // INC A
	c.A = 0xFF
	c.Step()
	if c.A != 0 {
		t.Fatalf("A = %#x, want 0", c.A)
	}
	if !c.isFlagSet(FlagZero) {
		t.Fatal("zero flag not set")
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Fatal("half carry flag not set")
	}
	if c.isFlagSet(FlagSubtract) {
		t.Fatal("subtract flag should be clear")
	}
}

func TestAddSetsCarry(t *testing.T) {
	c, _ := newTestCPU(0x80) // ADD A,B
	c.A = 0xF0
	c.B = 0x20
	c.Step()
	if c.A != 0x10 {
		t.Fatalf("A = %#x, want 0x10", c.A)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Fatal("carry flag not set")
	}
}

func TestPushPopRoundTrips(t *testing.T) {
	c, _ := newTestCPU(0xC5, 0xD1) // PUSH BC; POP DE
	c.SP = 0xFFFE
	c.B, c.C = 0x12, 0x34
	c.Step()
	c.Step()
	if c.D != 0x12 || c.E != 0x34 {
		t.Fatalf("DE = %02x%02x, want 1234", c.D, c.E)
	}
	if c.SP != 0xFFFE {
		t.Fatalf("SP = %#x, want 0xFFFE (balanced push/pop)", c.SP)
	}
}

func TestDAAAfterBCDAdd(t *testing.T) {
	// 0x15 + 0x27 in BCD should read 42, not the raw hex sum 0x3C.
	c, _ := newTestCPU(0x80, 0x27) // ADD A,B; DAA
	c.A = 0x15
	c.B = 0x27
	c.Step()
	c.Step()
	if c.A != 0x42 {
		t.Fatalf("A = %#x, want 0x42", c.A)
	}
}

func TestHaltWakesOnPendingInterruptWithIMEDisabled(t *testing.T) {
	c, _ := newTestCPU(0x76, 0x00) // HALT; NOP
	c.IME = false
	c.Step() // enters HALT, IME disabled, no pending interrupt yet -> ModeHaltDI
	if c.mode != ModeHaltDI {
		t.Fatalf("mode = %d, want ModeHaltDI", c.mode)
	}
	c.irq.Enable = interrupts.TimerFlag
	c.irq.Flag = interrupts.TimerFlag
	c.Step() // should notice the pending interrupt and resume
	if c.mode != ModeNormal {
		t.Fatalf("mode = %d, want ModeNormal after wake", c.mode)
	}
}

func TestEIDelaysInterruptByOneInstruction(t *testing.T) {
	c, _ := newTestCPU(0xFB, 0x00, 0x00) // EI; NOP; NOP
	c.SP = 0xFFFE
	c.irq.Enable = interrupts.TimerFlag
	c.irq.Flag = interrupts.TimerFlag

	c.Step() // EI: schedules IME for after the next instruction
	if c.IME {
		t.Fatal("IME should not be enabled immediately after EI")
	}
	c.Step() // NOP runs with the now-enabled IME, interrupt dispatches after it
	if c.PC != 0x0050 {
		t.Fatalf("PC = %#x, want 0x0050 (timer vector)", c.PC)
	}
	if c.IME {
		t.Fatal("IME should be cleared once the interrupt is dispatched")
	}
	if c.irq.Flag&interrupts.TimerFlag != 0 {
		t.Fatal("timer flag should have been cleared by dispatch")
	}
}

func TestAddSPSignedCostsFourMCycles(t *testing.T) {
	c, _ := newTestCPU(0xE8, 0x02) // ADD SP,2
	c.SP = 0x1000
	cycles := c.Step()
	if cycles != 16 {
		t.Fatalf("ADD SP,r8 returned %d cycles, want 16", cycles)
	}
	if c.SP != 0x1002 {
		t.Fatalf("SP = %#x, want 0x1002", c.SP)
	}
}

func TestLDHLSPSignedCostsThreeMCycles(t *testing.T) {
	c, _ := newTestCPU(0xF8, 0x02) // LD HL,SP+2
	c.SP = 0x1000
	cycles := c.Step()
	if cycles != 12 {
		t.Fatalf("LD HL,SP+r8 returned %d cycles, want 12", cycles)
	}
	if c.HL.Uint16() != 0x1002 {
		t.Fatalf("HL = %#x, want 0x1002", c.HL.Uint16())
	}
}

func TestIllegalOpcodeExecutesAsFourCycleNOP(t *testing.T) {
	c, _ := newTestCPU(0xD3, 0x00) // disallowed opcode; NOP
	pc := c.PC
	cycles := c.Step()
	if cycles != 4 {
		t.Fatalf("illegal opcode step returned %d cycles, want 4", cycles)
	}
	if c.PC != pc+1 {
		t.Fatalf("PC = %#x, want %#x (advanced past the illegal opcode)", c.PC, pc+1)
	}
	if !c.loggedIllegal[0xD3] {
		t.Fatal("illegal opcode should be recorded so it only logs once")
	}
}
