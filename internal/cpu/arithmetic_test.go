package cpu

import "testing"

// TestAddEnumeratesAllOperandPairs exhaustively checks ADD A,B against an
// independently-derived expected result and flag set, rather than relying
// on a handful of hand-picked cases to catch a half-carry/carry mistake.
func TestAddEnumeratesAllOperandPairs(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c, _ := newTestCPU(0x80) // ADD A,B
			c.A, c.B = uint8(a), uint8(b)
			c.F = 0
			c.Step()

			wantSum := uint8(a + b)
			wantZero := wantSum == 0
			wantHalf := (a&0xF)+(b&0xF) > 0xF
			wantCarry := a+b > 0xFF

			if c.A != wantSum {
				t.Fatalf("ADD %#x+%#x: A = %#x, want %#x", a, b, c.A, wantSum)
			}
			if c.isFlagSet(FlagZero) != wantZero {
				t.Fatalf("ADD %#x+%#x: zero flag = %v, want %v", a, b, c.isFlagSet(FlagZero), wantZero)
			}
			if c.isFlagSet(FlagSubtract) {
				t.Fatalf("ADD %#x+%#x: subtract flag should be clear", a, b)
			}
			if c.isFlagSet(FlagHalfCarry) != wantHalf {
				t.Fatalf("ADD %#x+%#x: half carry = %v, want %v", a, b, c.isFlagSet(FlagHalfCarry), wantHalf)
			}
			if c.isFlagSet(FlagCarry) != wantCarry {
				t.Fatalf("ADD %#x+%#x: carry = %v, want %v", a, b, c.isFlagSet(FlagCarry), wantCarry)
			}
		}
	}
}

// TestSubEnumeratesAllOperandPairs is the SUB A,B analog of
// TestAddEnumeratesAllOperandPairs.
func TestSubEnumeratesAllOperandPairs(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c, _ := newTestCPU(0x90) // SUB A,B
			c.A, c.B = uint8(a), uint8(b)
			c.F = 0
			c.Step()

			wantDiff := uint8(a - b)
			wantZero := wantDiff == 0
			wantHalf := a&0xF < b&0xF
			wantCarry := a < b

			if c.A != wantDiff {
				t.Fatalf("SUB %#x-%#x: A = %#x, want %#x", a, b, c.A, wantDiff)
			}
			if c.isFlagSet(FlagZero) != wantZero {
				t.Fatalf("SUB %#x-%#x: zero flag = %v, want %v", a, b, c.isFlagSet(FlagZero), wantZero)
			}
			if !c.isFlagSet(FlagSubtract) {
				t.Fatalf("SUB %#x-%#x: subtract flag should be set", a, b)
			}
			if c.isFlagSet(FlagHalfCarry) != wantHalf {
				t.Fatalf("SUB %#x-%#x: half carry = %v, want %v", a, b, c.isFlagSet(FlagHalfCarry), wantHalf)
			}
			if c.isFlagSet(FlagCarry) != wantCarry {
				t.Fatalf("SUB %#x-%#x: carry = %v, want %v", a, b, c.isFlagSet(FlagCarry), wantCarry)
			}
		}
	}
}
