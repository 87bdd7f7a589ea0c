package cpu

import "github.com/sighmoe/rgb/internal/types"

func (c *CPU) rotateLeft(n uint8) uint8 {
	carry := n & types.Bit7
	result := n<<1 | carry>>7
	c.setFlags(result == 0, false, false, carry == types.Bit7)
	return result
}

func (c *CPU) rotateRight(n uint8) uint8 {
	carry := n & types.Bit0
	result := n>>1 | carry<<7
	c.setFlags(result == 0, false, false, carry == types.Bit0)
	return result
}

func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n << 1
	if c.isFlagSet(FlagCarry) {
		result |= types.Bit0
	}
	c.setFlags(result == 0, false, false, n&types.Bit7 == types.Bit7)
	return result
}

func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n >> 1
	if c.isFlagSet(FlagCarry) {
		result |= types.Bit7
	}
	c.setFlags(result == 0, false, false, n&types.Bit0 == types.Bit0)
	return result
}

func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	result := n << 1
	c.setFlags(result == 0, false, false, n&types.Bit7 == types.Bit7)
	return result
}

func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	result := n>>1 | n&types.Bit7
	c.setFlags(result == 0, false, false, n&types.Bit0 == types.Bit0)
	return result
}

func (c *CPU) shiftRightLogical(n uint8) uint8 {
	result := n >> 1
	c.setFlags(result == 0, false, false, n&types.Bit0 == types.Bit0)
	return result
}

func (c *CPU) swap(n uint8) uint8 {
	result := n<<4 | n>>4
	c.setFlags(result == 0, false, false, false)
	return result
}

// rlca/rrca/rla/rra are the unprefixed accumulator rotates. Unlike
// their CB-prefixed r counterparts they always clear the zero flag.
func (c *CPU) rlca() {
	carry := c.A & types.Bit7
	c.A = c.A<<1 | carry>>7
	c.setFlags(false, false, false, carry == types.Bit7)
}

func (c *CPU) rrca() {
	carry := c.A & types.Bit0
	c.A = c.A>>1 | carry<<7
	c.setFlags(false, false, false, carry == types.Bit0)
}

func (c *CPU) rla() {
	carry := c.A & types.Bit7
	c.A <<= 1
	if c.isFlagSet(FlagCarry) {
		c.A |= types.Bit0
	}
	c.setFlags(false, false, false, carry == types.Bit7)
}

func (c *CPU) rra() {
	carry := c.A & types.Bit0
	c.A >>= 1
	if c.isFlagSet(FlagCarry) {
		c.A |= types.Bit7
	}
	c.setFlags(false, false, false, carry == types.Bit0)
}

func init() {
	DefineInstruction(0x07, "RLCA", func(c *CPU) { c.rlca() })
	DefineInstruction(0x0F, "RRCA", func(c *CPU) { c.rrca() })
	DefineInstruction(0x17, "RLA", func(c *CPU) { c.rla() })
	DefineInstruction(0x1F, "RRA", func(c *CPU) { c.rra() })

	type cbOp struct {
		base uint8
		fn   func(*CPU, uint8) uint8
	}
	ops := []cbOp{
		{0x00, (*CPU).rotateLeft},
		{0x08, (*CPU).rotateRight},
		{0x10, (*CPU).rotateLeftThroughCarry},
		{0x18, (*CPU).rotateRightThroughCarry},
		{0x20, (*CPU).shiftLeftArithmetic},
		{0x28, (*CPU).shiftRightArithmetic},
		{0x30, (*CPU).swap},
		{0x38, (*CPU).shiftRightLogical},
	}
	for _, op := range ops {
		op := op
		for src := uint8(0); src < 8; src++ {
			src := src
			if src == 6 {
				DefineInstructionCB(op.base+6, "(HL)", func(c *CPU) {
					c.writeByte(c.HL.Uint16(), op.fn(c, c.readByte(c.HL.Uint16())))
				})
				continue
			}
			DefineInstructionCB(op.base+src, "r", func(c *CPU) {
				r := c.registerIndex(src)
				*r = op.fn(c, *r)
			})
		}
	}
}
