package cpu

import "github.com/sighmoe/rgb/internal/types"

// increment adds 1 to value. Z0H-, carry untouched.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.setFlags(result == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

// decrement subtracts 1 from value. Z1H-, carry untouched.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.setFlags(result == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return result
}

// incrementNN adds 1 to a 16-bit register pair, costing one M-cycle
// and leaving all flags untouched.
func (c *CPU) incrementNN(pair *types.RegisterPair) {
	pair.SetUint16(pair.Uint16() + 1)
	c.tick4()
}

// decrementNN subtracts 1 from a 16-bit register pair.
func (c *CPU) decrementNN(pair *types.RegisterPair) {
	pair.SetUint16(pair.Uint16() - 1)
	c.tick4()
}

// add adds a and b, optionally folding in the carry flag for ADC, and
// sets flags accordingly.
func (c *CPU) add(a, b uint8, withCarry bool) uint8 {
	carryIn := uint16(0)
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(b) + carryIn
	halfSum := uint16(a&0xF) + uint16(b&0xF) + carryIn
	c.setFlags(uint8(sum) == 0, false, halfSum > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub subtracts b from a, optionally folding in the carry flag for
// SBC, and sets flags accordingly.
func (c *CPU) sub(a, b uint8, withCarry bool) uint8 {
	carryIn := int16(0)
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	diff := int16(a) - int16(b) - carryIn
	halfDiff := int16(a&0xF) - int16(b&0xF) - carryIn
	c.setFlags(uint8(diff) == 0, true, halfDiff < 0, diff < 0)
	return uint8(diff)
}

// cp compares a against b without storing the result, the flags-only
// half of sub.
func (c *CPU) cp(a, b uint8) {
	c.sub(a, b, false)
}

func (c *CPU) and(a, b uint8) uint8 {
	result := a & b
	c.setFlags(result == 0, false, true, false)
	return result
}

func (c *CPU) or(a, b uint8) uint8 {
	result := a | b
	c.setFlags(result == 0, false, false, false)
	return result
}

func (c *CPU) xor(a, b uint8) uint8 {
	result := a ^ b
	c.setFlags(result == 0, false, false, false)
	return result
}

// addUint16 adds a and b as 16-bit values, used by ADD HL,rr and
// ADD HL,SP. Z is left untouched.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// addHLRR adds a 16-bit register pair into HL.
func (c *CPU) addHLRR(pair *types.RegisterPair) {
	c.HL.SetUint16(c.addUint16(c.HL.Uint16(), pair.Uint16()))
	c.tick4()
}

// addSPSigned computes SP + a signed 8-bit immediate, the shared
// arithmetic behind ADD SP,r8 and LD HL,SP+r8.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(value)))
	quirk := c.SP ^ uint16(int8(value)) ^ result
	c.setFlags(false, false, quirk&0x10 != 0, quirk&0x100 != 0)
	return result
}

// daa re-encodes A as binary-coded decimal after an 8-bit add/subtract,
// following the half-carry/carry flags left by that operation.
func (c *CPU) daa() {
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.clearFlag(FlagHalfCarry)
	c.shouldZeroFlag(c.A)
}

func (c *CPU) cpl() {
	c.A = ^c.A
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

func (c *CPU) scf() {
	c.setFlag(FlagCarry)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
}

func (c *CPU) ccf() {
	if c.isFlagSet(FlagCarry) {
		c.clearFlag(FlagCarry)
	} else {
		c.setFlag(FlagCarry)
	}
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
}

// aluOp is one of the eight ADD/ADC/SUB/SBC/AND/XOR/OR/CP operations
// selected by bits 3-5 of an 0x80-0xBF or 0xC6-0xFE opcode.
func (c *CPU) aluOp(op uint8, operand uint8) {
	switch op {
	case 0:
		c.A = c.add(c.A, operand, false)
	case 1:
		c.A = c.add(c.A, operand, true)
	case 2:
		c.A = c.sub(c.A, operand, false)
	case 3:
		c.A = c.sub(c.A, operand, true)
	case 4:
		c.A = c.and(c.A, operand)
	case 5:
		c.A = c.xor(c.A, operand)
	case 6:
		c.A = c.or(c.A, operand)
	case 7:
		c.cp(c.A, operand)
	}
}

var aluNames = [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

func init() {
	// 0x80-0xBF: ALU A,r for the 8 source operands, 8 operations.
	for op := uint8(0); op < 8; op++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x80 + op<<3 + src
			op, src := op, src
			if src == 6 {
				DefineInstruction(opcode, aluNames[op]+" A,(HL)", func(c *CPU) {
					c.aluOp(op, c.readByte(c.HL.Uint16()))
				})
				continue
			}
			DefineInstruction(opcode, aluNames[op]+" A,r", func(c *CPU) {
				c.aluOp(op, *c.registerIndex(src))
			})
		}
		opcode := 0xC6 + op<<3
		op := op
		DefineInstruction(opcode, aluNames[op]+" A,d8", func(c *CPU) {
			c.aluOp(op, c.readOperand())
		})
	}

	// INC/DEC r, (HL).
	for reg := uint8(0); reg < 8; reg++ {
		if reg == 6 {
			continue
		}
		reg := reg
		DefineInstruction(0x04+reg<<3, "INC r", func(c *CPU) {
			r := c.registerIndex(reg)
			*r = c.increment(*r)
		})
		DefineInstruction(0x05+reg<<3, "DEC r", func(c *CPU) {
			r := c.registerIndex(reg)
			*r = c.decrement(*r)
		})
	}
	DefineInstruction(0x34, "INC (HL)", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16())))
	})
	DefineInstruction(0x35, "DEC (HL)", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16())))
	})

	DefineInstruction(0x03, "INC BC", func(c *CPU) { c.incrementNN(c.BC) })
	DefineInstruction(0x0B, "DEC BC", func(c *CPU) { c.decrementNN(c.BC) })
	DefineInstruction(0x13, "INC DE", func(c *CPU) { c.incrementNN(c.DE) })
	DefineInstruction(0x1B, "DEC DE", func(c *CPU) { c.decrementNN(c.DE) })
	DefineInstruction(0x23, "INC HL", func(c *CPU) { c.incrementNN(c.HL) })
	DefineInstruction(0x2B, "DEC HL", func(c *CPU) { c.decrementNN(c.HL) })
	DefineInstruction(0x33, "INC SP", func(c *CPU) { c.SP++; c.tick4() })
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) { c.SP--; c.tick4() })

	DefineInstruction(0x09, "ADD HL,BC", func(c *CPU) { c.addHLRR(c.BC) })
	DefineInstruction(0x19, "ADD HL,DE", func(c *CPU) { c.addHLRR(c.DE) })
	DefineInstruction(0x29, "ADD HL,HL", func(c *CPU) { c.addHLRR(c.HL) })
	DefineInstruction(0x39, "ADD HL,SP", func(c *CPU) {
		c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.SP))
		c.tick4()
	})
	DefineInstruction(0xE8, "ADD SP,r8", func(c *CPU) {
		c.SP = c.addSPSigned()
		c.tick4()
		c.tick4()
	})

	DefineInstruction(0xC1, "POP BC", func(c *CPU) { c.pop(&c.B, &c.C) })
	DefineInstruction(0xD1, "POP DE", func(c *CPU) { c.pop(&c.D, &c.E) })
	DefineInstruction(0xE1, "POP HL", func(c *CPU) { c.pop(&c.H, &c.L) })
	DefineInstruction(0xF1, "POP AF", func(c *CPU) {
		c.pop(&c.A, &c.F)
		c.F &= 0xF0
	})
	DefineInstruction(0xC5, "PUSH BC", func(c *CPU) { c.tick4(); c.push(c.B, c.C) })
	DefineInstruction(0xD5, "PUSH DE", func(c *CPU) { c.tick4(); c.push(c.D, c.E) })
	DefineInstruction(0xE5, "PUSH HL", func(c *CPU) { c.tick4(); c.push(c.H, c.L) })
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU) { c.tick4(); c.push(c.A, c.F) })

	DefineInstruction(0x27, "DAA", func(c *CPU) { c.daa() })
	DefineInstruction(0x2F, "CPL", func(c *CPU) { c.cpl() })
	DefineInstruction(0x37, "SCF", func(c *CPU) { c.scf() })
	DefineInstruction(0x3F, "CCF", func(c *CPU) { c.ccf() })
}
