package cpu

func init() {
	// 0x40-0x7F: LD r,r' for every (dst, src) pair except 0x76 (HALT,
	// handled in control.go) which falls in dst=6,src=6's slot.
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			dst, src := dst, src
			opcode := 0x40 + dst<<3 + src
			switch {
			case dst == 6 && src == 6:
				continue // HALT
			case dst == 6:
				DefineInstruction(opcode, "LD (HL),r", func(c *CPU) {
					c.writeByte(c.HL.Uint16(), *c.registerIndex(src))
				})
			case src == 6:
				DefineInstruction(opcode, "LD r,(HL)", func(c *CPU) {
					*c.registerIndex(dst) = c.readByte(c.HL.Uint16())
				})
			default:
				DefineInstruction(opcode, "LD r,r'", func(c *CPU) {
					*c.registerIndex(dst) = *c.registerIndex(src)
				})
			}
		}
	}

	// 0x06,0x0E,...: LD r,d8 and LD (HL),d8.
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		opcode := 0x06 + dst<<3
		if dst == 6 {
			DefineInstruction(opcode, "LD (HL),d8", func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.readOperand())
			})
			continue
		}
		DefineInstruction(opcode, "LD r,d8", func(c *CPU) {
			*c.registerIndex(dst) = c.readOperand()
		})
	}

	DefineInstruction(0x01, "LD BC,d16", func(c *CPU) { c.BC.SetUint16(c.readOperand16()) })
	DefineInstruction(0x11, "LD DE,d16", func(c *CPU) { c.DE.SetUint16(c.readOperand16()) })
	DefineInstruction(0x21, "LD HL,d16", func(c *CPU) { c.HL.SetUint16(c.readOperand16()) })
	DefineInstruction(0x31, "LD SP,d16", func(c *CPU) { c.SP = c.readOperand16() })

	DefineInstruction(0x02, "LD (BC),A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) })
	DefineInstruction(0x12, "LD (DE),A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) })
	DefineInstruction(0x22, "LD (HL+),A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-),A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x0A, "LD A,(BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A,(DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) })
	DefineInstruction(0x2A, "LD A,(HL+)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x3A, "LD A,(HL-)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	DefineInstruction(0x08, "LD (a16),SP", func(c *CPU) {
		addr := c.readOperand16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})
	DefineInstruction(0xEA, "LD (a16),A", func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })
	DefineInstruction(0xFA, "LD A,(a16)", func(c *CPU) { c.A = c.readByte(c.readOperand16()) })

	DefineInstruction(0xE0, "LDH (a8),A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.readOperand()), c.A) })
	DefineInstruction(0xF0, "LDH A,(a8)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.readOperand())) })
	DefineInstruction(0xE2, "LD (C),A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	DefineInstruction(0xF2, "LD A,(C)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })

	DefineInstruction(0xF9, "LD SP,HL", func(c *CPU) { c.SP = c.HL.Uint16(); c.tick4() })
	DefineInstruction(0xF8, "LD HL,SP+r8", func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
		c.tick4()
	})
}
