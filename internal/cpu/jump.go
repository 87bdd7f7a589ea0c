package cpu

// getFlagCondition evaluates the cc field of a conditional branch
// opcode: bits 3-4 select NZ/Z/NC/C.
func (c *CPU) getFlagCondition(opcode uint8) bool {
	switch opcode >> 3 & 0x3 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}

func (c *CPU) jumpAbsolute(condition bool) {
	addr := c.readOperand16()
	if condition {
		c.PC = addr
		c.tick4()
	}
}

func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.tick4()
	}
}

func (c *CPU) call(condition bool) {
	addr := c.readOperand16()
	if condition {
		c.tick4()
		c.push(uint8(c.PC>>8), uint8(c.PC))
		c.PC = addr
	}
}

func (c *CPU) ret(condition bool) {
	if condition {
		var h, l uint8
		c.pop(&h, &l)
		c.PC = uint16(h)<<8 | uint16(l)
		c.tick4()
	}
}

func (c *CPU) rst(addr uint16) {
	c.tick4()
	c.push(uint8(c.PC>>8), uint8(c.PC))
	c.PC = addr
}

func init() {
	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(true) })
	DefineInstruction(0xE9, "JP HL", func(c *CPU) { c.PC = c.HL.Uint16() })
	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(true) })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(true) })
	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret(true) })
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.ret(true)
		c.IME = true
	})

	for _, cc := range []uint8{0xC2, 0xCA, 0xD2, 0xDA} {
		cc := cc
		DefineInstruction(cc, "JP cc,a16", func(c *CPU) { c.jumpAbsolute(c.getFlagCondition(cc)) })
	}
	for _, cc := range []uint8{0x20, 0x28, 0x30, 0x38} {
		cc := cc
		DefineInstruction(cc, "JR cc,r8", func(c *CPU) { c.jumpRelative(c.getFlagCondition(cc)) })
	}
	for _, cc := range []uint8{0xC4, 0xCC, 0xD4, 0xDC} {
		cc := cc
		DefineInstruction(cc, "CALL cc,a16", func(c *CPU) { c.call(c.getFlagCondition(cc)) })
	}
	for _, cc := range []uint8{0xC0, 0xC8, 0xD0, 0xD8} {
		cc := cc
		DefineInstruction(cc, "RET cc", func(c *CPU) {
			c.ret(c.getFlagCondition(cc))
			c.tick4()
		})
	}
	for n := uint8(0); n < 8; n++ {
		n := n
		DefineInstruction(0xC7+n<<3, "RST", func(c *CPU) { c.rst(uint16(n) * 8) })
	}
}
