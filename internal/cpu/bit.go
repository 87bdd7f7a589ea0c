package cpu

// testBit sets Z if bit position of value is clear. N is reset, H is
// set, C is untouched.
func (c *CPU) testBit(value, position uint8) {
	c.shouldZeroFlag(value & (1 << position))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

func setBit(value, position uint8) uint8   { return value | 1<<position }
func clearBit(value, position uint8) uint8 { return value &^ (1 << position) }

func init() {
	for position := uint8(0); position < 8; position++ {
		position := position
		for src := uint8(0); src < 8; src++ {
			src := src
			if src == 6 {
				DefineInstructionCB(0x40+position<<3+6, "BIT n,(HL)", func(c *CPU) {
					c.testBit(c.readByte(c.HL.Uint16()), position)
				})
				DefineInstructionCB(0x80+position<<3+6, "SET n,(HL)", func(c *CPU) {
					c.writeByte(c.HL.Uint16(), setBit(c.readByte(c.HL.Uint16()), position))
				})
				DefineInstructionCB(0xC0+position<<3+6, "RES n,(HL)", func(c *CPU) {
					c.writeByte(c.HL.Uint16(), clearBit(c.readByte(c.HL.Uint16()), position))
				})
				continue
			}
			DefineInstructionCB(0x40+position<<3+src, "BIT n,r", func(c *CPU) {
				c.testBit(*c.registerIndex(src), position)
			})
			DefineInstructionCB(0x80+position<<3+src, "SET n,r", func(c *CPU) {
				r := c.registerIndex(src)
				*r = setBit(*r, position)
			})
			DefineInstructionCB(0xC0+position<<3+src, "RES n,r", func(c *CPU) {
				r := c.registerIndex(src)
				*r = clearBit(*r, position)
			})
		}
	}
}
