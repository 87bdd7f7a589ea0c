package cpu

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})

	DefineInstruction(0x10, "STOP", func(c *CPU) {
		c.mode = ModeStop
		if !c.hasInterrupts() {
			c.PC++
		}
	})

	DefineInstruction(0x76, "HALT", func(c *CPU) {
		switch {
		case c.IME:
			c.mode = ModeHalt
		case c.hasInterrupts():
			c.mode = ModeHaltBug
		default:
			c.mode = ModeHaltDI
		}
	})

	DefineInstruction(0xF3, "DI", func(c *CPU) { c.IME = false })

	// EI's enable takes effect only after the instruction following it
	// has executed, modeled by deferring IME=true to the next Step via
	// ModeEnableIME instead of setting it here.
	DefineInstruction(0xFB, "EI", func(c *CPU) {
		c.mode = ModeEnableIME
	})
}
