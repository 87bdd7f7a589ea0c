package cpu

// Instruction is one entry of the base or CB-prefixed opcode table: a
// name for diagnostics and the function that executes it.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// InstructionSet holds the 256 unprefixed opcodes.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 CB-prefixed opcodes.
var InstructionSetCB [256]Instruction

// DefineInstruction registers fn as opcode's handler in the base
// table.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

// DefineInstructionCB registers fn as opcode's handler in the
// CB-prefixed table.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// disallowedOpcode is used for the eleven Z80 opcode slots that have no
// Sharp LR35902 encoding (the 0xDx/0xEx/0xFx IN/OUT/EX/exchange-family
// slots listed in init below). Real hardware locks up on these; here
// they run as a 4-T-cycle NOP (the opcode fetch's M-cycle) instead, so
// a corrupt or malicious instruction stream doesn't bring the whole
// process down; each one is logged the first time it's hit and
// silently eaten after that.
func disallowedOpcode(opcode uint8) func(*CPU) {
	return func(c *CPU) {
		if !c.loggedIllegal[opcode] {
			c.loggedIllegal[opcode] = true
			c.logger.Warnf("cpu: illegal opcode %s executed, treating as NOP", opcodeName(opcode))
		}
	}
}

func opcodeName(opcode uint8) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{'0', 'x', hex[opcode>>4], hex[opcode&0xF]})
}

func init() {
	for _, op := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		DefineInstruction(op, "disallowed", disallowedOpcode(op))
	}
}
