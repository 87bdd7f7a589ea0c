// Package cpu implements the Sharp LR35902 instruction set: the
// register file, flag semantics, the base and CB-prefixed opcode
// tables, and interrupt dispatch. A Step only counts the T-cycles a
// fetch/execute (or interrupt dispatch) consumes and returns that
// count; it does not tick any other component directly. The caller
// (a scheduler) is responsible for advancing the timer and PPU by the
// returned cycle count, so bus-access timing never has to interleave
// mid-instruction with the rest of the machine.
package cpu

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sighmoe/rgb/internal/interrupts"
	"github.com/sighmoe/rgb/internal/types"
)

// Bus is the memory interface the CPU reads instructions and operands
// through. internal/bus.Bus satisfies this.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

type mode uint8

const (
	ModeNormal mode = iota
	ModeHalt
	ModeStop
	ModeHaltBug
	ModeHaltDI
	ModeEnableIME
)

// CPU is the Sharp LR35902 core: program counter, stack pointer,
// register file, interrupt master enable, and the bus it executes
// against.
type CPU struct {
	PC uint16
	SP uint16
	types.Registers

	IME bool

	bus Bus
	irq *interrupts.Service

	mode mode

	Debug           bool
	DebugBreakpoint bool

	cycles uint8

	logger        logrus.FieldLogger
	loggedIllegal [256]bool
}

// New builds a CPU wired to bus and irq, logging through logger (which
// may be nil, in which case the standard logrus logger is used). PC
// starts at 0x0000 so a boot ROM overlay (if any) executes first;
// callers skipping the boot ROM should set PC to 0x0100 and seed the
// post-boot register state themselves.
func New(bus Bus, irq *interrupts.Service, logger logrus.FieldLogger) *CPU {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	c := &CPU{bus: bus, irq: irq, logger: logger}
	c.Registers.Init()
	return c
}

// registerIndex returns the 8-bit register addressed by a 3-bit
// register-field encoding, in opcode order B,C,D,E,H,L,(HL),A. Index 6
// ((HL)) has no direct register and must be special-cased by callers.
func (c *CPU) registerIndex(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("cpu: invalid register index %d", index))
}

func (c *CPU) registerName(reg *types.Register) string {
	switch reg {
	case &c.A:
		return "A"
	case &c.B:
		return "B"
	case &c.C:
		return "C"
	case &c.D:
		return "D"
	case &c.E:
		return "E"
	case &c.H:
		return "H"
	case &c.L:
		return "L"
	}
	return "?"
}

// tick4 accounts for one M-cycle (4 T-cycles) of bus activity.
func (c *CPU) tick4() {
	c.cycles += 4
}

// readOperand fetches the byte at PC and advances PC, costing one
// M-cycle.
func (c *CPU) readOperand() uint8 {
	c.tick4()
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

// readOperand16 fetches a little-endian 16-bit immediate.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return uint16(hi)<<8 | uint16(lo)
}

// readByte reads addr off the bus, costing one M-cycle.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tick4()
	return c.bus.Read(addr)
}

// writeByte writes value to addr, costing one M-cycle.
func (c *CPU) writeByte(addr uint16, value uint8) {
	c.tick4()
	c.bus.Write(addr, value)
}

// push writes h then l onto the stack, high byte first, each at its
// own M-cycle.
func (c *CPU) push(h, l uint8) {
	c.SP--
	c.writeByte(c.SP, h)
	c.SP--
	c.writeByte(c.SP, l)
}

// pop reads l then h off the stack.
func (c *CPU) pop(h, l *uint8) {
	*l = c.readByte(c.SP)
	c.SP++
	*h = c.readByte(c.SP)
	c.SP++
}

func (c *CPU) hasInterrupts() bool {
	return c.irq.Enable&c.irq.Flag&0x1F != 0
}

// Step executes one fetch/decode/execute cycle (or services a pending
// mode transition: HALT, STOP, the EI delay, or the HALT bug) and
// returns the number of T-cycles it consumed. Interrupt dispatch, when
// it fires, is folded into the returned count.
func (c *CPU) Step() uint8 {
	c.cycles = 0

	reqInt := false
	switch c.mode {
	case ModeNormal:
		c.execute(c.fetch())
		reqInt = c.IME && c.hasInterrupts()
	case ModeHalt, ModeStop:
		// The CPU idles, but the bus keeps moving; charge one M-cycle
		// per Step so the scheduler still advances the rest of the
		// machine while halted.
		c.tick4()
		reqInt = c.hasInterrupts()
	case ModeHaltDI:
		c.tick4()
		if c.hasInterrupts() {
			c.mode = ModeNormal
		}
	case ModeEnableIME:
		c.IME = true
		c.mode = ModeNormal
		c.execute(c.fetch())
		reqInt = c.IME && c.hasInterrupts()
	case ModeHaltBug:
		opcode := c.readOperand()
		c.PC--
		c.execute(opcode)
		c.mode = ModeNormal
		reqInt = c.IME && c.hasInterrupts()
	}

	if reqInt {
		c.dispatchInterrupt()
	}

	return c.cycles
}

// fetch reads the opcode at PC, honoring the LD B,B debug breakpoint
// idiom carried over from the teacher's table-driven dispatcher.
func (c *CPU) fetch() uint8 {
	opcode := c.readOperand()
	if c.Debug && opcode == 0x40 {
		c.DebugBreakpoint = true
	}
	return opcode
}

func (c *CPU) execute(opcode uint8) {
	if opcode == 0xCB {
		InstructionSetCB[c.readOperand()].fn(c)
		return
	}
	InstructionSet[opcode].fn(c)
}

// dispatchInterrupt pushes PC, jumps to the highest-priority pending
// vector, clears IME, and costs 5 M-cycles (20 T-cycles): one for each
// stack push plus three of internal dispatch overhead, matching real
// hardware's interrupt latency.
func (c *CPU) dispatchInterrupt() {
	if !c.IME {
		c.mode = ModeNormal
		return
	}

	c.SP--
	c.writeByte(c.SP, uint8(c.PC>>8))

	vector := c.irq.Vector()

	c.SP--
	c.writeByte(c.SP, uint8(c.PC))

	c.PC = vector
	c.IME = false

	c.tick4()
	c.tick4()
	c.tick4()

	c.mode = ModeNormal
}

var _ types.Stater = (*CPU)(nil)

// Load implements types.Stater.
func (c *CPU) Load(s *types.State) {
	c.PC = s.Read16()
	c.SP = s.Read16()
	c.A = s.Read8()
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.F = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.IME = s.ReadBool()
	c.mode = mode(s.Read8())
}

// Save implements types.Stater.
func (c *CPU) Save(s *types.State) {
	s.Write16(c.PC)
	s.Write16(c.SP)
	s.Write8(c.A)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.F)
	s.Write8(c.H)
	s.Write8(c.L)
	s.WriteBool(c.IME)
	s.Write8(uint8(c.mode))
}
