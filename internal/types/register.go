package types

// Register holds an 8-bit CPU register value.
type Register = uint8

// RegisterPair aliases two 8-bit registers as a single 16-bit value, high
// byte first, matching the AF/BC/DE/HL pairing of the real register file.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the pair as a big-endian uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 writes value into the pair, high byte first.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers is the CPU's register file: seven 8-bit registers plus the
// flags register F, aliased into four 16-bit pairs.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// Init wires BC/DE/HL/AF to alias the individual 8-bit registers. Must be
// called once after a Registers value is constructed.
func (r *Registers) Init() {
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	r.AF = &RegisterPair{&r.A, &r.F}
}
