package cartridge

import (
	"time"

	"github.com/sighmoe/rgb/internal/types"
)

// rtc is the MBC3 real-time clock: seconds/minutes/hours/day counters plus
// a latched snapshot exposed to the CPU through RTC registers 0x08-0x0C.
type rtc struct {
	seconds, minutes, hours   uint8
	daysLower, daysHighAndCtl uint8

	latchedSeconds, latchedMinutes, latchedHours uint8
	latchedDaysLower, latchedDaysHighAndCtl      uint8

	register       uint8
	latchFlagValue uint8
	lastUpdate     time.Time
}

func newRTC() *rtc {
	return &rtc{lastUpdate: time.Now()}
}

// advance brings the clock's counters up to the current wall-clock time,
// provided the clock halt bit (bit 6 of DaysHighAndCtl) is clear.
func (r *rtc) advance() {
	if r.daysHighAndCtl>>6&1 != 0 {
		return
	}
	delta := time.Since(r.lastUpdate)
	if delta < time.Second {
		return
	}
	r.lastUpdate = time.Now()

	deltaSeconds := int(delta.Seconds())
	var days uint32

	r.seconds += uint8(deltaSeconds % 60)
	if r.seconds >= 60 {
		r.seconds -= 60
		r.minutes++
	}
	deltaSeconds /= 60
	r.minutes += uint8(deltaSeconds % 60)
	if r.minutes >= 60 {
		r.minutes -= 60
		r.hours++
	}
	deltaSeconds /= 60
	r.hours += uint8(deltaSeconds % 24)
	if r.hours >= 24 {
		r.hours -= 24
		days++
	}
	deltaSeconds /= 24
	days += uint32(deltaSeconds)
	days += uint32(r.daysLower)
	days += uint32(r.daysHighAndCtl&0x1) << 8

	if days >= 512 {
		days %= 512
		r.daysHighAndCtl ^= 1 << 7 // day counter carry
	}
	r.daysLower = uint8(days)
	r.daysHighAndCtl &= 0xFE
	if days >= 256 {
		r.daysHighAndCtl |= 1
	}
}

func (r *rtc) latch() {
	r.advance()
	r.latchedSeconds = r.seconds
	r.latchedMinutes = r.minutes
	r.latchedHours = r.hours
	r.latchedDaysLower = r.daysLower
	r.latchedDaysHighAndCtl = r.daysHighAndCtl
}

// mbc3 implements cartridge types 0x0F-0x13: 7-bit ROM bank register, up
// to 4 RAM banks or the RTC register file muxed over 0xA000-0xBFFF, and
// RTC latch-on-0-then-1 write semantics at 0x6000-0x7FFF.
type mbc3 struct {
	rom     []byte
	romBank uint32

	ram        []byte
	ramBank    int32 // -1 selects the RTC register file instead of a RAM bank
	ramEnabled bool

	hasRTC     bool
	rtcEnabled bool
	clock      *rtc

	header Header
}

func newMBC3(rom []byte, header Header) *mbc3 {
	return &mbc3{
		rom:     rom,
		romBank: 1,
		ram:     make([]byte, header.RAMSize),
		hasRTC:  header.CartridgeType == MBC3TIMERBATT || header.CartridgeType == MBC3TIMERRAMBATT,
		clock:   newRTC(),
		header:  header,
	}
}

func (m *mbc3) Header() Header { return m.header }

func (m *mbc3) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address]
	case address < 0x8000:
		off := uint32(address-0x4000) + m.romBank*0x4000
		if int(off) >= len(m.rom) {
			return 0xFF
		}
		return m.rom[off]
	case address >= 0xA000 && address < 0xC000:
		switch {
		case m.ramBank >= 0:
			if !m.ramEnabled {
				return 0xFF
			}
			return m.ram[uint32(m.ramBank)*0x2000+uint32(address&0x1FFF)]
		case m.hasRTC && m.rtcEnabled:
			switch m.clock.register {
			case 0x08:
				return m.clock.latchedSeconds
			case 0x09:
				return m.clock.latchedMinutes
			case 0x0A:
				return m.clock.latchedHours
			case 0x0B:
				return m.clock.latchedDaysLower
			case 0x0C:
				return m.clock.latchedDaysHighAndCtl
			}
			return 0xFF
		default:
			return 0xFF
		}
	}
	return 0xFF
}

func (m *mbc3) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		enable := value&0x0F == 0x0A
		switch m.header.CartridgeType {
		case MBC3RAM, MBC3RAMBATT:
			m.ramEnabled = enable
		case MBC3TIMERBATT:
			m.rtcEnabled = enable
		case MBC3TIMERRAMBATT:
			m.ramEnabled = enable
			m.rtcEnabled = enable
		}
	case address < 0x4000:
		bank := uint32(value) & 0x7F
		if bank == 0 {
			bank = 1
		}
		if banks := uint32(len(m.rom)) / 0x4000; banks > 0 {
			bank %= banks
			if bank == 0 {
				bank = 1
			}
		}
		m.romBank = bank
	case address < 0x6000:
		switch {
		case value >= 0x08 && value <= 0x0C:
			if m.hasRTC && m.rtcEnabled {
				m.clock.register = value
				m.ramBank = -1
			}
		case value <= 0x03 && m.ramEnabled:
			bank := int32(value & 0x03)
			if len(m.ram) == 0 {
				bank = 0
			} else if banks := int32(len(m.ram) / 0x2000); int(bank)*0x2000 >= len(m.ram) && banks > 0 {
				bank %= banks
			}
			m.ramBank = bank
		}
	case address < 0x8000:
		if m.hasRTC {
			if m.clock.latchFlagValue == 0x00 && value == 0x01 {
				m.clock.latch()
			}
			m.clock.latchFlagValue = value
		}
	case address >= 0xA000 && address < 0xC000:
		switch {
		case m.ramBank >= 0:
			if m.ramEnabled {
				m.ram[uint32(m.ramBank)*0x2000+uint32(address&0x1FFF)] = value
			}
		case m.hasRTC && m.rtcEnabled:
			switch m.clock.register {
			case 0x08:
				m.clock.seconds = value & 0x3F
			case 0x09:
				m.clock.minutes = value & 0x3F
			case 0x0A:
				m.clock.hours = value & 0x1F
			case 0x0B:
				m.clock.daysLower = value
			case 0x0C:
				m.clock.daysHighAndCtl = value & 0xC1
			}
		}
	}
}

func (m *mbc3) RAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *mbc3) LoadRAM(data []byte) {
	copy(m.ram, data)
}

var _ types.Stater = (*mbc3)(nil)

// Load implements types.Stater. Values are read in the order: romBank,
// ram, ramBank, ramEnabled, rtcEnabled, then the full rtc register file.
func (m *mbc3) Load(s *types.State) {
	m.romBank = s.Read32()
	s.ReadData(m.ram)
	m.ramBank = int32(s.Read32())
	m.ramEnabled = s.ReadBool()
	m.rtcEnabled = s.ReadBool()

	m.clock.seconds = s.Read8()
	m.clock.minutes = s.Read8()
	m.clock.hours = s.Read8()
	m.clock.daysLower = s.Read8()
	m.clock.daysHighAndCtl = s.Read8()
	m.clock.latchedSeconds = s.Read8()
	m.clock.latchedMinutes = s.Read8()
	m.clock.latchedHours = s.Read8()
	m.clock.latchedDaysLower = s.Read8()
	m.clock.latchedDaysHighAndCtl = s.Read8()
	m.clock.register = s.Read8()
	m.clock.latchFlagValue = s.Read8()
	m.clock.lastUpdate = time.Now()
}

// Save implements types.Stater, in the same order Load reads.
func (m *mbc3) Save(s *types.State) {
	s.Write32(m.romBank)
	s.WriteData(m.ram)
	s.Write32(uint32(m.ramBank))
	s.WriteBool(m.ramEnabled)
	s.WriteBool(m.rtcEnabled)

	s.Write8(m.clock.seconds)
	s.Write8(m.clock.minutes)
	s.Write8(m.clock.hours)
	s.Write8(m.clock.daysLower)
	s.Write8(m.clock.daysHighAndCtl)
	s.Write8(m.clock.latchedSeconds)
	s.Write8(m.clock.latchedMinutes)
	s.Write8(m.clock.latchedHours)
	s.Write8(m.clock.latchedDaysLower)
	s.Write8(m.clock.latchedDaysHighAndCtl)
	s.Write8(m.clock.register)
	s.Write8(m.clock.latchFlagValue)
}
