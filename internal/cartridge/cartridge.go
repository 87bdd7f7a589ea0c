// Package cartridge implements the ROM image's bank-switching logic: a
// plain fixed ROM for cartridge type 0x00, and the MBC3 controller (with
// its RAM banking and real-time clock) for the rest.
package cartridge

import (
	"github.com/sighmoe/rgb/internal/config"
	"github.com/sighmoe/rgb/internal/types"
	"github.com/sirupsen/logrus"
)

// Cartridge is anything the bus can read ROM/RAM addresses from and write
// bank-select and RAM addresses to.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() Header

	// RAM returns the cartridge's battery-backed RAM, for persistence.
	// Returns nil if the cartridge has no RAM.
	RAM() []byte
	// LoadRAM restores previously persisted battery RAM.
	LoadRAM(data []byte)

	types.Stater
}

// New parses rom's header and returns the Cartridge implementation
// appropriate for its cartridge type byte. logger may be nil, in which
// case the standard logrus logger is used.
func New(rom []byte, logger logrus.FieldLogger) (Cartridge, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if len(rom) < 0x150 {
		return nil, config.NewIOError(errShortROM)
	}
	header, err := parseHeader(rom[0x100:0x150])
	if err != nil {
		return nil, config.NewIOError(err)
	}

	logger.WithFields(logrus.Fields{
		"title": header.Title,
		"type":  header.CartridgeType,
		"rom":   header.ROMSize,
		"ram":   header.RAMSize,
	}).Info("cartridge: loaded")
	if !header.ChecksumValid {
		logger.Warnf("cartridge: header checksum mismatch (got %#02x), loading anyway", header.HeaderChecksum)
	}

	switch header.CartridgeType {
	case ROM:
		return newROMOnly(rom, header), nil
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return newMBC3(rom, header), nil
	default:
		return nil, config.NewUnsupportedCartridgeError(uint8(header.CartridgeType))
	}
}

var errShortROM = shortROMError{}

type shortROMError struct{}

func (shortROMError) Error() string { return "cartridge: ROM image shorter than header region" }
