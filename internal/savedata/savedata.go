// Package savedata persists battery-backed cartridge RAM to disk
// between sessions: a brotli-compressed, xxhash-checksummed snapshot
// written atomically so a crash mid-write never corrupts the previous
// save. Only the RAM bytes are saved; MBC3 RTC registers are not.
package savedata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"

	"github.com/sighmoe/rgb/internal/cartridge"
)

const magic = "RGBSAVE1"

// Path returns the save file path for a ROM title under dir.
func Path(dir, title string) string {
	return filepath.Join(dir, title+".sav")
}

// Save compresses cart's battery RAM and writes it to path, replacing
// any existing file only once the new one is fully written.
func Save(path string, cart cartridge.Cartridge) error {
	if !cart.Header().CartridgeType.HasBattery() {
		return nil
	}
	raw := cart.RAM()
	if raw == nil {
		return nil
	}

	compressed, err := cbrotli.Encode(raw, cbrotli.WriterOptions{Quality: 9})
	if err != nil {
		return fmt.Errorf("savedata: compress: %w", err)
	}
	checksum := xxhash.Sum64(raw)

	var buf bytes.Buffer
	buf.WriteString(magic)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(raw)))
	buf.Write(lenBuf[:])
	var sumBuf [8]byte
	binary.LittleEndian.PutUint64(sumBuf[:], checksum)
	buf.Write(sumBuf[:])
	buf.Write(compressed)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("savedata: write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("savedata: rename: %w", err)
	}
	return nil
}

// Load reads path and restores it into cart's battery RAM. A missing
// file is not an error: it means the title has never been saved.
func Load(path string, cart cartridge.Cartridge) error {
	if !cart.Header().CartridgeType.HasBattery() {
		return nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("savedata: read: %w", err)
	}
	if len(data) < len(magic)+12 || string(data[:len(magic)]) != magic {
		return fmt.Errorf("savedata: %s: not a save file", path)
	}
	data = data[len(magic):]
	wantLen := binary.LittleEndian.Uint32(data[:4])
	wantSum := binary.LittleEndian.Uint64(data[4:12])
	data = data[12:]

	raw, err := cbrotli.Decode(data)
	if err != nil {
		return fmt.Errorf("savedata: decompress: %w", err)
	}
	if uint32(len(raw)) != wantLen {
		return fmt.Errorf("savedata: %s: length mismatch", path)
	}
	if xxhash.Sum64(raw) != wantSum {
		return fmt.Errorf("savedata: %s: checksum mismatch", path)
	}
	cart.LoadRAM(raw)
	return nil
}
