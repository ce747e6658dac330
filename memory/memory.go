// Package memory implements the Apple 1's flat 64 KiB address space:
// a single byte-addressable array overlaid with per-address I/O hooks
// (for the keyboard and video magic addresses) and a configurable
// read-only ROM window.
package memory

import (
	"fmt"

	"github.com/schembri/apple1e/io"
)

// Size is the full 16 bit address space.
const Size = 1 << 16

// The reset vector lives at the top of the address space, inside ROM,
// and is only ever written by ResetVector, never by normal execution.
const (
	ResetVectorLow  = uint16(0xFFFC)
	ResetVectorHigh = uint16(0xFFFD)
)

// RangeError indicates a bulk load would run past the end of the 64 KiB
// address space.
type RangeError struct {
	Start int
	Len   int
}

// Error implements the error interface.
func (e RangeError) Error() string {
	return fmt.Sprintf("load of %d bytes at 0x%04X overflows the 64KiB address space", e.Len, e.Start)
}

// hook holds the optional reader/writer registered for one address.
type hook struct {
	reader io.Reader8
	writer io.Writer8
}

// Fabric is the memory fabric: a fixed 65536 byte array plus overlays.
// Every address is always readable, at worst returning the backing
// byte. Writes targeting the ROM window ([romStart, 0x10000)) are
// silently dropped; hooks are not consulted for those writes since ROM
// suppression takes precedence.
type Fabric struct {
	data     [Size]uint8
	hooks    map[uint16]hook
	romStart uint16
}

// New creates a Fabric whose ROM window starts at romStart and runs to
// 0xFFFF.
func New(romStart uint16) *Fabric {
	return &Fabric{
		hooks:    make(map[uint16]hook),
		romStart: romStart,
	}
}

// MapIO registers the reader and/or writer for addr. Either may be nil,
// in which case that direction passes through to the backing array. At
// most one reader and one writer can be registered per address; a
// second call for the same addr replaces the first.
func (f *Fabric) MapIO(addr uint16, r io.Reader8, w io.Writer8) {
	f.hooks[addr] = hook{reader: r, writer: w}
}

// Read returns the byte at addr. If a reader hook is registered there
// it is invoked and its value returned; otherwise the backing array is
// read directly.
func (f *Fabric) Read(addr uint16) uint8 {
	if h, ok := f.hooks[addr]; ok && h.reader != nil {
		return h.reader.Read()
	}
	return f.data[addr]
}

// Write stores val at addr, unless addr falls within the ROM window in
// which case the write has no effect. A registered writer hook is
// invoked for non-ROM addresses in preference to the backing array.
func (f *Fabric) Write(addr uint16, val uint8) {
	if addr >= f.romStart {
		return
	}
	if h, ok := f.hooks[addr]; ok && h.writer != nil {
		h.writer.Write(val)
		return
	}
	f.data[addr] = val
}

// LoadData copies data into the backing array starting at start. This
// bypasses both I/O hooks and ROM protection, which is what lets a
// monitor ROM image be placed into the ROM window in the first place.
// Returns a RangeError if data would run past the end of the address
// space.
func (f *Fabric) LoadData(data []uint8, start uint16) error {
	if int(start)+len(data) > Size {
		return RangeError{Start: int(start), Len: len(data)}
	}
	copy(f.data[start:], data)
	return nil
}

// ResetVector writes the configured ROM start address, low byte then
// high byte, into 0xFFFC/0xFFFD. This bypasses ROM protection since
// that range is itself inside the ROM window; it's only ever called
// from Chip.Reset.
func (f *Fabric) ResetVector() {
	f.data[ResetVectorLow] = uint8(f.romStart & 0xFF)
	f.data[ResetVectorHigh] = uint8(f.romStart >> 8)
}
