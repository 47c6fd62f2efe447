package types

import (
	"errors"
	"fmt"
)

// Save file layout, as far as we care about it:
//
// bytes 0x04-0x07: Zone id.  Always at this absolute offset, no matter where anything else is.
// somewhere after that: the "LCED" marker.
// somewhere after the marker: FF FF FF FF 00 00 00 00 00 00 00 00
// immediately after that: x, y, z as little-endian float32.
//
// The distance between the marker and the coordinates varies from file to file (there is
// variable-length data in between) but the order never changes.  The rest of the file is opaque.
// Teleport refuses a marker or sentinel that overlaps the zone id.
var (
	Marker   = [4]byte{0x4C, 0x43, 0x45, 0x44} // "LCED"
	Sentinel = [12]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
)

const (
	CoordOffsetAfterSentinel = len(Sentinel)
	CoordBlockLength         = 12

	ZoneIDOffset = 0x04
	ZoneIDLength = 4
)

// Error kinds.  Callers should match these with errors.Is; the I/O kinds usually arrive wrapped
// together with the underlying OS error.
var (
	ErrFileRead        = errors.New("failed to read save file")
	ErrFileWrite       = errors.New("failed to write save file")
	ErrMarkerNotFound  = errors.New("LCED marker not found (not a decrypted save?)")
	ErrPatternNotFound = errors.New("coordinate pattern not found after LCED marker")
	ErrTruncatedBuffer = errors.New("save data ends before the expected field")
)

// ZoneID is the compact 2-byte map code kept in the catalog.
// The save file stores it expanded to 4 bytes, see writers.ExpandZoneID.
type ZoneID [2]byte

func (z ZoneID) String() string {
	return fmt.Sprintf("[%d, %d]", z[0], z[1])
}

// Location is a teleport destination.
type Location struct {
	Name   string
	Region string
	X      float32
	Y      float32
	Z      float32
	Zone   ZoneID
}

func (l *Location) String() string {
	return fmt.Sprintf("%v (X: %.2f, Y: %.2f, Z: %.2f)", l.Name, l.X, l.Y, l.Z)
}

// CurrentPosition is what a save file says about where the character is standing.
// Zone is the raw on-disk field, not the catalog code.
type CurrentPosition struct {
	X    float32
	Y    float32
	Z    float32
	Zone [ZoneIDLength]byte
}

func (p CurrentPosition) String() string {
	return fmt.Sprintf("X: %.2f, Y: %.2f, Z: %.2f, zone % X", p.X, p.Y, p.Z, p.Zone[:])
}

// Block records where the locator found things in one particular buffer.
// Offsets are only meaningful for the buffer they were computed from.
type Block struct {
	Marker   int // offset of the LCED marker
	Sentinel int // offset of the first sentinel at or after the marker
	Coords   int // offset of the coordinate block (Sentinel + 12)
}
