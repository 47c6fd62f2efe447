package writers

// Functions for patching save data in place.
// Nothing here grows or shrinks the buffer; every write lands on bytes that already exist.

import (
	"encoding/binary"
	"math"

	"lantern/types"
)

// ExpandZoneID turns a catalog zone code into the 4 bytes the save file wants.
// The layout is [0, 0, code[1], code[0]] - byte-swapped and zero-padded.  That was worked out by
// looking at real saves; it holds for every zone in the catalog and nobody has checked anything else.
func ExpandZoneID(code types.ZoneID) [types.ZoneIDLength]byte {
	return [types.ZoneIDLength]byte{0x00, 0x00, code[1], code[0]}
}

// Write_float32_le overwrites 4 bytes at offset with a little-endian float.
func Write_float32_le(save []byte, offset int, f float32) error {
	if offset < 0 || offset+4 > len(save) {
		return types.ErrTruncatedBuffer
	}
	binary.LittleEndian.PutUint32(save[offset:offset+4], math.Float32bits(f))
	return nil
}

// WritePosition overwrites the 12-byte coordinate block at offset.
// Either all three floats are written or, if the block doesn't fit, none are.
func WritePosition(save []byte, offset int, x, y, z float32) error {
	if offset < 0 || offset+types.CoordBlockLength > len(save) {
		return types.ErrTruncatedBuffer
	}
	Write_float32_le(save, offset, x)
	Write_float32_le(save, offset+4, y)
	Write_float32_le(save, offset+8, z)
	return nil
}

// WriteZoneID writes an expanded zone code at its fixed offset.
func WriteZoneID(save []byte, code types.ZoneID) error {
	if len(save) < types.ZoneIDOffset+types.ZoneIDLength {
		return types.ErrTruncatedBuffer
	}
	field := ExpandZoneID(code)
	copy(save[types.ZoneIDOffset:], field[:])
	return nil
}
