package readers

import (
	"bytes"
	"encoding/binary"
	"math"

	"lantern/types"
)

// LocateMarker finds the first LCED marker in a save.
// It's a plain byte-by-byte scan, so overlapping candidates are all considered.
func LocateMarker(save []byte) (int, error) {
	i := bytes.Index(save, types.Marker[:])
	if i < 0 {
		return 0, types.ErrMarkerNotFound
	}
	return i, nil
}

// LocateCoordinateBlock finds the first sentinel pattern at or after from, and returns the offset
// of the coordinate block that follows it.
// Searching from the marker matters: the same pattern shows up earlier in the file, attached to
// records we don't care about.
func LocateCoordinateBlock(save []byte, from int) (int, error) {
	if from < 0 || from >= len(save) {
		return 0, types.ErrPatternNotFound
	}
	i := bytes.Index(save[from:], types.Sentinel[:])
	if i < 0 {
		return 0, types.ErrPatternNotFound
	}
	return from + i + types.CoordOffsetAfterSentinel, nil
}

// Locate does both searches.  The result only applies to this exact buffer.
func Locate(save []byte) (types.Block, error) {
	out := types.Block{}

	marker, err := LocateMarker(save)
	if err != nil {
		return out, err
	}
	out.Marker = marker

	coords, err := LocateCoordinateBlock(save, marker)
	if err != nil {
		return out, err
	}
	out.Coords = coords
	out.Sentinel = coords - types.CoordOffsetAfterSentinel

	return out, nil
}

// Read_float32_le reads one little-endian float.
func Read_float32_le(save []byte, offset int) (float32, error) {
	if offset < 0 || offset+4 > len(save) {
		return 0, types.ErrTruncatedBuffer
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(save[offset : offset+4])), nil
}

// ReadPosition reads x, y, z from a coordinate block.
func ReadPosition(save []byte, offset int) (x, y, z float32, err error) {
	if offset < 0 || offset+types.CoordBlockLength > len(save) {
		return 0, 0, 0, types.ErrTruncatedBuffer
	}
	// Bounds already checked, so none of these can fail
	x, _ = Read_float32_le(save, offset)
	y, _ = Read_float32_le(save, offset+4)
	z, _ = Read_float32_le(save, offset+8)
	return x, y, z, nil
}

// ReadZoneID returns the raw 4-byte zone field.
// Note this is at a fixed place in the file - it has nothing to do with where the marker is.
func ReadZoneID(save []byte) ([types.ZoneIDLength]byte, error) {
	out := [types.ZoneIDLength]byte{}
	if len(save) < types.ZoneIDOffset+types.ZoneIDLength {
		return out, types.ErrTruncatedBuffer
	}
	copy(out[:], save[types.ZoneIDOffset:types.ZoneIDOffset+types.ZoneIDLength])
	return out, nil
}
