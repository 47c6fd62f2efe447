// Package savefile reads and patches the position record in a (decrypted) save.
//
// Validate and Teleport work on a buffer that the caller owns.  Store wraps them with the file
// handling: every call loads the file into a fresh buffer, so offsets found in one load are never
// applied to another.
package savefile

import (
	"lantern/readers"
	"lantern/types"
	"lantern/writers"
)

// Validate checks that a save has the structures we need and reports where the character is.
// It never modifies save.
func Validate(save []byte) (types.CurrentPosition, error) {
	out := types.CurrentPosition{}

	block, err := readers.Locate(save)
	if err != nil {
		return out, err
	}

	out.X, out.Y, out.Z, err = readers.ReadPosition(save, block.Coords)
	if err != nil {
		return out, err
	}

	out.Zone, err = readers.ReadZoneID(save)
	if err != nil {
		return out, err
	}

	return out, nil
}

// Teleport rewrites the zone id and the coordinate block of save so that the character wakes up
// at dest.  On error, save is left exactly as it was.
func Teleport(save []byte, dest *types.Location) error {
	block, err := readers.Locate(save)
	if err != nil {
		return err
	}

	// Check both destinations before touching anything, so a short buffer can't end up half-written.
	if block.Coords+types.CoordBlockLength > len(save) || len(save) < types.ZoneIDOffset+types.ZoneIDLength {
		return types.ErrTruncatedBuffer
	}
	// The zone id sits at a fixed offset; writing it must not clobber what Locate found.
	if overlapsZoneID(block.Marker, len(types.Marker)) {
		return types.ErrMarkerNotFound
	}
	if overlapsZoneID(block.Sentinel, len(types.Sentinel)) {
		return types.ErrPatternNotFound
	}

	if err := writers.WriteZoneID(save, dest.Zone); err != nil {
		return err
	}
	return writers.WritePosition(save, block.Coords, dest.X, dest.Y, dest.Z)
}

func overlapsZoneID(offset, length int) bool {
	return offset < types.ZoneIDOffset+types.ZoneIDLength && offset+length > types.ZoneIDOffset
}
