package savefile

import (
	"context"
	"fmt"
	"os"

	"lantern/logging"
	"lantern/readers"
	"lantern/types"
)

// Options controls how Store writes.
type Options struct {
	// Backup copies the untouched file to <path>.bak before overwriting it.
	// Nothing ever restores from it; it is there for the user.
	Backup bool
}

// Store does validate/teleport against files on disk.
// It holds no buffers between calls.
type Store struct {
	log  logging.Logger
	opts Options
}

func NewStore(log logging.Logger, opts Options) *Store {
	if log == nil {
		log = logging.Noop()
	}
	return &Store{log: log, opts: opts}
}

// Load reads a whole save into memory.
func Load(path string) ([]byte, error) {
	save, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrFileRead, err)
	}
	return save, nil
}

// Write replaces the file at path with save, keeping the file's permissions.
func Write(path string, save []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, save, mode); err != nil {
		return fmt.Errorf("%w: %w", types.ErrFileWrite, err)
	}
	return nil
}

// Validate loads path and reports the current position.
func (s *Store) Validate(ctx context.Context, path string) (types.CurrentPosition, error) {
	log := s.log.With(logging.String("path", path))

	save, err := Load(path)
	if err != nil {
		log.Warn(ctx, "could not read save", logging.Err(err))
		return types.CurrentPosition{}, err
	}
	s.debugBlock(ctx, log, save)

	pos, err := Validate(save)
	if err != nil {
		log.Warn(ctx, "save failed validation", logging.Err(err))
		return pos, err
	}

	log.Info(ctx, "save validated", logging.String("position", pos.String()))
	return pos, nil
}

// Teleport loads path, moves the character to dest and writes the whole file back.
// If the save can't be patched, the file is not touched.
func (s *Store) Teleport(ctx context.Context, path string, dest *types.Location) error {
	log := s.log.With(logging.String("path", path), logging.String("destination", dest.Name))

	save, err := Load(path)
	if err != nil {
		log.Warn(ctx, "could not read save", logging.Err(err))
		return err
	}
	s.debugBlock(ctx, log, save)

	var original []byte
	if s.opts.Backup {
		original = append([]byte(nil), save...)
	}

	if err := Teleport(save, dest); err != nil {
		log.Warn(ctx, "teleport failed", logging.Err(err))
		return err
	}

	if s.opts.Backup {
		backup := path + ".bak"
		if err := os.WriteFile(backup, original, 0o644); err != nil {
			log.Error(ctx, "could not write backup", logging.String("backup", backup), logging.Err(err))
			return fmt.Errorf("%w: backup: %w", types.ErrFileWrite, err)
		}
		log.Info(ctx, "backup written", logging.String("backup", backup))
	}

	if err := Write(path, save); err != nil {
		log.Error(ctx, "could not write save", logging.Err(err))
		return err
	}

	log.Info(ctx, "teleported", logging.Any("zone", dest.Zone.String()))
	return nil
}

func (s *Store) debugBlock(ctx context.Context, log logging.Logger, save []byte) {
	block, err := readers.Locate(save)
	if err != nil {
		return
	}
	log.Debug(ctx, "located position record",
		logging.Int("size", len(save)),
		logging.Hex("marker", block.Marker),
		logging.Hex("sentinel", block.Sentinel),
		logging.Hex("coords", block.Coords))
}
