// Package browser is the file picker behind the Browsing screen: one directory at a time,
// ".." first, then directories, then files.
package browser

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"lantern/logging"
)

const Parent = ".."

type Entry struct {
	Name string
	Path string
	Dir  bool
}

type Browser struct {
	dir     string
	entries []Entry
	cursor  int
	log     logging.Logger
}

// New lists dir, which is made absolute first so that ".." always has somewhere to go.
func New(dir string, log logging.Logger) (*Browser, error) {
	if log == nil {
		log = logging.Noop()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	entries, err := list(abs)
	if err != nil {
		return nil, err
	}
	return &Browser{dir: abs, entries: entries, log: log}, nil
}

func (b *Browser) Dir() string      { return b.dir }
func (b *Browser) Entries() []Entry { return b.entries }
func (b *Browser) Cursor() int      { return b.cursor }

func (b *Browser) Up() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *Browser) Down() {
	if b.cursor < len(b.entries)-1 {
		b.cursor++
	}
}

// Enter opens the entry under the cursor.  Directories are descended into and report
// isFile false; a file is handed back for the caller to deal with.
func (b *Browser) Enter() (string, bool) {
	if b.cursor >= len(b.entries) {
		return "", false
	}
	e := b.entries[b.cursor]
	if !e.Dir {
		return e.Path, true
	}

	entries, err := list(e.Path)
	if err != nil {
		// Stay where we are; the listing we have is still good
		b.log.Warn(context.Background(), "could not open directory", logging.String("dir", e.Path), logging.Err(err))
		return "", false
	}
	b.dir, b.entries, b.cursor = e.Path, entries, 0
	return "", false
}

// Refresh re-reads the current directory, keeping the cursor where it was as far as possible.
func (b *Browser) Refresh() error {
	entries, err := list(b.dir)
	if err != nil {
		return err
	}
	b.entries = entries
	if b.cursor >= len(entries) {
		b.cursor = max(len(entries)-1, 0)
	}
	return nil
}

func list(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs, files []Entry
	for _, de := range des {
		e := Entry{Name: de.Name(), Path: filepath.Join(dir, de.Name())}
		// Follow symlinks so a linked save directory can be entered
		if info, err := os.Stat(e.Path); err == nil {
			e.Dir = info.IsDir()
		} else {
			e.Dir = de.IsDir()
		}
		if e.Dir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}

	byName := func(a, b Entry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
	slices.SortFunc(dirs, byName)
	slices.SortFunc(files, byName)

	out := []Entry{}
	if parent := filepath.Dir(dir); parent != dir {
		out = append(out, Entry{Name: Parent, Path: parent, Dir: true})
	}
	out = append(out, dirs...)
	return append(out, files...), nil
}
