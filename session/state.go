package session

import (
	"fmt"

	"lantern/types"
)

// State is one of the session's screens.  The set is closed: every type implementing it is in
// this file, and code that switches over states names all of them.
type State interface {
	state()
	fmt.Stringer
}

// Browsing: picking a save file.
type Browsing struct{}

// Validating: a file was picked and is about to be checked.  Nothing waits for input here.
type Validating struct {
	Path string
}

// ValidationOk: the file looks like a save; Position is where the character currently is.
type ValidationOk struct {
	Position types.CurrentPosition
}

// ValidationFailed: the file couldn't be read, or isn't a save we understand.
type ValidationFailed struct {
	Err error
}

// Selecting: moving through the (possibly filtered) destination list.
type Selecting struct{}

// Searching: same list, but typed characters edit the filter instead of navigating.
type Searching struct{}

// Confirming: last chance before the save gets rewritten.  Index is the list position that
// was selected when confirmation was asked for.
type Confirming struct {
	Index int
}

// Committing: the write is about to happen.  Nothing waits for input here.
type Committing struct{}

// Committed: the save has been rewritten.
type Committed struct{}

// CommitFailed: the write didn't happen.
type CommitFailed struct {
	Err error
}

func (Browsing) state()         {}
func (Validating) state()       {}
func (ValidationOk) state()     {}
func (ValidationFailed) state() {}
func (Selecting) state()        {}
func (Searching) state()        {}
func (Confirming) state()       {}
func (Committing) state()       {}
func (Committed) state()        {}
func (CommitFailed) state()     {}

func (Browsing) String() string           { return "browsing" }
func (s Validating) String() string       { return "validating " + s.Path }
func (ValidationOk) String() string       { return "validation ok" }
func (s ValidationFailed) String() string { return "validation failed: " + s.Err.Error() }
func (Selecting) String() string          { return "selecting" }
func (Searching) String() string          { return "searching" }
func (s Confirming) String() string       { return fmt.Sprintf("confirming #%d", s.Index) }
func (Committing) String() string         { return "committing" }
func (Committed) String() string          { return "committed" }
func (s CommitFailed) String() string     { return "commit failed: " + s.Err.Error() }

// Kind says what an Action means.  Front ends decide which physical keys map to which kind.
type Kind int

const (
	None Kind = iota
	Up
	Down
	Left
	Right
	Enter
	Escape
	Search
	Backspace
	Char
	Quit
	Tick
)

var kindNames = []string{"none", "up", "down", "left", "right", "enter", "escape", "search", "backspace", "char", "quit", "tick"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Action is one user intent.  Rune is only used by Char.
type Action struct {
	Kind Kind
	Rune rune
}

// Do builds a plain action.
func Do(k Kind) Action { return Action{Kind: k} }

// Type builds a Char action.
func Type(r rune) Action { return Action{Kind: Char, Rune: r} }
