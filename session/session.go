// Package session is the interactive flow: pick a file, check it, pick a destination, confirm,
// write.  It knows nothing about terminals or windows; front ends feed it Actions, call Advance
// when Pending says so, and draw whatever State says.
package session

import (
	"context"
	"fmt"
	"unicode/utf8"

	"lantern/logging"
	"lantern/tables"
	"lantern/types"
)

// Browser is whatever lists files for the user to pick from.
// Enter either descends into a directory (isFile false) or picks a file.
type Browser interface {
	Up()
	Down()
	Enter() (path string, isFile bool)
}

// Store does the actual file work.  *savefile.Store is the real one.
type Store interface {
	Validate(ctx context.Context, path string) (types.CurrentPosition, error)
	Teleport(ctx context.Context, path string, dest *types.Location) error
}

type Session struct {
	browser Browser
	store   Store
	log     logging.Logger

	state State
	done  bool

	path     string
	position *types.CurrentPosition

	query    string
	groups   []tables.RegionGroup
	selected int // flat index across groups

	destination *types.Location
	confirm     bool // false: "cancel" is highlighted
}

func New(browser Browser, store Store, log logging.Logger) *Session {
	if log == nil {
		log = logging.Noop()
	}
	s := &Session{browser: browser, store: store, log: log, state: Browsing{}}
	s.refilter()
	return s
}

func (s *Session) State() State                     { return s.state }
func (s *Session) Done() bool                       { return s.done }
func (s *Session) Path() string                     { return s.path }
func (s *Session) Position() *types.CurrentPosition { return s.position }
func (s *Session) Query() string                    { return s.query }
func (s *Session) Groups() []tables.RegionGroup     { return s.groups }
func (s *Session) Selected() int                    { return s.selected }
func (s *Session) Total() int                       { return tables.Count(s.groups) }
func (s *Session) Destination() *types.Location     { return s.destination }
func (s *Session) ConfirmChosen() bool              { return s.confirm }

func (s *Session) SelectedLocation() (*types.Location, bool) {
	return tables.At(s.groups, s.selected)
}

// TextEntry reports whether typed characters should be sent as Char actions rather than being
// read as navigation or quit keys.
func (s *Session) TextEntry() bool {
	_, ok := s.state.(Searching)
	return ok
}

// Pending reports whether the session is sitting in a state that only exists to show an operation
// in flight.  Front ends must call Advance before waiting for more input.
func (s *Session) Pending() bool {
	if s.done {
		return false
	}
	switch s.state.(type) {
	case Validating, Committing:
		return true
	case Browsing, ValidationOk, ValidationFailed, Selecting, Searching, Confirming, Committed, CommitFailed:
		return false
	default:
		panic(fmt.Sprintf("session: unknown state %T", s.state))
	}
}

// Advance runs the operation a Pending state is waiting on.  It does nothing otherwise.
func (s *Session) Advance(ctx context.Context) {
	if !s.Pending() {
		return
	}

	switch st := s.state.(type) {
	case Validating:
		pos, err := s.store.Validate(ctx, st.Path)
		if err != nil {
			s.log.Info(ctx, "validation failed", logging.String("path", st.Path), logging.Err(err))
			s.set(ctx, ValidationFailed{Err: err})
			return
		}
		s.position = &pos
		s.set(ctx, ValidationOk{Position: pos})

	case Committing:
		if err := s.store.Teleport(ctx, s.path, s.destination); err != nil {
			s.log.Warn(ctx, "teleport failed", logging.String("path", s.path), logging.Err(err))
			s.set(ctx, CommitFailed{Err: err})
			return
		}
		s.set(ctx, Committed{})
	}
}

// Handle applies one user action.
func (s *Session) Handle(ctx context.Context, a Action) {
	if s.done {
		return
	}
	if a.Kind == Quit {
		s.log.Debug(ctx, "quit", logging.String("state", s.state.String()))
		s.done = true
		return
	}
	if a.Kind == Tick || a.Kind == None {
		return
	}

	switch st := s.state.(type) {
	case Browsing:
		s.handleBrowsing(ctx, a)
	case Validating, Committing:
		// Operation in flight; Advance moves on from here, not the user.
	case ValidationOk:
		switch a.Kind {
		case Enter:
			s.set(ctx, Selecting{})
		case Escape:
			s.backToBrowsing(ctx)
		}
	case ValidationFailed:
		switch a.Kind {
		case Enter, Escape:
			s.backToBrowsing(ctx)
		}
	case Selecting:
		s.handleSelecting(ctx, a)
	case Searching:
		s.handleSearching(ctx, a)
	case Confirming:
		s.handleConfirming(ctx, a)
	case Committed:
		switch a.Kind {
		case Enter:
			s.destination = nil
			s.set(ctx, Selecting{})
		case Escape:
			s.backToBrowsing(ctx)
		}
	case CommitFailed:
		switch a.Kind {
		case Enter, Escape:
			s.set(ctx, Selecting{})
		}
	default:
		panic(fmt.Sprintf("session: unknown state %T", st))
	}
}

func (s *Session) handleBrowsing(ctx context.Context, a Action) {
	switch a.Kind {
	case Up:
		s.browser.Up()
	case Down:
		s.browser.Down()
	case Enter:
		path, isFile := s.browser.Enter()
		if !isFile {
			return
		}
		s.path = path
		s.set(ctx, Validating{Path: path})
	}
}

func (s *Session) handleSelecting(ctx context.Context, a Action) {
	switch a.Kind {
	case Up:
		s.moveUp()
	case Down:
		s.moveDown()
	case Search:
		s.set(ctx, Searching{})
	case Enter:
		loc, ok := s.SelectedLocation()
		if !ok {
			// Empty filter result; nothing to confirm
			return
		}
		s.destination = loc
		s.confirm = false
		s.set(ctx, Confirming{Index: s.selected})
	case Escape:
		s.backToBrowsing(ctx)
	}
}

func (s *Session) handleSearching(ctx context.Context, a Action) {
	switch a.Kind {
	case Up:
		s.moveUp()
	case Down:
		s.moveDown()
	case Char:
		s.query += string(a.Rune)
		s.refilter()
	case Backspace:
		if s.query != "" {
			_, size := utf8.DecodeLastRuneInString(s.query)
			s.query = s.query[:len(s.query)-size]
			s.refilter()
		}
	case Enter:
		// Keep the filter, go back to navigating
		s.set(ctx, Selecting{})
	case Escape:
		s.query = ""
		s.selected = 0
		s.refilter()
		s.set(ctx, Selecting{})
	}
}

func (s *Session) handleConfirming(ctx context.Context, a Action) {
	switch a.Kind {
	case Left:
		s.confirm = false
	case Right:
		s.confirm = true
	case Enter:
		if s.confirm {
			s.set(ctx, Committing{})
			return
		}
		s.set(ctx, Selecting{})
	case Escape:
		s.set(ctx, Selecting{})
	}
}

func (s *Session) moveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

func (s *Session) moveDown() {
	if s.selected < s.Total()-1 {
		s.selected++
	}
}

// refilter rebuilds the grouped view from the query and pulls the selection back into range.
func (s *Session) refilter() {
	s.groups = tables.GroupByRegion(tables.Search(s.query))
	total := s.Total()
	switch {
	case total == 0:
		s.selected = 0
	case s.selected >= total:
		s.selected = total - 1
	}
}

func (s *Session) backToBrowsing(ctx context.Context) {
	s.path = ""
	s.position = nil
	s.destination = nil
	s.confirm = false
	s.query = ""
	s.selected = 0
	s.refilter()
	s.set(ctx, Browsing{})
}

func (s *Session) set(ctx context.Context, next State) {
	s.log.Debug(ctx, "state change", logging.String("from", s.state.String()), logging.String("to", next.String()))
	s.state = next
}
