package session

import (
	"context"
	"errors"
	"testing"

	"lantern/tables"
	"lantern/types"
)

type fakeBrowser struct {
	entries []string // names ending in "/" are directories
	cursor  int
	entered []string
}

func (b *fakeBrowser) Up() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *fakeBrowser) Down() {
	if b.cursor < len(b.entries)-1 {
		b.cursor++
	}
}

func (b *fakeBrowser) Enter() (string, bool) {
	name := b.entries[b.cursor]
	b.entered = append(b.entered, name)
	if name[len(name)-1] == '/' {
		return "", false
	}
	return name, true
}

type fakeStore struct {
	position    types.CurrentPosition
	validateErr error
	teleportErr error

	validated []string
	teleports []*types.Location
}

func (f *fakeStore) Validate(ctx context.Context, path string) (types.CurrentPosition, error) {
	f.validated = append(f.validated, path)
	return f.position, f.validateErr
}

func (f *fakeStore) Teleport(ctx context.Context, path string, dest *types.Location) error {
	f.teleports = append(f.teleports, dest)
	return f.teleportErr
}

func newSession(store *fakeStore) (*Session, *fakeBrowser) {
	b := &fakeBrowser{entries: []string{"saves/", "userdata0000", "userdata0001"}}
	return New(b, store, nil), b
}

func do(s *Session, kinds ...Kind) {
	for _, k := range kinds {
		s.Handle(context.Background(), Do(k))
	}
}

func typeText(s *Session, text string) {
	for _, r := range text {
		s.Handle(context.Background(), Type(r))
	}
}

func expectState[T State](t *testing.T, s *Session) T {
	t.Helper()
	st, ok := s.State().(T)
	if !ok {
		var want T
		t.Fatalf("state is %T (%v), want %T", s.State(), s.State(), want)
	}
	return st
}

// toSelecting drives a fresh session to the destination list via userdata0000
func toSelecting(t *testing.T, s *Session) {
	t.Helper()
	do(s, Down, Enter)
	expectState[Validating](t, s)
	s.Advance(context.Background())
	expectState[ValidationOk](t, s)
	do(s, Enter)
	expectState[Selecting](t, s)
}

func TestInitialState(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	expectState[Browsing](t, s)
	if s.Pending() || s.Done() {
		t.Error("fresh session should be idle")
	}
	if s.Total() != len(tables.All()) {
		t.Errorf("initial filter should match everything, got %v", s.Total())
	}
}

func TestBrowseIntoDirectoryStaysBrowsing(t *testing.T) {
	store := &fakeStore{}
	s, b := newSession(store)
	do(s, Enter)
	expectState[Browsing](t, s)
	if len(b.entered) != 1 || b.entered[0] != "saves/" {
		t.Errorf("browser saw %v", b.entered)
	}
	if len(store.validated) != 0 {
		t.Error("entering a directory must not validate anything")
	}
}

func TestValidationIsAutomatic(t *testing.T) {
	store := &fakeStore{position: types.CurrentPosition{X: 1, Y: 2, Z: 3}}
	s, _ := newSession(store)
	do(s, Down, Enter)

	st := expectState[Validating](t, s)
	if st.Path != "userdata0000" || !s.Pending() {
		t.Fatalf("unexpected validating state %+v", st)
	}

	// Input is ignored while an operation is in flight
	do(s, Escape, Down, Enter)
	expectState[Validating](t, s)
	if len(store.validated) != 0 {
		t.Fatal("validated before Advance")
	}

	s.Advance(context.Background())
	ok := expectState[ValidationOk](t, s)
	if ok.Position != store.position || s.Position() == nil || *s.Position() != store.position {
		t.Errorf("position = %+v", ok.Position)
	}
	if len(store.validated) != 1 || store.validated[0] != "userdata0000" {
		t.Errorf("validated %v", store.validated)
	}

	// Advance outside a pending state does nothing
	s.Advance(context.Background())
	if len(store.validated) != 1 {
		t.Error("Advance re-ran validation")
	}
}

func TestValidationFailure(t *testing.T) {
	store := &fakeStore{validateErr: types.ErrMarkerNotFound}
	s, _ := newSession(store)
	do(s, Down, Enter)
	s.Advance(context.Background())

	st := expectState[ValidationFailed](t, s)
	if !errors.Is(st.Err, types.ErrMarkerNotFound) {
		t.Errorf("error = %v", st.Err)
	}

	// Only way out is back
	do(s, Up, Down, Search, Left)
	expectState[ValidationFailed](t, s)
	do(s, Enter)
	expectState[Browsing](t, s)
	if s.Path() != "" {
		t.Error("path survived going back")
	}
}

func TestValidationOkEscape(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	do(s, Down, Enter)
	s.Advance(context.Background())
	do(s, Escape)
	expectState[Browsing](t, s)
	if s.Position() != nil {
		t.Error("position survived going back")
	}
}

func TestNavigationClamps(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	toSelecting(t, s)

	do(s, Up)
	if s.Selected() != 0 {
		t.Errorf("up at top moved to %v", s.Selected())
	}

	total := s.Total()
	for i := 0; i < total+5; i++ {
		do(s, Down)
	}
	if s.Selected() != total-1 {
		t.Errorf("selection ran to %v, want %v", s.Selected(), total-1)
	}
	do(s, Down)
	if s.Selected() != total-1 {
		t.Error("down at the bottom wrapped or overflowed")
	}
}

func TestDownAtEndOfFilteredList(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	toSelecting(t, s)
	do(s, Search)
	typeText(s, "cathedral")
	if s.Total() != 4 {
		t.Fatalf("filtered total = %v", s.Total())
	}
	do(s, Down, Down, Down)
	if s.Selected() != 3 {
		t.Fatalf("selected = %v", s.Selected())
	}
	do(s, Down)
	if s.Selected() != 3 {
		t.Errorf("down at the last filtered entry moved to %v", s.Selected())
	}
}

func TestSearchKeepsFilterOnEnter(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	toSelecting(t, s)
	do(s, Search)
	expectState[Searching](t, s)
	if !s.TextEntry() {
		t.Error("searching should be in text entry mode")
	}

	typeText(s, "yahar")
	do(s, Enter)
	expectState[Selecting](t, s)
	if s.Query() != "yahar" || s.Total() != 2 {
		t.Errorf("filter lost: %q, %v", s.Query(), s.Total())
	}

	// Going back into search continues from the same filter
	do(s, Search)
	if s.Query() != "yahar" {
		t.Error("entering search reset the filter")
	}
}

func TestRefilterReclamps(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	toSelecting(t, s)
	for i := 0; i < 20; i++ {
		do(s, Down)
	}
	do(s, Search)
	typeText(s, "hunter")
	// Hunter's Dream and Hunter's Nightmare
	if s.Total() != 2 || s.Selected() != 1 {
		t.Errorf("total %v, selected %v", s.Total(), s.Selected())
	}

	do(s, Backspace, Backspace, Backspace, Backspace, Backspace, Backspace)
	if s.Query() != "" || s.Total() != len(tables.All()) {
		t.Errorf("backspacing to empty should match everything, got %q / %v", s.Query(), s.Total())
	}
	do(s, Backspace)
	if s.Query() != "" {
		t.Error("backspace on empty query")
	}
}

func TestEmptyResultThenEscape(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	toSelecting(t, s)
	do(s, Down, Down, Down, Search)
	typeText(s, "zzqx")

	if s.Total() != 0 || s.Selected() != 0 || len(s.Groups()) != 0 {
		t.Fatalf("expected empty result, got %v groups, selected %v", len(s.Groups()), s.Selected())
	}

	// Enter keeps the (empty) filter, and a second Enter has nothing to confirm
	do(s, Enter)
	expectState[Selecting](t, s)
	do(s, Enter)
	expectState[Selecting](t, s)
	do(s, Search)

	do(s, Escape)
	expectState[Selecting](t, s)
	if s.Query() != "" || s.Selected() != 0 {
		t.Errorf("escape left query %q, selection %v", s.Query(), s.Selected())
	}
	want := tables.GroupByRegion(tables.Search(""))
	got := s.Groups()
	if len(got) != len(want) {
		t.Fatalf("got %v groups, want %v", len(got), len(want))
	}
	for i := range want {
		if got[i].Region != want[i].Region || len(got[i].Locations) != len(want[i].Locations) {
			t.Errorf("group %v = %v/%v, want %v/%v", i, got[i].Region, len(got[i].Locations), want[i].Region, len(want[i].Locations))
		}
	}
}

func TestSearchTreatsLettersAsText(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	toSelecting(t, s)
	do(s, Search)
	// j and k are navigation keys elsewhere; here they arrive as Char and are text
	typeText(s, "jk")
	if s.Query() != "jk" {
		t.Errorf("query = %q", s.Query())
	}
}

func TestConfirmCancelByDefault(t *testing.T) {
	store := &fakeStore{}
	s, _ := newSession(store)
	toSelecting(t, s)
	do(s, Down, Enter)

	st := expectState[Confirming](t, s)
	if st.Index != 1 || s.ConfirmChosen() {
		t.Fatalf("confirming %+v, confirm=%v", st, s.ConfirmChosen())
	}
	if s.Destination() == nil || s.Destination().Name != tables.All()[1].Name {
		t.Errorf("destination = %v", s.Destination())
	}

	do(s, Enter)
	expectState[Selecting](t, s)
	if len(store.teleports) != 0 {
		t.Error("cancel still teleported")
	}
}

func TestConfirmToggle(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	toSelecting(t, s)
	do(s, Enter, Right)
	if !s.ConfirmChosen() {
		t.Error("right should pick confirm")
	}
	do(s, Left)
	if s.ConfirmChosen() {
		t.Error("left should pick cancel")
	}
	do(s, Right, Escape)
	expectState[Selecting](t, s)

	// Asking again starts from cancel
	do(s, Enter)
	if s.ConfirmChosen() {
		t.Error("toggle did not reset to cancel")
	}
}

func TestCommit(t *testing.T) {
	store := &fakeStore{}
	s, _ := newSession(store)
	toSelecting(t, s)
	do(s, Search)
	typeText(s, "central")
	do(s, Enter, Enter, Right, Enter)

	expectState[Committing](t, s)
	if !s.Pending() {
		t.Fatal("committing should be pending")
	}
	do(s, Escape)
	expectState[Committing](t, s)

	s.Advance(context.Background())
	expectState[Committed](t, s)
	if len(store.teleports) != 1 || store.teleports[0].Name != "Central Yharnam" {
		t.Fatalf("teleports = %v", store.teleports)
	}

	do(s, Enter)
	expectState[Selecting](t, s)
	if s.Destination() != nil {
		t.Error("destination not cleared")
	}
	if s.Path() != "userdata0000" {
		t.Error("path should survive for another teleport")
	}
}

func TestCommittedEscapeGoesToBrowsing(t *testing.T) {
	s, _ := newSession(&fakeStore{})
	toSelecting(t, s)
	do(s, Enter, Right, Enter)
	s.Advance(context.Background())
	do(s, Escape)
	expectState[Browsing](t, s)
}

func TestCommitFailure(t *testing.T) {
	store := &fakeStore{teleportErr: types.ErrFileWrite}
	s, _ := newSession(store)
	toSelecting(t, s)
	do(s, Enter, Right, Enter)
	s.Advance(context.Background())

	st := expectState[CommitFailed](t, s)
	if !errors.Is(st.Err, types.ErrFileWrite) {
		t.Errorf("error = %v", st.Err)
	}
	do(s, Down, Right)
	expectState[CommitFailed](t, s)
	do(s, Escape)
	expectState[Selecting](t, s)
}

func TestQuitFromEveryState(t *testing.T) {
	drive := map[string]func(s *Session){
		"browsing": func(s *Session) {},
		"validating": func(s *Session) {
			do(s, Down, Enter)
		},
		"selecting": func(s *Session) {
			do(s, Down, Enter)
			s.Advance(context.Background())
			do(s, Enter)
		},
		"searching": func(s *Session) {
			do(s, Down, Enter)
			s.Advance(context.Background())
			do(s, Enter, Search)
		},
		"committing": func(s *Session) {
			do(s, Down, Enter)
			s.Advance(context.Background())
			do(s, Enter, Enter, Right, Enter)
		},
	}

	for name, f := range drive {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{}
			s, _ := newSession(store)
			f(s)
			do(s, Quit)
			if !s.Done() {
				t.Fatal("quit ignored")
			}
			if s.Pending() {
				t.Error("a finished session should not ask for Advance")
			}
			s.Advance(context.Background())
			if len(store.teleports) != 0 {
				t.Error("wrote after quit")
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if Backspace.String() != "backspace" || Kind(99).String() != "kind(99)" {
		t.Error("unexpected Kind names")
	}
}
