package browser

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range []string{"zeta", "Alpha", "saves"} {
		if err := os.Mkdir(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"userdata0001", "Readme.txt", "userdata0000", "saves/userdata0002"} {
		if err := os.WriteFile(filepath.Join(root, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func names(b *Browser) []string {
	out := []string{}
	for _, e := range b.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListingOrder(t *testing.T) {
	root := makeTree(t)
	b, err := New(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"..", "Alpha", "saves", "zeta", "Readme.txt", "userdata0000", "userdata0001"}
	if got := names(b); !equal(got, want) {
		t.Errorf("listing = %v, want %v", got, want)
	}
	if !b.Entries()[0].Dir || b.Entries()[0].Path != filepath.Dir(root) {
		t.Errorf("parent entry = %+v", b.Entries()[0])
	}
}

func TestNavigation(t *testing.T) {
	root := makeTree(t)
	b, err := New(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	b.Up()
	if b.Cursor() != 0 {
		t.Error("up at the top moved")
	}
	for i := 0; i < 20; i++ {
		b.Down()
	}
	if b.Cursor() != len(b.Entries())-1 {
		t.Errorf("cursor ran to %v", b.Cursor())
	}

	path, isFile := b.Enter()
	if !isFile || path != filepath.Join(root, "userdata0001") {
		t.Errorf("Enter on a file = %q, %v", path, isFile)
	}
	if b.Dir() != root {
		t.Error("entering a file changed directory")
	}
}

func TestEnterDirectory(t *testing.T) {
	root := makeTree(t)
	b, err := New(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	b.Down()
	b.Down() // saves
	if _, isFile := b.Enter(); isFile {
		t.Fatal("directory reported as a file")
	}
	if b.Dir() != filepath.Join(root, "saves") || b.Cursor() != 0 {
		t.Fatalf("now in %v at %v", b.Dir(), b.Cursor())
	}
	if got := names(b); !equal(got, []string{"..", "userdata0002"}) {
		t.Errorf("listing = %v", got)
	}

	// and back up again
	b.Enter()
	if b.Dir() != root {
		t.Errorf(".. went to %v", b.Dir())
	}
}

func TestEnterUnreadableDirectory(t *testing.T) {
	root := makeTree(t)
	b, err := New(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	b.Down() // Alpha
	if err := os.Remove(filepath.Join(root, "Alpha")); err != nil {
		t.Fatal(err)
	}

	if _, isFile := b.Enter(); isFile {
		t.Error("vanished directory reported as a file")
	}
	if b.Dir() != root || b.Cursor() != 1 {
		t.Errorf("moved to %v at %v", b.Dir(), b.Cursor())
	}
}

func TestRefreshClamps(t *testing.T) {
	root := makeTree(t)
	b, err := New(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		b.Down()
	}
	for _, f := range []string{"userdata0000", "userdata0001"} {
		if err := os.Remove(filepath.Join(root, f)); err != nil {
			t.Fatal(err)
		}
	}

	if err := b.Refresh(); err != nil {
		t.Fatal(err)
	}
	if len(b.Entries()) != 5 || b.Cursor() != 4 {
		t.Errorf("%v entries, cursor %v", len(b.Entries()), b.Cursor())
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("expected an error")
	}
}

func TestWatcher(t *testing.T) {
	root := makeTree(t)
	w, err := NewWatcher(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(root); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "userdata0003"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case dir := <-w.Changes():
		if dir != root {
			t.Errorf("change reported for %v", dir)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	if err := w.Watch(filepath.Join(root, "nope")); err == nil {
		t.Error("watching a missing directory should fail")
	}
}
