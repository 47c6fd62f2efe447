// Package view turns a session into lines of styled text.  Both the terminal and the window
// front ends draw from this, so they always say the same thing.
package view

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"lantern/browser"
	"lantern/session"
	"lantern/types"
)

type Style int

const (
	Plain Style = iota
	Title
	Heading
	Selected
	Error
	Success
	Help
)

type Line struct {
	Text  string
	Style Style
}

// Screen is one frame.  Body is already cut down to the rows it was rendered for.
type Screen struct {
	Title string
	Body  []Line
	Help  string
}

// Files is the part of *browser.Browser the Browsing screen shows.
type Files interface {
	Dir() string
	Entries() []browser.Entry
	Cursor() int
}

const (
	Pointer = "► "
	Indent  = "  "
)

// Render builds the frame for the session's current state.  rows is how many body lines fit;
// long lists scroll to keep the selection in view.
func Render(s *session.Session, files Files, rows int) Screen {
	rows = max(rows, 1)

	switch st := s.State().(type) {
	case session.Browsing:
		return browsing(files, rows)

	case session.Validating:
		return Screen{
			Title: "Validating",
			Body:  []Line{{Text: "Validating " + st.Path + "..."}},
		}

	case session.ValidationOk:
		body := []Line{
			{Text: "✓ Valid Bloodborne save file detected", Style: Success},
			{},
			{Text: "File: " + s.Path()},
			{},
			{Text: "Current Position:", Style: Heading},
		}
		body = append(body, position(st.Position)...)
		body = append(body, Line{}, Line{Text: "Press Enter to select destination..."})
		return Screen{
			Title: "Save File Valid!",
			Body:  clip(body, rows),
			Help:  "Enter: Continue  Esc: Change file  q: Quit",
		}

	case session.ValidationFailed:
		return Screen{
			Title: "Validation Failed",
			Body: clip([]Line{
				{Text: "✗ Invalid save file", Style: Error},
				{},
				{Text: "Error:", Style: Heading},
				{Text: st.Err.Error()},
				{},
				{Text: "Please select a valid Bloodborne save file."},
			}, rows),
			Help: "Enter/Esc: Go back  q: Quit",
		}

	case session.Selecting, session.Searching:
		return locations(s, rows)

	case session.Confirming:
		dest := s.Destination()
		body := []Line{{Text: "Teleport to:", Style: Heading}}
		body = append(body, destination(dest)...)
		body = append(body, Line{}, choice("Cancel", !s.ConfirmChosen()), choice("Confirm", s.ConfirmChosen()))
		return Screen{
			Title: "Confirm Teleport",
			Body:  clip(body, rows),
			Help:  "←/→: Choose  Enter: Accept  Esc: Back  q: Quit",
		}

	case session.Committing:
		return Screen{
			Title: "Teleporting",
			Body:  []Line{{Text: "Teleporting to " + s.Destination().Name + "..."}},
		}

	case session.Committed:
		body := []Line{
			{Text: "✓ Successfully teleported!", Style: Success},
			{},
			{Text: "Destination:", Style: Heading},
		}
		body = append(body, destination(s.Destination())...)
		body = append(body,
			Line{},
			Line{Text: "Your save file has been updated."},
			Line{Text: "Load your game to spawn at the new location!"})
		return Screen{
			Title: "Success!",
			Body:  clip(body, rows),
			Help:  "Enter: Teleport again  Esc: Change file  q: Quit",
		}

	case session.CommitFailed:
		return Screen{
			Title: "Teleport Failed",
			Body: clip([]Line{
				{Text: "✗ Teleport failed!", Style: Error},
				{},
				{Text: "Error:", Style: Heading},
				{Text: st.Err.Error()},
				{},
				{Text: "Your save file was not modified."},
			}, rows),
			Help: "Enter/Esc: Back to destinations  q: Quit",
		}

	default:
		panic(fmt.Sprintf("view: unknown state %T", st))
	}
}

func browsing(files Files, rows int) Screen {
	entries := files.Entries()
	// Directory and counter take two rows
	listRows := max(rows-2, 1)

	list := make([]Line, 0, len(entries))
	for i, e := range entries {
		name := e.Name
		if e.Dir {
			name += "/"
		}
		list = append(list, item(name, i == files.Cursor()))
	}

	body := []Line{
		{Text: files.Dir(), Style: Heading},
		{Text: fmt.Sprintf("Files (%d/%d)", min(files.Cursor()+1, len(entries)), len(entries))},
	}
	start, end := Window(len(list), files.Cursor(), listRows)
	return Screen{
		Title: "Select Save File",
		Body:  append(body, list[start:end]...),
		Help:  "↑/↓: Navigate  Enter: Select  q: Quit",
	}
}

func locations(s *session.Session, rows int) Screen {
	_, searching := s.State().(session.Searching)

	var search Line
	switch {
	case searching:
		search = Line{Text: "Search: " + s.Query() + "█", Style: Selected}
	case s.Query() != "":
		search = Line{Text: "Search: " + s.Query()}
	default:
		search = Line{Text: "Press / to search...", Style: Help}
	}

	total := s.Total()
	body := []Line{search, {Text: fmt.Sprintf("Locations (%d/%d)", min(s.Selected()+1, total), total)}}
	listRows := max(rows-len(body), 1)

	list := []Line{}
	at := 0
	n := 0
	for _, g := range s.Groups() {
		list = append(list, Line{Text: g.Region, Style: Heading})
		for _, loc := range g.Locations {
			if n == s.Selected() {
				at = len(list)
			}
			list = append(list, item(fmt.Sprintf("%v (X: %.2f, Y: %.2f, Z: %.2f)", loc.Name, loc.X, loc.Y, loc.Z), n == s.Selected()))
			n++
		}
	}
	if total == 0 {
		list = append(list, Line{Text: "No locations match", Style: Help})
	}

	// Keep the region heading above the first entry in view
	if at == 1 {
		at = 0
	}
	start, end := Window(len(list), at, listRows)

	help := "/: Search  ↑/↓: Navigate  Enter: Select  Esc: Change file  q: Quit"
	if searching {
		help = "Type to search  Enter: Confirm  Esc: Clear search  Ctrl-C: Quit"
	}
	return Screen{
		Title: "Select Destination",
		Body:  append(body, list[start:end]...),
		Help:  help,
	}
}

func item(text string, selected bool) Line {
	if selected {
		return Line{Text: Pointer + text, Style: Selected}
	}
	return Line{Text: Indent + text}
}

func choice(text string, chosen bool) Line {
	if chosen {
		return Line{Text: Pointer + "[ " + text + " ]", Style: Selected}
	}
	return Line{Text: Indent + "  " + text}
}

func position(p types.CurrentPosition) []Line {
	return []Line{
		{Text: fmt.Sprintf("Map ID: %02X%02X%02X%02X", p.Zone[0], p.Zone[1], p.Zone[2], p.Zone[3])},
		{Text: fmt.Sprintf("X: %.2f  Y: %.2f  Z: %.2f", p.X, p.Y, p.Z)},
	}
}

func destination(loc *types.Location) []Line {
	if loc == nil {
		return []Line{{Text: "Unknown"}}
	}
	return []Line{
		{Text: fmt.Sprintf("%v (%v)", loc.Name, loc.Region)},
		{Text: fmt.Sprintf("X: %.2f  Y: %.2f  Z: %.2f", loc.X, loc.Y, loc.Z)},
	}
}

func clip(lines []Line, rows int) []Line {
	if len(lines) > rows {
		return lines[:rows]
	}
	return lines
}

// Window picks the slice [start, end) of a list of total lines to show in rows lines, keeping
// line at near the middle where the ends of the list allow.
func Window(total, at, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := at - rows/2
	start = max(start, 0)
	start = min(start, total-rows)
	return start, start + rows
}

// Truncate shortens text to at most width terminal cells, marking the cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}
