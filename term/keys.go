package term

import (
	"github.com/gdamore/tcell/v2"

	"lantern/session"
)

// Decode maps a key press to a session action.  In text entry every printable rune is text,
// so Ctrl-C is the only way out from there.
func Decode(ev *tcell.EventKey, textEntry bool) session.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return session.Do(session.Quit)
	case tcell.KeyUp:
		return session.Do(session.Up)
	case tcell.KeyDown:
		return session.Do(session.Down)
	case tcell.KeyLeft:
		return session.Do(session.Left)
	case tcell.KeyRight:
		return session.Do(session.Right)
	case tcell.KeyEnter:
		return session.Do(session.Enter)
	case tcell.KeyEscape:
		return session.Do(session.Escape)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return session.Do(session.Backspace)
	case tcell.KeyRune:
		// handled below
	default:
		return session.Do(session.None)
	}

	r := ev.Rune()
	if textEntry {
		return session.Type(r)
	}
	switch r {
	case 'q', 'Q':
		return session.Do(session.Quit)
	case 'k':
		return session.Do(session.Up)
	case 'j':
		return session.Do(session.Down)
	case 'h':
		return session.Do(session.Left)
	case 'l':
		return session.Do(session.Right)
	case '/':
		return session.Do(session.Search)
	}
	return session.Do(session.None)
}
