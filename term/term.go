// Package term runs a session in a terminal.
package term

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lantern/browser"
	"lantern/config"
	"lantern/logging"
	"lantern/session"
	"lantern/view"
)

const appTitle = "Lantern Teleport"

type Options struct {
	Tick    time.Duration
	Palette config.Palette
	Log     logging.Logger
}

// Run draws and drives sess on screen until the session is done or ctx is cancelled.
// The caller owns the screen: Init before, Fini after.  watcher may be nil.
func Run(ctx context.Context, screen tcell.Screen, sess *session.Session, files *browser.Browser, watcher *browser.Watcher, opts Options) error {
	log := opts.Log
	if log == nil {
		log = logging.Noop()
	}
	if opts.Tick <= 0 {
		opts.Tick = 250 * time.Millisecond
	}

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	var changes <-chan string
	if watcher != nil {
		changes = watcher.Changes()
		follow(ctx, log, watcher, files.Dir())
	}

	ticker := time.NewTicker(opts.Tick)
	defer ticker.Stop()

	for !sess.Done() {
		Draw(screen, view.Render(sess, files, bodyRows(screen)), opts.Palette)

		// Validating and Committing only exist to be drawn once
		if sess.Pending() {
			sess.Advance(ctx)
			continue
		}

		select {
		case <-ctx.Done():
			log.Info(ctx, "interrupted")
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				dir := files.Dir()
				sess.Handle(ctx, Decode(ev, sess.TextEntry()))
				if watcher != nil && files.Dir() != dir {
					follow(ctx, log, watcher, files.Dir())
				}
			}

		case dir, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if dir != files.Dir() {
				continue
			}
			if err := files.Refresh(); err != nil {
				log.Warn(ctx, "could not refresh directory", logging.String("dir", dir), logging.Err(err))
			}

		case <-ticker.C:
			sess.Handle(ctx, session.Do(session.Tick))
		}
	}
	return nil
}

func follow(ctx context.Context, log logging.Logger, watcher *browser.Watcher, dir string) {
	if err := watcher.Watch(dir); err != nil {
		log.Warn(ctx, "not watching directory", logging.String("dir", dir), logging.Err(err))
	}
}

// title, blank line, body, help
func bodyRows(screen tcell.Screen) int {
	_, h := screen.Size()
	return max(h-3, 1)
}

// Draw paints one frame.
func Draw(screen tcell.Screen, sc view.Screen, pal config.Palette) {
	base := tcell.StyleDefault.Background(rgb(pal.Background))
	styles := map[view.Style]tcell.Style{
		view.Plain:    base,
		view.Title:    base.Foreground(rgb(pal.Title)).Bold(true),
		view.Heading:  base.Foreground(rgb(pal.Title)),
		view.Selected: base.Foreground(rgb(pal.Selected)).Bold(true),
		view.Error:    base.Foreground(rgb(pal.Error)),
		view.Success:  base.Foreground(rgb(pal.Success)),
		view.Help:     base.Dim(true),
	}

	screen.SetStyle(base)
	screen.Clear()
	w, h := screen.Size()

	put(screen, 0, " "+appTitle+" - "+sc.Title+" ", w, styles[view.Title])
	for i, line := range sc.Body {
		y := i + 2
		if y >= h-1 {
			break
		}
		put(screen, y, line.Text, w, styles[line.Style])
	}
	if h > 1 {
		put(screen, h-1, sc.Help, w, styles[view.Help])
	}
	screen.Show()
}

func put(screen tcell.Screen, y int, text string, width int, style tcell.Style) {
	x := 0
	for _, r := range view.Truncate(text, width) {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
