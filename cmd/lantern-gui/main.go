// lantern-gui is the windowed version of "lantern browse".
package main

// Colours and window size come from the [ui] section of lantern.ini.

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"

	"github.com/gopxl/pixel/v2"
	"github.com/gopxl/pixel/v2/backends/opengl"
	"github.com/gopxl/pixel/v2/ext/text"

	"lantern/browser"
	"lantern/config"
	"lantern/logging"
	"lantern/savefile"
	"lantern/session"
	"lantern/view"
)

// basicfont only has Latin-1
var plain = strings.NewReplacer(
	view.Pointer, "> ",
	"✓", "+",
	"✗", "x",
	"█", "_",
	"…", "...",
	"←/→", "Left/Right",
	"↑/↓", "Up/Down",
)

func main() {
	// OpenGL must have the main thread
	opengl.Run(func() {
		if err := newRootCmd().Execute(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	})
}

func newRootCmd() *cobra.Command {
	var configPath, dir string
	cmd := &cobra.Command{
		Use:           "lantern-gui [dir]",
		Short:         "Pick a save and a lantern in a window",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Path(configPath))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dir") {
				cfg.Dir = dir
			}
			if len(args) == 1 {
				cfg.Dir = args[0]
			}
			return run(context.Background(), cfg)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default $"+config.FileEnv+" or "+config.DefaultFile+")")
	cmd.Flags().StringVar(&dir, "dir", "", "directory to start browsing in")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	// superconstants
	const LINE_HEIGHT = 13 // because hard-coded basicfont.Face7x13
	const CHAR_WIDTH = 7
	const BORDER = 10

	log, closer, err := logging.OpenFile(cfg.LogFile, cfg.Logging())
	if err != nil {
		return err
	}
	defer closer.Close()

	pal, err := cfg.UI.Palette()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	styles := map[view.Style]color.RGBA{
		view.Plain:    {0xDD, 0xDD, 0xDD, 0xFF},
		view.Title:    pal.Title,
		view.Heading:  pal.Title,
		view.Selected: pal.Selected,
		view.Error:    pal.Error,
		view.Success:  pal.Success,
		view.Help:     {0x88, 0x88, 0x88, 0xFF},
	}

	files, err := browser.New(cfg.Dir, log)
	if err != nil {
		return err
	}
	var changes <-chan string
	watcher, err := browser.NewWatcher(log)
	if err != nil {
		log.Warn(ctx, "directory watching unavailable", logging.Err(err))
	} else {
		defer watcher.Close()
		changes = watcher.Changes()
		if err := watcher.Watch(files.Dir()); err != nil {
			log.Warn(ctx, "not watching directory", logging.String("dir", files.Dir()), logging.Err(err))
		}
	}

	store := savefile.NewStore(log, savefile.Options{Backup: cfg.Backup})
	sess := session.New(files, store, log)

	win, err := opengl.NewWindow(opengl.WindowConfig{
		Title:  "Lantern Teleport",
		Bounds: pixel.R(0, 0, cfg.UI.Width, cfg.UI.Height),
		VSync:  true,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	txt := text.New(pixel.V(BORDER, cfg.UI.Height-BORDER-LINE_HEIGHT), atlas)

	for !win.Closed() && !sess.Done() {
		h := win.Bounds().H()
		cols := int((win.Bounds().W() - 2*BORDER) / CHAR_WIDTH)
		// title, gap, body, gap, help
		rows := int((h-2*BORDER)/LINE_HEIGHT) - 4

		// DRAWING STARTS HERE
		sc := view.Render(sess, files, rows)
		txt.Orig = pixel.V(BORDER, h-BORDER-LINE_HEIGHT)
		txt.Clear()
		line := func(s string, style view.Style) {
			txt.Color = styles[style]
			fmt.Fprintln(txt, view.Truncate(plain.Replace(s), cols))
		}
		line("Lantern Teleport - "+sc.Title, view.Title)
		line("", view.Plain)
		for _, l := range sc.Body {
			line(l.Text, l.Style)
		}
		line("", view.Plain)
		line(sc.Help, view.Help)

		win.Clear(pal.Background)
		txt.Draw(win, pixel.IM)
		win.Update()
		// DRAWING ENDS HERE

		if sess.Pending() {
			sess.Advance(ctx)
			continue
		}

		dir := files.Dir()
		handleInput(ctx, win, sess)
		if watcher != nil && files.Dir() != dir {
			if err := watcher.Watch(files.Dir()); err != nil {
				log.Warn(ctx, "not watching directory", logging.String("dir", files.Dir()), logging.Err(err))
			}
		}

		select {
		case changed := <-changes:
			if changed == files.Dir() {
				if err := files.Refresh(); err != nil {
					log.Warn(ctx, "could not refresh directory", logging.String("dir", changed), logging.Err(err))
				}
			}
		default:
		}
	}
	return nil
}

// handleInput feeds this frame's input to the session.  Held keys repeat.
func handleInput(ctx context.Context, win *opengl.Window, sess *session.Session) {
	ctrl := win.Pressed(pixel.KeyLeftControl) || win.Pressed(pixel.KeyRightControl)
	if ctrl && win.JustPressed(pixel.KeyC) {
		sess.Handle(ctx, session.Do(session.Quit))
		return
	}

	for _, k := range []struct {
		button pixel.Button
		kind   session.Kind
	}{
		{pixel.KeyUp, session.Up},
		{pixel.KeyDown, session.Down},
		{pixel.KeyLeft, session.Left},
		{pixel.KeyRight, session.Right},
		{pixel.KeyEnter, session.Enter},
		{pixel.KeyKPEnter, session.Enter},
		{pixel.KeyEscape, session.Escape},
		{pixel.KeyBackspace, session.Backspace},
	} {
		if win.JustPressed(k.button) || win.Repeated(k.button) {
			sess.Handle(ctx, session.Do(k.kind))
		}
	}

	// "/abc" typed in one frame starts a search and then fills it in
	for _, r := range win.Typed() {
		sess.Handle(ctx, typed(r, sess.TextEntry()))
	}
}

func typed(r rune, textEntry bool) session.Action {
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
