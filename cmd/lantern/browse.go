package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"lantern/browser"
	"lantern/logging"
	"lantern/session"
	"lantern/term"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [dir]",
		Short: "Pick a save and a destination interactively",
		Long: `browse opens a full-screen picker: choose a save file, check where the character is, search
the lanterns and confirm the move.  Logs go to log_file if one is configured, and nowhere otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			return a.browse(cmd.Context(), dir)
		},
	}
}

func (a *app) browse(ctx context.Context, dir string) error {
	// The screen is ours; logging to stderr would scribble over it
	log, closer, err := logging.OpenFile(a.cfg.LogFile, a.cfg.Logging())
	if err != nil {
		return err
	}
	defer closer.Close()
	a.log = log

	pal, err := a.cfg.UI.Palette()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	files, err := browser.New(dir, log)
	if err != nil {
		return err
	}
	watcher, err := browser.NewWatcher(log)
	if err != nil {
		// Browsing still works, the listing just won't update by itself
		log.Warn(ctx, "directory watching unavailable", logging.Err(err))
		watcher = nil
	} else {
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sess := session.New(files, a.store(), log)
	log.Info(ctx, "browsing", logging.String("dir", files.Dir()))
	return term.Run(ctx, screen, sess, files, watcher, term.Options{Tick: a.cfg.UI.Tick, Palette: pal, Log: log})
}
