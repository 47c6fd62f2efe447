// lantern moves a Bloodborne character to any lantern by rewriting their save file.
//
//	lantern userdata0000 -l "central yharnam"
//	lantern --list
//	lantern show userdata0000
//	lantern browse ~/saves
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"lantern/config"
	"lantern/logging"
	"lantern/savefile"
	"lantern/tables"
	"lantern/types"
	"lantern/writers"
)

var errNoSave = errors.New("no save file provided\nUse --help for usage information")

// app is what the flags and config resolve to; every subcommand works from it.
type app struct {
	configPath string
	dir        string
	backup     bool
	location   string
	list       bool

	cfg config.Config
	log logging.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lantern [save-file]",
		Short: "Teleport to any lantern in a Bloodborne save file",
		Long: `lantern rewrites a Bloodborne save so that the character is standing at a lantern of your choosing.

Point it at userdata0000, userdata0001, etc. in your save directory: userdata0000 is your first
character, userdata0001 your second, and so on.  Without --location the character goes to the
Hunter's Dream.  Close the game before teleporting.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, errOut)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.list {
				printList(out)
				return nil
			}
			if len(args) == 0 {
				return errNoSave
			}
			return a.teleport(cmd.Context(), out, errOut, args[0])
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $"+config.FileEnv+" or "+config.DefaultFile+")")
	pf.StringVar(&a.dir, "dir", "", "directory that relative save paths and browsing start from")
	pf.BoolVar(&a.backup, "backup", false, "copy the save to <save>.bak before changing it")

	f := root.Flags()
	f.StringVarP(&a.location, "location", "l", "", "where to go; any unambiguous part of a location name")
	f.BoolVar(&a.list, "list", false, "list every location and exit")

	root.AddCommand(newShowCmd(a, out), newBrowseCmd(a))
	return root
}

// setup layers flags over config file and environment, then builds the logger.
func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	cfg, err := config.Load(config.Path(a.configPath))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dir") {
		cfg.Dir = a.dir
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backup = a.backup
	}
	a.cfg = cfg

	lc := cfg.Logging()
	lc.Output = errOut
	a.log = logging.New(lc)
	return nil
}

func (a *app) store() *savefile.Store {
	return savefile.NewStore(a.log, savefile.Options{Backup: a.cfg.Backup})
}

func (a *app) savePath(arg string) string {
	if filepath.IsAbs(arg) {
		return arg
	}
	return filepath.Join(a.cfg.Dir, arg)
}

func (a *app) teleport(ctx context.Context, out, errOut io.Writer, arg string) error {
	dest := tables.Default()
	if a.location != "" {
		var err error
		dest, err = tables.Resolve(a.location)
		var ambiguous *tables.AmbiguousError
		switch {
		case errors.As(err, &ambiguous):
			fmt.Fprintf(errOut, "Multiple matches found for %q:\n\n", a.location)
			for i, loc := range ambiguous.Matches {
				fmt.Fprintf(errOut, "  %d. %v (%v)\n", i+1, loc.Name, loc.Region)
			}
			fmt.Fprintln(errOut, "\nPlease provide a more specific location name.")
			return err
		case errors.Is(err, tables.ErrNoMatch):
			return fmt.Errorf("%w\nUse --list to see available locations", err)
		case err != nil:
			return err
		}
		fmt.Fprintf(out, "Found location: %v (X: %.2f, Y: %.2f, Z: %.2f)\n", dest.Name, dest.X, dest.Y, dest.Z)
	}

	path := a.savePath(arg)
	fmt.Fprintf(out, "Teleporting to: %v in %v\n", dest.Name, dest.Region)
	if err := a.store().Teleport(ctx, path, dest); err != nil {
		return fmt.Errorf("failed to teleport: %w", err)
	}

	fmt.Fprintf(out, "\nSuccessfully teleported to %v!\n", dest.Name)
	fmt.Fprintf(out, "Save file updated: %v\n", path)
	return nil
}

func printList(out io.Writer) {
	const rule = "============================"

	groups := tables.GroupByRegion(tables.Search(""))
	fmt.Fprintln(out, "\nAvailable teleport locations:")
	fmt.Fprintln(out, rule)
	for _, g := range groups {
		fmt.Fprintf(out, "\n%v\n", g.Region)
		fmt.Fprintln(out, "----------------------------")
		for _, loc := range g.Locations {
			fmt.Fprintf(out, "  - %v (X: %.2f, Y: %.2f, Z: %.2f)\n", loc.Name, loc.X, loc.Y, loc.Z)
		}
	}
	fmt.Fprintln(out, "\n"+rule)
	fmt.Fprintf(out, "Total: %d locations across %d regions\n", tables.Count(groups), len(groups))
}

func newShowCmd(a *app, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show save-file",
		Short: "Print where the character in a save currently is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.savePath(args[0])
			pos, err := a.store().Validate(cmd.Context(), path)
			if err != nil {
				return err
			}
			printPosition(out, path, pos)
			return nil
		},
	}
}

func printPosition(out io.Writer, path string, pos types.CurrentPosition) {
	fmt.Fprintf(out, "File: %v\n", path)
	fmt.Fprintf(out, "Map ID: %02X%02X%02X%02X\n", pos.Zone[0], pos.Zone[1], pos.Zone[2], pos.Zone[3])
	fmt.Fprintf(out, "X: %.2f  Y: %.2f  Z: %.2f\n", pos.X, pos.Y, pos.Z)
	for _, loc := range tables.All() {
		if pos.Zone == writers.ExpandZoneID(loc.Zone) {
			fmt.Fprintf(out, "Area: %v\n", loc.Region)
			return
		}
	}
}
