// Command designs manages saved ship designs and run statistics.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"battleships/catalog"
	"battleships/config"
	"battleships/game"
	"battleships/logging"
	"battleships/script"
	"battleships/storage"

	"github.com/rs/zerolog"
)

const usage = `Usage: designs [flags] <command> [args]

Commands:
  list                 list saved designs
  import <file>...     validate and save design files
  export <name> [dir]  write a saved design to dir (default .)
  delete <name>        remove a saved design
  stats                show statistics per mode and the latest runs
  check-script <file>  validate an AI target script

Flags:
`

type tool struct {
	store *storage.Store
	parts game.Catalog
	out   io.Writer
	log   zerolog.Logger
}

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	settings, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, closer, err := logging.New(logging.Options{Level: settings.LogLevel, Console: os.Stderr})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cmd, args := flag.Arg(0), flag.Args()[1:]

	// check-script needs no database
	if cmd == "check-script" {
		if err := checkScripts(os.Stdout, args); err != nil {
			log.Error().Err(err).Msg("Script check failed")
			os.Exit(1)
		}
		return
	}

	store, err := storage.Open(settings.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	t := &tool{
		store: store,
		parts: catalog.Load(settings.CatalogPath, log),
		out:   os.Stdout,
		log:   log,
	}
	if err := t.run(cmd, args); err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("Command failed")
		store.Close()
		os.Exit(1)
	}
}

func (t *tool) run(cmd string, args []string) error {
	switch cmd {
	case "list":
		return t.list()
	case "import":
		if len(args) == 0 {
			return errors.New("import needs at least one file")
		}
		for _, path := range args {
			if err := t.importFile(path); err != nil {
				return err
			}
		}
		return nil
	case "export":
		if len(args) == 0 {
			return errors.New("export needs a design name")
		}
		dir := "."
		if len(args) > 1 {
			dir = args[1]
		}
		_, err := t.export(args[0], dir)
		return err
	case "delete":
		if len(args) == 0 {
			return errors.New("delete needs a design name")
		}
		if err := t.store.DeleteDesign(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(t.out, "deleted %s\n", args[0])
		return nil
	case "stats":
		return t.stats()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (t *tool) list() error {
	designs, err := t.store.ListDesigns()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTEAM\tSECTIONS\tHEALTH\tSAVED")
	for _, d := range designs {
		s, _ := game.BuildShip(d, t.parts, 1, game.Vec2{})
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f\t%s\n", d.Name, s.Team, len(s.Sections), s.MaxHealth, d.Timestamp)
	}
	return w.Flush()
}

// importFile saves a design after building it once against the catalog.
// Problems are reported but only an unreadable file aborts the import.
func (t *tool) importFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := game.ParseDesign(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = trimExt(filepath.Base(path))
	}
	t.log.Debug().Str("file", path).Str("design", d.Name).Msg("Importing design")
	_, warnings := game.BuildShip(d, t.parts, 1, game.Vec2{})
	for _, w := range warnings {
		fmt.Fprintf(t.out, "warning: %s: %v\n", d.Name, w)
	}
	if err := t.store.SaveDesign(d); err != nil {
		return err
	}
	fmt.Fprintf(t.out, "imported %s (%d sections)\n", d.Name, len(d.Sections))
	return nil
}

func (t *tool) export(name, dir string) (string, error) {
	d, err := t.store.LoadDesign(name)
	if err != nil {
		return "", err
	}
	data, err := d.Encode()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, game.DesignFileName(d.Name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(t.out, "exported %s to %s\n", name, path)
	return path, nil
}

func (t *tool) stats() error {
	all, err := t.store.AllStatistics()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tPLAYED\tKILLS\tHIGH SCORE\tBEST WAVE\tLONGEST")
	for _, st := range all {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.0fs\n", st.Mode, st.GamesPlayed, st.TotalKills, st.HighScore, st.BestWave, st.LongestSurvival)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	runs, err := t.store.RecentRuns(10)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}
	fmt.Fprintln(t.out)
	w = tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tMODE\tSCORE\tKILLS\tWAVE\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.0fs\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.Score, r.Kills, r.WaveReached, r.SurvivalTime)
	}
	return w.Flush()
}

func checkScripts(out io.Writer, paths []string) error {
	if len(paths) == 0 {
		return errors.New("check-script needs a file")
	}
	var failed error
	for _, path := range paths {
		code, err := os.ReadFile(path)
		if err == nil {
			err = script.Validate(path, string(code))
		}
		if err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			failed = errors.Join(failed, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", path)
	}
	return failed
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
