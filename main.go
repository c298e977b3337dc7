package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/godbus/dbus/v5"
)

var (
	playerFlag   string
	colorFlag    string
	maxWidthFlag int
	capacityFlag int
	verboseFlag  bool
)

func init() {
	flag.StringVar(&playerFlag, "player", "", "MPRIS player to query (default \"spotify\")")
	flag.StringVar(&playerFlag, "p", "", "MPRIS player to query (shorthand)")
	flag.StringVar(&colorFlag, "color", "", "Accent color for metadata keys (name or hex)")
	flag.StringVar(&colorFlag, "c", "", "Accent color (shorthand)")
	flag.IntVar(&maxWidthFlag, "max-width", 0, "Truncate track output to this many characters (0 = unlimited)")
	flag.IntVar(&capacityFlag, "capacity", 0, "Maximum number of metadata entries to keep")
	flag.BoolVar(&verboseFlag, "verbose", false, "Log dropped variant types and other decoder chatter")
}

func printUsage(w io.Writer) {
	bold := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w, bold.Render("nowplaying")+" - print a running media player's now-playing metadata")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  nowplaying [flags] <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  track     print \"<artist> - <title>\" for status bars")
	fmt.Fprintln(w, "  metadata  list every metadata key, type and value")
	fmt.Fprintln(w, "  color     print the cover art's dominant color as #rrggbb")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -p, --player     MPRIS player to query (default \"spotify\")")
	fmt.Fprintln(w, "  -c, --color      accent color for metadata keys")
	fmt.Fprintln(w, "      --max-width  truncate track output (0 = unlimited)")
	fmt.Fprintln(w, "      --capacity   maximum number of metadata entries to keep")
	fmt.Fprintln(w, "      --verbose    log dropped variant types")
}

func main() {
	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()
	setupLogger(verboseFlag)
	initConfig()

	src := NewMPRISSource(config.Get().Player.Name)
	os.Exit(run(flag.Args(), src, os.Stdout, os.Stderr))
}

// run dispatches the subcommand and returns the process exit code. The bus
// round trip happens exactly once, before any report logic; a bus failure is
// fatal and produces no partial output.
func run(args []string, src MetadataSource, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return 0
	}

	cmd := args[0]
	switch cmd {
	case "track", "metadata", "color":
	default:
		// Not treated as fatal: print the complaint plus usage and
		// exit clean, matching the reference tool.
		fmt.Fprintf(stderr, "ERROR: unknown command %q\n", cmd)
		printUsage(stderr)
		return 0
	}

	cfg := config.Get()

	meta, err := src.Metadata()
	if err != nil {
		if errors.Is(err, ErrPlayerNotRunning) {
			fmt.Fprintf(stderr, "ERROR: is %s running?\n", cfg.Player.Name)
		} else {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
		}
		return 1
	}

	store := NewStore(cfg.Store.Capacity)
	defer store.Reset()

	// The response dictionary is unordered and Go randomizes map
	// iteration, so sort keys for a stable report.
	for _, key := range sortedKeys(meta) {
		decodeInto(store, key, meta[key])
	}

	switch cmd {
	case "track":
		line, err := renderTrack(store, cfg.UI.MaxWidth)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, line)

	case "metadata":
		fmt.Fprint(stdout, renderMetadata(store, cfg.UI.Color))

	case "color":
		hex, err := renderArtColor(store, cfg.Artwork.WidthPixels)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, hex)
	}
	return 0
}

func sortedKeys(meta map[string]dbus.Variant) []string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
