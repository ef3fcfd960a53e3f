package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"

	"github.com/Mavwarf/tabicons/internal/config"
	"github.com/Mavwarf/tabicons/internal/icon"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// options holds values parsed from command-line flags. Empty/false values
// leave the config file and environment in charge.
type options struct {
	ConfigPath string
	OutDir     string
	Log        bool
	Verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	// Parse flags
	var filtered []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 >= len(args) {
				fmt.Fprintf(stderr, "Error: --out requires a directory\n")
				return 1
			}
			opts.OutDir = args[i+1]
			i++
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintf(stderr, "Error: --config requires a file path\n")
				return 1
			}
			opts.ConfigPath = args[i+1]
			i++
		case "--log":
			opts.Log = true
		case "--verbose":
			opts.Verbose = true
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) == 0 {
		return generateCmd(icon.Fancy, opts, stdout, stderr)
	}

	switch filtered[0] {
	case "fancy", "simple":
		if len(filtered) > 1 {
			fmt.Fprintf(stderr, "Error: unexpected argument %q\n", filtered[1])
			return 1
		}
		return generateCmd(icon.Variant(filtered[0]), opts, stdout, stderr)
	case "list", "-l", "--list":
		return listCmd(opts, stdout, stderr)
	case "history":
		return historyCmd(filtered[1:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "version", "-V", "--version":
		fmt.Fprintf(stdout, "tabicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
		return 0
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(stderr, "Run 'tabicons help' for usage.\n")
		return 1
	}
}

// loadConfig reads the config and applies command-line overrides on top.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.OutDir != "" {
		cfg.OutDir = opts.OutDir
	}
	cfg.Log = cfg.Log || opts.Log
	cfg.Verbose = cfg.Verbose || opts.Verbose
	return cfg, nil
}

func listCmd(opts options, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	for _, v := range []icon.Variant{icon.Fancy, icon.Simple} {
		fmt.Fprintf(stdout, "%s:\n", v)
		for _, ic := range cfg.Icons(v) {
			fmt.Fprintf(stdout, "  %-20s %dx%d\n", ic.File, ic.Size, ic.Size)
		}
	}
	return 0
}

// isTerminal reports whether w is a terminal; summaries are decorated only
// for interactive use.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "tabicons %s - Generate the new-tab extension's toolbar icons\n", version)
	fmt.Fprintln(w, `
Usage:
  tabicons [options] [fancy|simple]
  tabicons history [N|clear]

Options:
  --out, -o <dir>        Output directory (default: current directory)
  --config, -c <path>    Path to tabicons-config.json
  --log                  Record written icons in the generation log
  --verbose              Print diagnostics to stderr

Commands:
  fancy                  Gradient icons: 16, 32, 48, 96 and 128 px (default)
  simple                 Flat placeholder icons: 48 and 96 px
  list, -l, --list       List the configured icon tables
  history [N|clear]      Show the last N logged icons (default 20), or clear the log
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>                          (explicit)
  2. tabicons-config.json next to binary      (portable)
  3. ~/.config/tabicons/tabicons-config.json  (user default)
  4. built-in tables

Environment:
  TABICONS_OUT_DIR, TABICONS_LOG, TABICONS_VERBOSE

Examples:
  tabicons                         Write the fancy icons here
  tabicons simple -o icons         Write the placeholders into ./icons
  tabicons --log fancy             Generate and record the run`)
}
