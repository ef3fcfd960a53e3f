package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Mavwarf/tabicons/internal/applog"
	"github.com/Mavwarf/tabicons/internal/buildlog"
	"github.com/Mavwarf/tabicons/internal/config"
	"github.com/Mavwarf/tabicons/internal/icon"
	"github.com/Mavwarf/tabicons/internal/paths"
	"github.com/Mavwarf/tabicons/internal/raster"
)

const reinstallHint = "Reinstall with: go install github.com/Mavwarf/tabicons/cmd/tabicons@latest"

// Swapped out by tests.
var (
	probeBackend = raster.Probe
	openStore    = func() (buildlog.Store, error) {
		return buildlog.NewSQLiteStore(paths.LogDBPath())
	}
)

func generateCmd(v icon.Variant, opts options, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	applog.Init(stderr, cfg.Verbose)

	// The flat variant checks its drawing backend before touching any file.
	if v == icon.Simple {
		if err := probeBackend(); err != nil {
			applog.Error(err)
			fmt.Fprintf(stderr, "Error: raster backend is not available.\n")
			fmt.Fprintln(stderr, reinstallHint)
			return 1
		}
	}

	var store buildlog.Store
	if cfg.Log {
		s, err := openStore()
		if err != nil {
			applog.Warnf("generation log disabled: %v", err)
			fmt.Fprintf(stderr, "buildlog: %v\n", err)
		} else {
			store = s
			defer s.Close()
		}
	}

	icons := cfg.Icons(v)
	applog.Run(string(v), cfg.OutDir, len(icons))
	if err := generate(v, cfg.OutDir, icons, store, stdout, stderr); err != nil {
		applog.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	printSummary(stdout, v, icons, isTerminal(stdout))
	return 0
}

// generate renders and writes each icon in order. The first write error
// stops the run. Log failures are reported and ignored.
func generate(v icon.Variant, outDir string, icons []config.Icon, store buildlog.Store, stdout, stderr io.Writer) error {
	for _, ic := range icons {
		start := time.Now()
		img := icon.Render(v, ic.Size)
		out, err := icon.WriteFile(paths.OutputPath(outDir, ic.File), img)
		if err != nil {
			return err
		}
		applog.Icon(string(v), out.Path, ic.Size, out.Bytes, time.Since(start))

		if v == icon.Fancy {
			fmt.Fprintf(stdout, "Created fancy icon: %s\n", out.Path)
		} else {
			fmt.Fprintf(stdout, "Created %s\n", out.Path)
		}

		if store != nil {
			rec := buildlog.Record{
				Variant: string(v),
				File:    out.Path,
				Size:    ic.Size,
				Bytes:   out.Bytes,
				SHA256:  out.SHA256,
			}
			if err := store.Record(rec); err != nil {
				fmt.Fprintf(stderr, "buildlog: %v\n", err)
			}
		}
	}
	return nil
}

func printSummary(w io.Writer, v icon.Variant, icons []config.Icon, decorate bool) {
	mark := func(emoji string) string {
		if decorate {
			return emoji + " "
		}
		return ""
	}
	fmt.Fprintln(w)
	if v == icon.Simple {
		fmt.Fprintln(w, "Icons created successfully!")
		fmt.Fprintln(w, "You can now load the extension in Firefox.")
		return
	}
	fmt.Fprintf(w, "%sAll fancy icons created successfully!\n", mark("✅"))
	fmt.Fprintf(w, "%sIcon sizes: %s\n", mark("📦"), sizesLine(icons))
	fmt.Fprintf(w, "%sDesign: Modern gradient with browser tab and link symbol\n", mark("🎨"))
}

// sizesLine formats the table's sizes as "16x16, 32x32, ...".
func sizesLine(icons []config.Icon) string {
	parts := make([]string, len(icons))
	for i, ic := range icons {
		parts[i] = fmt.Sprintf("%dx%d", ic.Size, ic.Size)
	}
	return strings.Join(parts, ", ")
}
