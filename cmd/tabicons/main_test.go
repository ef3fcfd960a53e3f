package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/tabicons/internal/buildlog"
	"github.com/Mavwarf/tabicons/internal/config"
)

// setup isolates a test from user config and the real generation log.
func setup(t *testing.T) (cfgPath, outDir string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "tabicons-config.json")
	if err := os.WriteFile(cfgPath, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"TABICONS_OUT_DIR", "TABICONS_LOG", "TABICONS_VERBOSE"} {
		t.Setenv(key, "") // restores the original value on cleanup
		os.Unsetenv(key)
	}

	dbPath := filepath.Join(dir, "tabicons.db")
	origOpen := openStore
	openStore = func() (buildlog.Store, error) { return buildlog.NewSQLiteStore(dbPath) }
	t.Cleanup(func() { openStore = origOpen })

	return cfgPath, filepath.Join(dir, "out")
}

func checkPNG(t *testing.T, path string, size int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("%s: decode: %v", path, err)
	}
	if cfg.Width != size || cfg.Height != size {
		t.Errorf("%s: %dx%d, want %dx%d", path, cfg.Width, cfg.Height, size, size)
	}
}

func TestRunDefaultsToFancy(t *testing.T) {
	cfgPath, out := setup(t)
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-c", cfgPath, "-o", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	for _, ic := range config.FancyIcons {
		checkPNG(t, filepath.Join(out, ic.File), ic.Size)
	}

	got := stdout.String()
	if n := strings.Count(got, "Created fancy icon: "); n != 5 {
		t.Errorf("confirmation lines = %d, want 5:\n%s", n, got)
	}
	if !strings.Contains(got, "All fancy icons created successfully!") {
		t.Errorf("missing summary:\n%s", got)
	}
	if !strings.Contains(got, "Icon sizes: 16x16, 32x32, 48x48, 96x96, 128x128") {
		t.Errorf("missing sizes line:\n%s", got)
	}
	if strings.Contains(got, "✅") {
		t.Error("summary should not be decorated when stdout is not a terminal")
	}
}

func TestRunSimple(t *testing.T) {
	cfgPath, out := setup(t)
	var stdout, stderr bytes.Buffer

	if code := run([]string{"--config", cfgPath, "--out", out, "simple"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	checkPNG(t, filepath.Join(out, "icon-48.png"), 48)
	checkPNG(t, filepath.Join(out, "icon-96.png"), 96)
	if _, err := os.Stat(filepath.Join(out, "icon-16.png")); !os.IsNotExist(err) {
		t.Error("simple run should not write icon-16.png")
	}

	want := "Created " + filepath.Join(out, "icon-48.png") + "\n"
	if !strings.HasPrefix(stdout.String(), want) {
		t.Errorf("stdout = %q, want prefix %q", stdout.String(), want)
	}
	if !strings.Contains(stdout.String(), "You can now load the extension in Firefox.") {
		t.Errorf("missing simple summary:\n%s", stdout.String())
	}
}

func TestRunIsRepeatable(t *testing.T) {
	cfgPath, out := setup(t)
	var stdout, stderr bytes.Buffer

	run([]string{"-c", cfgPath, "-o", out}, &stdout, &stderr)
	first, err := os.ReadFile(filepath.Join(out, "icon-128.png"))
	if err != nil {
		t.Fatal(err)
	}
	if code := run([]string{"-c", cfgPath, "-o", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("second run exit %d: %s", code, stderr.String())
	}
	second, _ := os.ReadFile(filepath.Join(out, "icon-128.png"))
	if !bytes.Equal(first, second) {
		t.Error("re-running produced different bytes")
	}
}

func TestSimpleFailsWithoutBackend(t *testing.T) {
	cfgPath, out := setup(t)
	orig := probeBackend
	probeBackend = func() error { return errors.New("no rasterizer") }
	t.Cleanup(func() { probeBackend = orig })

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", cfgPath, "-o", out, "simple"}, &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected non-zero exit")
	}
	if !strings.Contains(stderr.String(), "raster backend is not available") ||
		!strings.Contains(stderr.String(), reinstallHint) {
		t.Errorf("stderr = %q, want message and install hint", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output should be written when the backend is missing")
	}
}

func TestFancyHasNoBackendGuard(t *testing.T) {
	cfgPath, out := setup(t)
	orig := probeBackend
	probeBackend = func() error { return errors.New("no rasterizer") }
	t.Cleanup(func() { probeBackend = orig })

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-c", cfgPath, "-o", out, "fancy"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
}

func TestWriteErrorIsFatal(t *testing.T) {
	cfgPath, out := setup(t)
	if err := os.WriteFile(out, []byte("a file, not a dir"), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-c", cfgPath, "-o", out}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: ") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "Created") {
		t.Error("nothing should be reported as created")
	}
}

func TestLogAndHistory(t *testing.T) {
	cfgPath, out := setup(t)
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-c", cfgPath, "-o", out, "--log", "simple"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}

	stdout.Reset()
	if code := run([]string{"history"}, &stdout, &stderr); code != 0 {
		t.Fatalf("history exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "icon-48.png") || !strings.Contains(stdout.String(), "icon-96.png") {
		t.Errorf("history output:\n%s", stdout.String())
	}

	stdout.Reset()
	run([]string{"history", "1"}, &stdout, &stderr)
	if strings.Contains(stdout.String(), "icon-48.png") || !strings.Contains(stdout.String(), "icon-96.png") {
		t.Errorf("history 1 should show only the latest icon:\n%s", stdout.String())
	}

	stdout.Reset()
	run([]string{"history", "clear"}, &stdout, &stderr)
	stdout.Reset()
	run([]string{"history"}, &stdout, &stderr)
	if !strings.Contains(stdout.String(), "No icons recorded") {
		t.Errorf("after clear:\n%s", stdout.String())
	}
}

func TestHistoryRejectsBadCount(t *testing.T) {
	setup(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"history", "-3"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
}

func TestRunArgumentErrors(t *testing.T) {
	tests := [][]string{
		{"--out"},
		{"--config"},
		{"bogus"},
		{"fancy", "extra"},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 1 {
			t.Errorf("run(%q) = %d, want 1", args, code)
		}
		if !strings.HasPrefix(stderr.String(), "Error: ") {
			t.Errorf("run(%q) stderr = %q", args, stderr.String())
		}
	}
}

func TestListCmd(t *testing.T) {
	cfgPath, _ := setup(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-c", cfgPath, "list"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"fancy:", "simple:", "icon-128.png", "128x128"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestSizesLine(t *testing.T) {
	if got := sizesLine(config.SimpleIcons); got != "48x48, 96x96" {
		t.Errorf("sizesLine = %q", got)
	}
	if got := sizesLine(nil); got != "" {
		t.Errorf("sizesLine(nil) = %q", got)
	}
}

func TestPrintSummaryDecorated(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, "fancy", config.FancyIcons, true)
	if !strings.Contains(buf.String(), "✅ All fancy icons created successfully!") {
		t.Errorf("decorated summary = %q", buf.String())
	}
	if !strings.Contains(buf.String(), "🎨 Design:") {
		t.Errorf("decorated summary = %q", buf.String())
	}
}
