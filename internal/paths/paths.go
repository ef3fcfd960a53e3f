package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "tabicons"
	ConfigFileName = "tabicons-config.json"
	LogDBFileName  = "tabicons.db"
	DirPerm        = 0755
	FilePerm       = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed. An existing
// file at path is replaced.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for tabicons:
//   - Windows: %APPDATA%\tabicons
//   - Unix:    ~/.config/tabicons
//
// Falls back to os.TempDir()/tabicons if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// LogDBPath returns the generation log database location.
func LogDBPath() string {
	return filepath.Join(DataDir(), LogDBFileName)
}

// OutputPath joins an icon file name onto the output directory. An empty
// dir means the current working directory.
func OutputPath(dir, file string) string {
	if dir == "" {
		return file
	}
	return filepath.Join(dir, file)
}
