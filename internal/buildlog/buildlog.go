// Package buildlog records every icon file the generator writes.
package buildlog

import (
	"fmt"
	"strings"
	"time"
)

// Record is one written icon.
type Record struct {
	Time    time.Time
	Variant string
	File    string
	Size    int
	Bytes   int
	SHA256  string
}

// Store abstracts generation log storage.
type Store interface {
	Record(r Record) error
	Entries(limit int) ([]Record, error) // oldest first; 0 = all
	Clear() error
	Path() string
	Close() error
}

// Format renders records as an aligned table, one per line.
func Format(records []Record) string {
	if len(records) == 0 {
		return "No icons recorded.\n"
	}
	var b strings.Builder
	for _, r := range records {
		sum := r.SHA256
		if len(sum) > 12 {
			sum = sum[:12]
		}
		fmt.Fprintf(&b, "%s  %-6s  %4dpx  %7d B  %s  %s\n",
			r.Time.Local().Format("2006-01-02 15:04:05"), r.Variant, r.Size, r.Bytes, sum, r.File)
	}
	return b.String()
}
