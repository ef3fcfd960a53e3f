// mkicon renders a single icon of any size.
// Usage: go run ./cmd/mkicon [--simple] <size> <output.png>
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Mavwarf/tabicons/internal/icon"
)

func main() {
	v := icon.Fancy
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--simple" {
		v = icon.Simple
		args = args[1:]
	}
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: mkicon [--simple] <size> <output.png>\n")
		os.Exit(1)
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: size must be an integer\n")
		os.Exit(1)
	}
	out, err := icon.WriteFile(args[1], icon.Render(v, size))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s (%dx%d, %d bytes)\n", out.Path, size, size, out.Bytes)
}
