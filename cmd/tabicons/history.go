package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Mavwarf/tabicons/internal/buildlog"
)

func historyCmd(args []string, stdout, stderr io.Writer) int {
	count := 20
	wipe := false
	if len(args) > 0 {
		if args[0] == "clear" {
			wipe = true
		} else {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				fmt.Fprintf(stderr, "Error: count must be a positive integer\n")
				return 1
			}
			count = n
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer store.Close()

	if wipe {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "Generation log cleared.")
		return 0
	}

	records, err := store.Entries(count)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if len(records) == 0 {
		fmt.Fprintln(stdout, "No icons recorded. Enable logging with --log or \"log\": true in config.")
		return 0
	}
	fmt.Fprint(stdout, buildlog.Format(records))
	return 0
}
