package main

import (
	"os"
	"strconv"
)

// envColumns reads the COLUMNS fallback used when stdout is not a terminal.
func envColumns() int {
	if cols, ok := os.LookupEnv("COLUMNS"); ok {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
