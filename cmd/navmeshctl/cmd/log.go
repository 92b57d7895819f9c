package cmd

import (
	"log"
	"os"
)

// logger is the package-wide logger every subcommand reports through, using
// the standard library's log.Logger rather than a third-party structured
// logger (see DESIGN.md).
var logger = log.New(os.Stderr, "navmeshctl: ", 0)
