package main

import (
	"os"

	"github.com/prsweep/sweepctl/internal/cli"
	"github.com/prsweep/sweepctl/internal/logging"
)

// main is the entry point for the sweepctl CLI binary. Only fatal errors
// (validation or lookup failures) reach this point; mutation failures are
// downgraded to warnings inside the commands and exit zero.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
