package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ledgerlens/ledgerlens/internal/commands"
)

func main() {
	// A missing .env is fine; it only supplies optional overrides like
	// LEDGERLENS_LEDGER.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
