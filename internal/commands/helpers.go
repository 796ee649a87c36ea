package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/dateutil"
	"github.com/ledgerlens/ledgerlens/internal/ledger"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// loadConfig reads ledgerlens.yaml from the working directory, falling
// back to defaults when the file does not exist.
func loadConfig() *config.Config {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return config.Default("ledger.csv")
	}
	return cfg
}

// resolveLedgerPath picks the ledger file: the --ledger flag wins,
// then the LEDGERLENS_LEDGER environment variable, then the config
// file's path.
func resolveLedgerPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("LEDGERLENS_LEDGER"); env != "" {
		return env
	}
	return loadConfig().Ledger.Path
}

// loadTransactions loads and validates the resolved ledger.
func loadTransactions(ledgerFlag string) ([]model.Transaction, error) {
	svc := ledger.NewService(resolveLedgerPath(ledgerFlag))
	txns, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if verrs := ledger.Validate(txns); len(verrs) > 0 {
		return nil, fmt.Errorf("ledger %s is invalid: %v", svc.Path(), verrs[0])
	}
	return txns, nil
}

// parseAsOf turns the --as-of flag into a reference day. The empty
// string means today: this is the only place the engine's reference
// day falls back to the system clock.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	day, err := time.Parse(dateutil.DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --as-of %q: %w", s, err)
	}
	return day, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
