package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/gitops"
	"github.com/ledgerlens/ledgerlens/internal/importer"
	"github.com/ledgerlens/ledgerlens/internal/ledger"
)

func newImportCommand() *cobra.Command {
	var ledgerPath string
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement export into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], resolveLedgerPath(ledgerPath), format)
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (default from config or $LEDGERLENS_LEDGER)")
	cmd.Flags().StringVar(&format, "format", "statement", "statement format")

	return cmd
}

func runImport(cmd *cobra.Command, srcPath, ledgerPath, format string) error {
	registry := importer.DefaultRegistry()
	parser := registry.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown format %q (have: %s)", format, strings.Join(registry.Formats(), ", "))
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening statement %s: %w", srcPath, err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", srcPath, err)
	}
	if len(txns) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to import")
		return nil
	}

	svc := ledger.NewService(ledgerPath)
	nextID, err := svc.NextID()
	if err != nil {
		return err
	}
	for i := range txns {
		txns[i].ID = nextID + i
	}

	if err := svc.Append(txns); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d transactions into %s\n", len(txns), ledgerPath)

	cfg := loadConfig()
	repoDir := filepath.Dir(ledgerPath)
	if cfg.Git.AutoCommit && gitops.IsRepo(repoDir) {
		msg := fmt.Sprintf("import: %d transactions from %s", len(txns), filepath.Base(srcPath))
		hash, err := gitops.CommitFiles(repoDir, []string{filepath.Base(ledgerPath)}, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("auto-commit: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "committed %s\n", hash)
	}
	return nil
}
