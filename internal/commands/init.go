package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/gitops"
	"github.com/ledgerlens/ledgerlens/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var ledgerName string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgerlens project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, ledgerName, useGit)
		},
	}

	cmd.Flags().StringVar(&ledgerName, "ledger", "ledger.csv", "ledger file name")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and enable auto-commit")

	return cmd
}

func runInit(cmd *cobra.Command, dir, ledgerName string, useGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(ledgerName)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// An empty ledger is a header-only file.
	svc := ledger.NewService(filepath.Join(dir, ledgerName))
	if err := svc.Save(nil); err != nil {
		return err
	}

	if useGit && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "initialized ledgerlens project in %s\n", dir)
	return nil
}
