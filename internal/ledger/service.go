package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Service loads and saves a ledger file.
type Service struct {
	path string
}

// NewService creates a Service for the ledger at path.
func NewService(path string) *Service {
	return &Service{path: path}
}

// Path returns the ledger file path.
func (s *Service) Path() string {
	return s.path
}

// Load reads every transaction from the ledger file. A missing file is
// an empty ledger, not an error.
func (s *Service) Load() ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	return txns, nil
}

// Save writes the full ledger, replacing any existing file.
func (s *Service) Save(txns []model.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w", s.path, err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing ledger %s: %w", s.path, err)
	}
	return nil
}

// Append validates the new rows against the existing ledger and
// appends them, creating the file (with header) if needed.
func (s *Service) Append(txns []model.Transaction) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}

	all := append(existing, txns...)
	if verrs := Validate(all); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, txns); err != nil {
		return fmt.Errorf("appending transactions: %w", err)
	}
	return nil
}

// NextID returns the next free transaction ID (max existing + 1).
func (s *Service) NextID() (int, error) {
	txns, err := s.Load()
	if err != nil {
		return 0, err
	}

	maxID := 0
	for _, txn := range txns {
		if txn.ID > maxID {
			maxID = txn.ID
		}
	}
	return maxID + 1, nil
}
