package ledger

import (
	"fmt"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// ValidationError describes a single bad transaction row.
type ValidationError struct {
	ID          int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("transaction %d: %s", e.ID, e.Description)
}

// Validate checks a loaded ledger for semantic problems: duplicate
// IDs, unknown kinds, and negative amounts. Parse-level problems
// (bad dates, non-numeric amounts) are rejected earlier, at read time.
func Validate(txns []model.Transaction) []ValidationError {
	var errs []ValidationError

	seen := make(map[int]bool, len(txns))
	for _, txn := range txns {
		if seen[txn.ID] {
			errs = append(errs, ValidationError{
				ID:          txn.ID,
				Description: "duplicate transaction ID",
			})
		}
		seen[txn.ID] = true

		if !model.ValidKind(txn.Kind) {
			errs = append(errs, ValidationError{
				ID:          txn.ID,
				Description: fmt.Sprintf("unknown kind %q", txn.Kind),
			})
		}

		if txn.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				ID:          txn.ID,
				Description: fmt.Sprintf("negative credit %s", txn.Credit),
			})
		}
		if txn.Debit.IsNegative() {
			errs = append(errs, ValidationError{
				ID:          txn.ID,
				Description: fmt.Sprintf("negative debit %s", txn.Debit),
			})
		}
	}

	return errs
}
