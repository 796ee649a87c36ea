package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampFormat is the layout of ledger timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// Kind classifies the channel a transaction came through.
type Kind string

const (
	KindBank             Kind = "bank"
	KindPeerToPeer       Kind = "peer-to-peer"
	KindMerchant         Kind = "merchant"
	KindAPI              Kind = "api"
	KindInternalPurchase Kind = "internal-purchase"
	KindUnknown          Kind = "unknown"

	// KindAny matches every kind when used as an aggregation filter.
	// It is never stored in a ledger.
	KindAny Kind = ""
)

// Kinds lists every storable kind.
var Kinds = []Kind{
	KindBank,
	KindPeerToPeer,
	KindMerchant,
	KindAPI,
	KindInternalPurchase,
	KindUnknown,
}

// ValidKind reports whether k is a storable transaction kind.
func ValidKind(k Kind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Transaction is one row of the source ledger.
//
// Balance is the ledger's own snapshot of the account after this
// transaction was applied. It is authoritative and never recomputed
// from credit/debit deltas here, because the source does not guarantee
// rows are contiguous or complete.
type Transaction struct {
	ID           int
	Timestamp    time.Time
	Kind         Kind
	Counterparty string          // free text, may be empty
	Credit       decimal.Decimal // non-negative amount added
	Debit        decimal.Decimal // non-negative amount removed
	Balance      decimal.Decimal
	Description  string
}
