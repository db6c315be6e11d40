package entity

import "time"

// WalletLedgerEntry is one append-only movement on a user's wallet.
// Amount is expressed in minor currency units.
type WalletLedgerEntry struct {
	ID         string     `json:"id" yaml:"id"`
	UserID     string     `json:"userId" yaml:"userId"`
	Type       string     `json:"type" yaml:"type"`
	Amount     int64      `json:"amount" yaml:"amount"`
	Currency   string     `json:"currency,omitempty" yaml:"currency"`
	CreatedAt  time.Time  `json:"createdAt" yaml:"createdAt"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes"`
}

func (w WalletLedgerEntry) RecordID() string { return w.ID }

func (w WalletLedgerEntry) RecordCreatedAt() time.Time { return w.CreatedAt }

func (w WalletLedgerEntry) Clone() WalletLedgerEntry {
	w.Attributes = CloneAttributes(w.Attributes)

	return w
}
