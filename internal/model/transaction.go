package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction represents a single finalized expense record.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	ID          string
	Merchant    string
	Description string
	Notes       string
	RawOCRText  string
	Hash        string
	Tags        []string
	Amount      float64
	CategoryID  int
}

// GenerateHash creates a stable hash for duplicate detection across
// repeated imports of the same data.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Merchant,
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
