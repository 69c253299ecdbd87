package receipts

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DemoOwner is the owner label of simulated receipts
const DemoOwner = "Demo Owner"

// TimestampLayout renders mint times the way they are shown on a receipt card
const TimestampLayout = "1/2/2006, 3:04:05 PM"

var (
	// ErrInvalidTokenID is returned for lookups that are not a non-negative number
	ErrInvalidTokenID = errors.New("Please enter a valid token ID")
	// ErrNotFound is returned when no stored receipt has the token id
	ErrNotFound = errors.New("No receipt found for this token ID.")
)

// Record is a minted receipt as kept in local history
type Record struct {
	TokenID   string `json:"tokenId"`
	ItemName  string `json:"itemName"`
	Price     string `json:"price"`
	Timestamp string `json:"timestamp"`
	Owner     string `json:"owner"`

	ChainID string `json:"chainId,omitempty"`
	TxHash  string `json:"txHash,omitempty"`
}

// IsDemo reports whether the record came from the simulated path
func (r Record) IsDemo() bool {
	return r.Owner == DemoOwner
}

// ValidateTokenID checks that s is a number and not negative
func ValidateTokenID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrInvalidTokenID
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return ErrInvalidTokenID
	}
	return nil
}

// Find returns the first record whose token id is exactly id
func Find(records []Record, id string) (Record, error) {
	for _, r := range records {
		if r.TokenID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}
