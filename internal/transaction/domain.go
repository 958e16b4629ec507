package transaction

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind classifies a transaction as money coming in or going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ParseKind validates a wire-format kind string against the closed set.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: type must be 'income' or 'expense', got '%s'", ErrInvalidInput, s)
}

// Transaction is the persisted entity. The ID is assigned by the storage
// layer at insert time and never reused after deletion.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Description string             `bson:"description"`
	Amount      float64            `bson:"amount"`
	Type        Kind               `bson:"type"`
	DateTime    time.Time          `bson:"dateTime"`
}

// Record is the wire representation of a Transaction. The identifier is the
// hex form of the storage ObjectID and the timestamp marshals as RFC 3339.
type Record struct {
	ID          string    `json:"_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	DateTime    time.Time `json:"dateTime"`
}

// CreateInput carries raw, unvalidated creation data as received on the wire.
type CreateInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	DateTime    string  `json:"dateTime"`
}
