package transaction

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no transaction exists for the given ID.
var ErrNotFound = errors.New("transaction not found")

// ErrUnavailable is returned when the storage backend cannot be reached in
// time. Callers may retry.
var ErrUnavailable = errors.New("storage unavailable")

// ErrWriteFailed is returned when the storage backend rejected a write for a
// reason other than connectivity. Not retried automatically.
var ErrWriteFailed = errors.New("storage write failed")

// Storage is the main interface for the transaction storage layer.
type Storage interface {
	// Insert persists a new transaction and returns its assigned identifier.
	Insert(ctx context.Context, txn *Transaction) (primitive.ObjectID, error)
	// GetAll returns every persisted transaction, unfiltered.
	GetAll(ctx context.Context) ([]*Transaction, error)
	// Delete reports whether a record was actually removed, so callers can
	// tell "nothing to delete" apart from a hard failure.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// LocalStorage provides an in-memory implementation for storing transactions.
// It preserves insertion order and is safe for concurrent use.
type LocalStorage struct {
	mu    sync.Mutex
	m     map[primitive.ObjectID]*Transaction
	order []primitive.ObjectID
}

// NewLocalStorage instantiates a new LocalStorage with an empty collection.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[primitive.ObjectID]*Transaction{},
	}
}

// Insert stores a copy of the transaction under a freshly generated ID.
func (l *LocalStorage) Insert(_ context.Context, txn *Transaction) (primitive.ObjectID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := primitive.NewObjectID()
	stored := *txn
	stored.ID = id
	l.m[id] = &stored
	l.order = append(l.order, id)
	return id, nil
}

// GetAll retrieves all transactions in insertion order.
func (l *LocalStorage) GetAll(_ context.Context) ([]*Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	transactions := make([]*Transaction, 0, len(l.order))
	for _, id := range l.order {
		txn := *l.m[id]
		transactions = append(transactions, &txn)
	}
	return transactions, nil
}

// Delete removes the transaction if present and reports whether it existed.
func (l *LocalStorage) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.m[id]; !ok {
		return false, nil
	}
	delete(l.m, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true, nil
}
