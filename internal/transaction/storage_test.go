package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction(description string, kind Kind) *Transaction {
	return &Transaction{
		Description: description,
		Amount:      100,
		Type:        kind,
		DateTime:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLocalStorage_InsertAssignsFreshIDs(t *testing.T) {
	storage := NewLocalStorage()
	ctx := context.Background()

	first, err := storage.Insert(ctx, sampleTransaction("a", KindIncome))
	require.NoError(t, err)
	second, err := storage.Insert(ctx, sampleTransaction("b", KindExpense))
	require.NoError(t, err)

	assert.False(t, first.IsZero())
	assert.NotEqual(t, first, second)
}

func TestLocalStorage_InsertDoesNotAliasCaller(t *testing.T) {
	storage := NewLocalStorage()
	ctx := context.Background()

	txn := sampleTransaction("groceries", KindExpense)
	_, err := storage.Insert(ctx, txn)
	require.NoError(t, err)

	txn.Description = "mutated"

	stored, err := storage.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "groceries", stored[0].Description)
}

func TestLocalStorage_GetAllPreservesInsertionOrder(t *testing.T) {
	storage := NewLocalStorage()
	ctx := context.Background()

	for _, description := range []string{"first", "second", "third"} {
		_, err := storage.Insert(ctx, sampleTransaction(description, KindIncome))
		require.NoError(t, err)
	}

	stored, err := storage.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "first", stored[0].Description)
	assert.Equal(t, "second", stored[1].Description)
	assert.Equal(t, "third", stored[2].Description)
}

func TestLocalStorage_Delete(t *testing.T) {
	storage := NewLocalStorage()
	ctx := context.Background()

	id, err := storage.Insert(ctx, sampleTransaction("a", KindIncome))
	require.NoError(t, err)

	found, err := storage.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)

	// Second delete finds nothing but is not an error.
	found, err = storage.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)

	stored, err := storage.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
