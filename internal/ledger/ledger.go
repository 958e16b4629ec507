package ledger

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/neofinance/expense-tracker/internal/transaction"
)

// Filter narrows the visible slice of the ledger without touching the
// underlying list or the aggregates.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// State describes the initial-load lifecycle of the ledger.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

// Totals are the aggregates derived from the full, unfiltered ledger.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Ledger mirrors the server's transaction set on the client. The in-memory
// list changes only once the server has confirmed an operation, so it never
// contains an un-persisted or mis-identified record. The server copy stays
// authoritative; a successful Load replaces the local view wholesale.
type Ledger struct {
	api *Client

	mu      sync.Mutex
	records []transaction.Record
	filter  Filter
	state   State
	loadErr error
}

// NewLedger creates an empty ledger in the loading state.
func NewLedger(api *Client) *Ledger {
	return &Ledger{
		api:    api,
		filter: FilterAll,
	}
}

// Load fetches the full list from the server. Until it succeeds the ledger
// stays in the loading (or error) state and exposes no partial data.
func (l *Ledger) Load(ctx context.Context) error {
	records, err := l.api.List(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = StateError
		l.loadErr = err
		return err
	}
	l.records = records
	l.state = StateReady
	l.loadErr = nil
	return nil
}

// State reports where the ledger is in its load lifecycle, plus the error
// that caused a failed load.
func (l *Ledger) State() (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, l.loadErr
}

// Add submits a new transaction and prepends it to the list only after the
// server confirms creation and returns the canonical record. A failed call
// leaves the list untouched.
func (l *Ledger) Add(ctx context.Context, in transaction.CreateInput) (*transaction.Record, error) {
	record, err := l.api.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append([]transaction.Record{*record}, l.records...)
	return record, nil
}

// Remove deletes a transaction on the server and drops it from the list only
// after the server confirms; a failed call leaves the entry in place.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	if err := l.api.Delete(ctx, id); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i, record := range l.records {
		if record.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			break
		}
	}
	return nil
}

// SetFilter selects which kinds Visible returns.
func (l *Ledger) SetFilter(f Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = f
}

// Visible returns the records matching the active filter.
func (l *Ledger) Visible() []transaction.Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	visible := make([]transaction.Record, 0, len(l.records))
	for _, record := range l.records {
		switch l.filter {
		case FilterIncome:
			if record.Type != string(transaction.KindIncome) {
				continue
			}
		case FilterExpense:
			if record.Type != string(transaction.KindExpense) {
				continue
			}
		}
		visible = append(visible, record)
	}
	return visible
}

// Totals recomputes the aggregates over the full unfiltered set. Sums use
// decimals so repeated float amounts do not drift.
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()

	income := decimal.Zero
	expense := decimal.Zero
	for _, record := range l.records {
		amount := decimal.NewFromFloat(record.Amount)
		switch record.Type {
		case string(transaction.KindIncome):
			income = income.Add(amount)
		case string(transaction.KindExpense):
			expense = expense.Add(amount)
		}
	}

	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
