package transaction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ErrInvalidInput is returned when creation or deletion input fails
// validation. The wrapped message carries the human-readable reason.
var ErrInvalidInput = errors.New("invalid input")

// Service provides high-level transaction operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create validates and persists a new transaction, returning the canonical
// record including the server-assigned identifier. Nothing is written when
// validation fails.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Record, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", ErrInvalidInput)
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a finite number", ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	kind, err := ParseKind(in.Type)
	if err != nil {
		return nil, err
	}
	occurredAt, err := time.Parse(time.RFC3339, in.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: dateTime must be an RFC 3339 timestamp: %v", ErrInvalidInput, err)
	}

	txn := &Transaction{
		Description: description,
		Amount:      in.Amount,
		Type:        kind,
		DateTime:    occurredAt.UTC(),
	}

	id, err := s.storage.Insert(ctx, txn)
	if err != nil {
		s.logger.Error("failed to save transaction", zap.String("description", description), zap.Error(err))
		return nil, err
	}
	txn.ID = id

	s.logger.Info("transaction created",
		zap.String("transaction_id", id.Hex()),
		zap.String("type", string(kind)),
		zap.Float64("amount", in.Amount),
	)
	return toRecord(txn), nil
}

// List returns all stored transactions in wire form. The result is never nil.
func (s *Service) List(ctx context.Context) ([]*Record, error) {
	transactions, err := s.storage.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list transactions", zap.Error(err))
		return nil, err
	}

	records := make([]*Record, 0, len(transactions))
	for _, txn := range transactions {
		records = append(records, toRecord(txn))
	}
	return records, nil
}

// Delete removes the transaction addressed by the given wire identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	found, err := s.storage.Delete(ctx, objID)
	if err != nil {
		s.logger.Error("failed to delete transaction", zap.String("transaction_id", id), zap.Error(err))
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.logger.Info("transaction deleted", zap.String("transaction_id", id))
	return nil
}

// toRecord translates the storage representation into the wire form.
// Together with parseID it forms the lossless ObjectID <-> hex mapping.
func toRecord(txn *Transaction) *Record {
	return &Record{
		ID:          txn.ID.Hex(),
		Description: txn.Description,
		Amount:      txn.Amount,
		Type:        string(txn.Type),
		DateTime:    txn.DateTime,
	}
}

// parseID translates a wire identifier back into the storage ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed transaction ID '%s'", ErrInvalidInput, id)
	}
	return objID, nil
}
