package transaction

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStorage stores transactions in a MongoDB collection.
type MongoStorage struct {
	collection *mongo.Collection
}

// NewMongoStorage wraps an existing collection handle. The handle is safe
// for concurrent use, so a single MongoStorage serves all in-flight requests.
func NewMongoStorage(collection *mongo.Collection) *MongoStorage {
	return &MongoStorage{collection: collection}
}

func (s *MongoStorage) Insert(ctx context.Context, txn *Transaction) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, txn)
	if err != nil {
		return primitive.NilObjectID, classify(err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: unexpected inserted ID type %T", ErrWriteFailed, result.InsertedID)
	}
	return id, nil
}

func (s *MongoStorage) GetAll(ctx context.Context) ([]*Transaction, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: find: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	transactions := make([]*Transaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return transactions, nil
}

func (s *MongoStorage) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, classify(err)
	}
	return result.DeletedCount > 0, nil
}

// classify sorts driver failures into the retryable connectivity bucket and
// everything else, keeping the driver's message in the wrapped error.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrWriteFailed, err)
}
