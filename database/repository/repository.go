package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches a lookup.
var ErrNotFound = errors.New("document not found")

// DefaultTimeout bounds a single repository call.
const DefaultTimeout = 5 * time.Second

// WithTimeout derives a bounded context for a single database round trip.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

// Collection wraps a mongo collection of documents keyed by their "id" field.
type Collection[T any] struct {
	Coll *mongo.Collection
	Name string
}

// NewCollection binds a typed wrapper to the named collection of db.
func NewCollection[T any](db *mongo.Database, name string) Collection[T] {
	return Collection[T]{Coll: db.Collection(name), Name: name}
}

// Insert stores a new document.
func (c Collection[T]) Insert(ctx context.Context, doc *T) error {
	ctx, cancel := WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if _, err := c.Coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.Name, err)
	}
	return nil
}

// FindOne returns the single document matching filter or ErrNotFound.
func (c Collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	var doc T
	if err := c.Coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch from %s: %w", c.Name, err)
	}
	return &doc, nil
}

// FindByID looks a document up by its "id" field.
func (c Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.FindOne(ctx, bson.M{"id": id})
}

// Find returns every document matching filter in the given order.
func (c Collection[T]) Find(ctx context.Context, filter bson.M, sort bson.D) ([]T, error) {
	ctx, cancel := WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := c.Coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.Name, err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.Name, err)
	}
	return docs, nil
}

// FindByIDs returns the documents whose "id" is in ids, keyed by id via key.
func (c Collection[T]) FindByIDs(ctx context.Context, ids []string, key func(T) string) (map[string]T, error) {
	out := make(map[string]T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	docs, err := c.Find(ctx, bson.M{"id": bson.M{"$in": Unique(ids)}}, nil)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[key(d)] = d
	}
	return out, nil
}

// ReplaceByID overwrites the document with the given id. Concurrent writers
// are not detected; the last write wins.
func (c Collection[T]) ReplaceByID(ctx context.Context, id string, doc *T) error {
	ctx, cancel := WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	res, err := c.Coll.ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", c.Name, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes the document with the given id.
func (c Collection[T]) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	res, err := c.Coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", c.Name, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of documents matching filter.
func (c Collection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	n, err := c.Coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", c.Name, err)
	}
	return n, nil
}

// EnsureIndexes creates the given indexes on the collection.
func (c Collection[T]) EnsureIndexes(models []mongo.IndexModel) error {
	ctx, cancel := WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := c.Coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", c.Name, err)
	}
	return nil
}

// Unique drops duplicates and empty strings while keeping first-seen order.
func Unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
