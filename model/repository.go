package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository provides uniform CRUD operations for a model type M keyed by ID.
//
// Every operation issues at most two sequential round-trips to the store
// (a write followed by a confirming read) on the caller's goroutine. The
// repository holds no locks and caches no state across calls; concurrent use
// is safe as long as the underlying collection handle is.
type Repository[M Model[ID], ID comparable] struct {
	codec  Codec[ID]
	logger *slog.Logger
}

// New creates a Repository with the given identifier codec and default
// configuration.
func New[M Model[ID], ID comparable](codec Codec[ID]) *Repository[M, ID] {
	return NewWithConfig[M](codec, DefaultConfig())
}

// NewWithConfig creates a Repository with the given identifier codec and
// configuration.
func NewWithConfig[M Model[ID], ID comparable](codec Codec[ID], config Config) *Repository[M, ID] {
	config.validate()
	return &Repository[M, ID]{
		codec:  codec,
		logger: config.Logger,
	}
}

// collection returns the collection handle bound to the model type.
func (r *Repository[M, ID]) collection() Collection {
	var m M
	return m.Collection()
}

// IDFilter returns the canonical single-document filter for an identifier.
func (r *Repository[M, ID]) IDFilter(id ID) bson.D {
	return bson.D{{Key: "_id", Value: r.codec.EncodeID(id)}}
}

// instanceFilter returns the filter selecting m's own document, honoring a
// SearchFilter override when the model declares one.
func (r *Repository[M, ID]) instanceFilter(m M) bson.D {
	if f, ok := any(m).(Filterer); ok {
		return f.SearchFilter()
	}
	return r.IDFilter(m.IDValue())
}

// Find returns all documents matching filter. An empty result is not an
// error.
func (r *Repository[M, ID]) Find(ctx context.Context, filter interface{}) ([]M, error) {
	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		return nil, &DBError{Op: "find", Err: err}
	}

	var items []M
	if err := cursor.All(ctx, &items); err != nil {
		return nil, &DBError{Op: "find", Err: err}
	}
	return items, nil
}

// FindOne returns the store's first document matching filter, or nil when
// nothing matches.
func (r *Repository[M, ID]) FindOne(ctx context.Context, filter interface{}) (*M, error) {
	var m M
	err := r.collection().FindOne(ctx, filter).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &DBError{Op: "find one", Err: err}
	}
	return &m, nil
}

// FindOneStrict is FindOne but returns ErrNotFound when nothing matches.
func (r *Repository[M, ID]) FindOneStrict(ctx context.Context, filter interface{}) (M, error) {
	var zero M

	m, err := r.FindOne(ctx, filter)
	if err != nil {
		return zero, err
	}
	if m == nil {
		return zero, ErrNotFound
	}
	return *m, nil
}

// FindByID returns the document with the given identifier, or nil when it
// does not exist.
func (r *Repository[M, ID]) FindByID(ctx context.Context, id ID) (*M, error) {
	return r.FindOne(ctx, r.IDFilter(id))
}

// FindByIDStrict is FindByID but returns ErrNotFound when the identifier
// does not resolve.
func (r *Repository[M, ID]) FindByIDStrict(ctx context.Context, id ID) (M, error) {
	r.logger.Debug("finding document by id", "id", id)
	return r.FindOneStrict(ctx, r.IDFilter(id))
}

// CreateOne inserts m and returns the document as read back from the store,
// so the caller observes exactly what was persisted, including any
// store-side defaults. When the insert is acknowledged without a decodable
// identifier, CreateOne fails with ErrCreateFailed and performs no read.
func (r *Repository[M, ID]) CreateOne(ctx context.Context, m M) (M, error) {
	var zero M

	result, err := r.collection().InsertOne(ctx, m)
	if err != nil {
		return zero, &DBError{Op: "insert", Err: err}
	}

	if result.InsertedID == nil {
		return zero, fmt.Errorf("%w: no inserted id returned", ErrCreateFailed)
	}
	id, err := r.codec.DecodeInsertedID(result.InsertedID)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	r.logger.Debug("document created", "id", id)
	return r.FindByIDStrict(ctx, id)
}

// UpdateOne applies payload as a field-level merge ($set) to the single
// document matching filter and returns the refreshed document.
//
// The store must report exactly one modified document: a filter that matches
// nothing fails with ErrUpdateFailed, and so does a matched document whose
// values already equal the payload, since the driver reports zero modified
// in both cases.
func (r *Repository[M, ID]) UpdateOne(ctx context.Context, filter interface{}, payload interface{}) (M, error) {
	var zero M

	set, err := bson.Marshal(payload)
	if err != nil {
		return zero, &SerializationError{Err: err}
	}

	result, err := r.collection().UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: bson.Raw(set)}})
	if err != nil {
		return zero, &DBError{Op: "update", Err: err}
	}
	if result.ModifiedCount != 1 {
		return zero, fmt.Errorf("%w: matched %d, modified %d documents, want 1 modified",
			ErrUpdateFailed, result.MatchedCount, result.ModifiedCount)
	}

	return r.FindOneStrict(ctx, filter)
}

// UpdateByID applies payload as a field-level merge to the document with the
// given identifier and returns the refreshed document.
func (r *Repository[M, ID]) UpdateByID(ctx context.Context, id ID, payload interface{}) (M, error) {
	return r.UpdateOne(ctx, r.IDFilter(id), payload)
}

// DeleteOne removes the single document matching filter. It fails with
// ErrDeleteFailed when the store deletes a number of documents other than
// exactly one, including when the document was already gone.
func (r *Repository[M, ID]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := r.collection().DeleteOne(ctx, filter)
	if err != nil {
		return &DBError{Op: "delete", Err: err}
	}
	if result.DeletedCount != 1 {
		return fmt.Errorf("%w: deleted %d documents, want 1", ErrDeleteFailed, result.DeletedCount)
	}
	return nil
}

// DeleteByID removes the document with the given identifier.
func (r *Repository[M, ID]) DeleteByID(ctx context.Context, id ID) error {
	return r.DeleteOne(ctx, r.IDFilter(id))
}

// Update applies payload to m's own document, selected by its SearchFilter
// override or its identifier, and returns the refreshed document.
func (r *Repository[M, ID]) Update(ctx context.Context, m M, payload interface{}) (M, error) {
	return r.UpdateOne(ctx, r.instanceFilter(m), payload)
}

// Delete removes m's own document, selected by its SearchFilter override or
// its identifier.
func (r *Repository[M, ID]) Delete(ctx context.Context, m M) error {
	return r.DeleteOne(ctx, r.instanceFilter(m))
}
