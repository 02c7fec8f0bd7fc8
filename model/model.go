package model

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the narrow slice of *mongo.Collection the repository needs.
// *mongo.Collection satisfies it directly; tests substitute fakes built with
// mongo.NewCursorFromDocuments and mongo.NewSingleResultFromDocument.
type Collection interface {
	// Find returns a cursor over all documents matching filter.
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)

	// FindOne returns at most one matching document (the store's first).
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult

	// InsertOne inserts a single document and reports the inserted key.
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)

	// UpdateOne applies an update document to at most one matching document.
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)

	// DeleteOne removes at most one matching document.
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// Model is the base interface for all storable types.
//
// Both methods must be declared on the value receiver: the repository calls
// Collection on a zero value of M for type-level operations such as Find.
type Model[ID comparable] interface {
	// Collection returns the bound collection handle for this model type.
	Collection() Collection

	// IDValue returns the model's identifier value.
	IDValue() ID
}

// Filterer is implemented by models that override the default
// identifier-based filter used by the instance-bound operations.
type Filterer interface {
	// SearchFilter returns the filter selecting this instance's document.
	SearchFilter() bson.D
}
