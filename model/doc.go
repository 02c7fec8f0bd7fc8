// Package model provides a generic MongoDB data access layer for application model types.
//
// Arbor gives any model type standard persistence operations without
// hand-written query code: plug a type into [Repository] by implementing
// [Model], choose an identifier strategy, and use the uniform CRUD surface.
//
// # Model Interface
//
// All models implement [Model] on the value receiver:
//
//	type User struct {
//	    ID   primitive.ObjectID `bson:"_id,omitempty"`
//	    Name string             `bson:"name"`
//	}
//
//	func (u User) Collection() model.Collection    { return users }
//	func (u User) IDValue() primitive.ObjectID     { return u.ID }
//
// A model may additionally implement [Filterer] to override the default
// identifier-based filter used by the instance-bound operations.
//
// # Identifier Strategies
//
// Exactly one [Codec] is wired in when the repository is constructed:
//
//   - [ObjectIDCodec] for store-generated 12-byte ObjectID keys
//   - [UUIDCodec] for client-generated UUID keys, stored as generic
//     BSON binary
//
//	repo := model.New[User, primitive.ObjectID](model.ObjectIDCodec{})
//
// Models keyed by UUID declare their _id field as primitive.Binary and
// derive the UUID in IDValue, so stored documents and synthesized filters
// agree on the key encoding:
//
//	type Device struct {
//	    ID primitive.Binary `bson:"_id"`
//	}
//
//	func (d Device) IDValue() uuid.UUID {
//	    id, _ := uuid.FromBytes(d.ID.Data)
//	    return id
//	}
//
// # Operations
//
// Reads come in non-strict and strict flavors: FindOne and FindByID report a
// miss as a nil result, while FindOneStrict and FindByIDStrict fail with
// [ErrNotFound]. CreateOne and UpdateOne confirm every write by re-reading
// the document, so their return value reflects what the store persisted.
// UpdateOne applies the payload as a field-level $set merge and requires the
// store to report exactly one modified document.
//
// # Errors
//
// The package defines a typed error taxonomy:
//
//   - [ErrNotFound] - a strict read matched no document
//   - [ErrCreateFailed] - insert acknowledged without a usable identifier
//   - [ErrUpdateFailed] - modified count was not exactly one
//   - [ErrDeleteFailed] - deleted count was not exactly one
//   - [DBError] - the store client failed; the cause is preserved
//   - [SerializationError] - a payload could not be converted to BSON
//
// The repository never retries and never swallows a store error.
package model
